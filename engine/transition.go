package engine

import (
	"log"

	"github.com/lixenwraith/cart-chase/core"
)

// startChase reveals the enemy: Wander -> Chase
// The ambient and enemy loops end here since disguise and calm are both over
func (g *Game) startChase() {
	g.stop(&g.ambientLoop)
	g.stop(&g.enemyLoop)
	g.chaseLoop = g.audio.Loop(core.SampleChase, g.cfg.Audio.ChaseVolume, 0)

	g.phase = PhaseChase
	g.chaseElapsed = 0
	g.agentSpeed = g.cfg.Agents.ChaseSpeed

	log.Printf("game: chase started enemy=%d tick=%d", g.reg.EnemyIndex, g.ticks)
	g.emit(EventChaseStarted)
}

// survive ends a chase the cart outlasted: Chase -> Wander, one point
// Re-selection is uniform over all agents and may repeat the previous enemy
func (g *Game) survive() {
	g.chaseElapsed = 0
	g.phase = PhaseWander
	g.agentSpeed = g.cfg.Agents.WanderSpeed

	g.reg.EnemyIndex = g.rng.Intn(len(g.reg.Agents))
	g.enemyLoop = g.audio.Loop3D(core.SampleEnemy, g.cfg.Audio.EnemyVolume, g.reg.Enemy().Position, g.cfg.Audio.EnemyFalloff)

	g.stop(&g.chaseLoop)
	g.ambientLoop = g.audio.Loop(core.SampleAmbient, g.cfg.Audio.AmbientVolume, 0)

	g.score++

	log.Printf("game: chase survived score=%d enemy=%d tick=%d", g.score, g.reg.EnemyIndex, g.ticks)
	g.emit(EventChaseSurvived)
}

// endGame freezes the simulation: Chase -> GameOver
func (g *Game) endGame() {
	g.stop(&g.chaseLoop)
	g.phase = PhaseGameOver

	log.Printf("game: caught score=%d tick=%d", g.score, g.ticks)
	g.emit(EventCaught)
}
