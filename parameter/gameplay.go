package parameter

// Arena
const (
	// ArenaRadius is the half extent of the square containment region centred at origin
	ArenaRadius = 20.0
)

// Chase Rules
const (
	// CatchRadius is the planar distance within which a provoke reveals the enemy
	CatchRadius = 5.0

	// AttackRadius is the planar distance within which a chasing agent catches the cart
	AttackRadius = 1.0

	// SurvivalTime is seconds of chase the cart must outlast to score a point
	SurvivalTime = 5.0
)
