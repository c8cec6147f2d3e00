package parameter

// Agents
const (
	// AgentCount is the number of wandering agents, one of which is the enemy
	AgentCount = 5

	// AgentWanderSpeed is agent speed in units/sec while wandering
	AgentWanderSpeed = 2.0

	// AgentChaseSpeed is agent speed in units/sec while chasing the cart
	AgentChaseSpeed = 8.0

	// AgentRadius is the agent containment radius
	AgentRadius = 1.0

	// AgentHeadingNoise scales the per-tick (r1 - r2) heading perturbation in radians
	AgentHeadingNoise = 0.25
)
