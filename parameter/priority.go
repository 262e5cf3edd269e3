package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityWeapon     = 10 // Fire requests spawn projectiles before they move
	PriorityGrenade    = 20 // Ground physics and fuses before projectile impacts
	PriorityProjectile = 30 // Flight, impacts, detonations
	PriorityCombat     = 40 // Damage application after impacts resolve
)
