package core

// Entity is a unique identifier for a simulation object
type Entity uint64

// InvalidEntity marks the absence of an entity reference
const InvalidEntity Entity = 0

// Team tags actors for hostility checks during target selection
type Team uint8

const (
	TeamNeutral Team = iota
	TeamPlayer
	TeamEnemy
)

// Hostile reports whether the two teams damage each other
// Neutral is hostile to nobody
func (t Team) Hostile(other Team) bool {
	if t == TeamNeutral || other == TeamNeutral {
		return false
	}
	return t != other
}
