package component

import (
	"github.com/lixenwraith/ballistic/core"
)

// ActorComponent is a combatant body in the reference host
type ActorComponent struct {
	Team      core.Team
	Health    float64
	MaxHealth float64
	Alive     bool
	Radius    float64 // body circle for segment and blast tests
}
