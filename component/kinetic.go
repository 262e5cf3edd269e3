package component

import (
	"github.com/lixenwraith/ballistic/core"
)

// KineticComponent provides a reusable kinematic container for entities
// requiring sub-pixel motion
type KineticComponent struct {
	core.Kinetic
}
