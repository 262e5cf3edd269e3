package physics

import (
	"github.com/lixenwraith/ballistic/core"
)

// Advance moves a kinetic state forward by one time step
func Advance(k *core.Kinetic, dt float64) {
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
}

// Endpoint returns where a kinetic state would sit after one time step
// without moving it. Flight systems sweep the segment from the current
// position to this point for impacts.
func Endpoint(k *core.Kinetic, dt float64) (float64, float64) {
	return k.X + k.VelX*dt, k.Y + k.VelY*dt
}
