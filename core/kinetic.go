package core

import "math"

// Kinetic holds continuous motion state in pixel space
type Kinetic struct {
	// X and Y are the center position in pixels
	X, Y float64
	// VelX and VelY represent velocity in pixels per second
	VelX, VelY float64
}

// Speed returns the scalar velocity in pixels per second
func (k *Kinetic) Speed() float64 {
	return math.Sqrt(k.VelX*k.VelX + k.VelY*k.VelY)
}

// Heading returns the unit travel direction, (0, 0) when at rest
func (k *Kinetic) Heading() (float64, float64) {
	m := math.Sqrt(k.VelX*k.VelX + k.VelY*k.VelY)
	if m == 0 {
		return 0, 0
	}
	return k.VelX / m, k.VelY / m
}
