package vmath

import "math"

// Vectors are passed and returned as scalar (x, y) pairs to keep hot paths
// free of allocation and struct copies.

// Magnitude returns the length of (x, y)
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// MagnitudeSq returns the squared length, avoiding the sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// Normalize2D scales (x, y) to unit length
// The zero vector stays (0, 0)
func Normalize2D(x, y float64) (float64, float64) {
	m := math.Sqrt(x*x + y*y)
	if m == 0 {
		return 0, 0
	}
	return x / m, y / m
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Cross2D returns the z component of the 3D cross product
// For a unit (x2, y2), its absolute value is the perpendicular distance of
// (x1, y1) from the line through the origin along (x2, y2)
func Cross2D(x1, y1, x2, y2 float64) float64 {
	return x1*y2 - y1*x2
}

// Reflect returns velocity reflected off surface with given normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(velX, velY, normalX, normalY float64) (rx, ry float64) {
	dot2 := 2 * (velX*normalX + velY*normalY)
	rx = velX - dot2*normalX
	ry = velY - dot2*normalY
	return rx, ry
}

// RotateVector rotates vector by angle radians counter-clockwise
func RotateVector(x, y, angle float64) (rx, ry float64) {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	rx = x*cos - y*sin
	ry = x*sin + y*cos
	return rx, ry
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	magSq := x*x + y*y
	if magSq <= maxMag*maxMag {
		return x, y
	}
	mag := math.Sqrt(magSq)
	return x / mag * maxMag, y / mag * maxMag
}

// ScaleToLength returns (x, y) scaled to the given length
// The zero vector stays (0, 0)
func ScaleToLength(x, y, length float64) (sx, sy float64) {
	nx, ny := Normalize2D(x, y)
	return nx * length, ny * length
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(x, y float64) (px, py float64) {
	return -y, x
}

// AngleBetween returns the unsigned angle in radians between two vectors, in [0, pi]
// Zero-length input yields 0
func AngleBetween(x1, y1, x2, y2 float64) float64 {
	m1 := Magnitude(x1, y1)
	m2 := Magnitude(x2, y2)
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := Clamp((x1*x2+y1*y2)/(m1*m2), -1, 1)
	return math.Acos(cos)
}

// SignedAngle returns the rotation in radians carrying (x1, y1) onto (x2, y2), in (-pi, pi]
func SignedAngle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(x1*y2-y1*x2, x1*x2+y1*y2)
}
