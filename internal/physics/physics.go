// Package physics provides collision detection, distance and rotation utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle reports whether a dimensionless point lies strictly inside
// the circle centred at (cx, cy).
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) < radius*radius
}

// CirclesOverlap reports whether two circles overlap (touching does not count).
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return math.Pi * (deg / 180)
}

// RotX returns the x component of (x, y) rotated by angle radians.
func RotX(x, y, angle float64) float64 {
	return x*math.Cos(angle) - y*math.Sin(angle)
}

// RotY returns the y component of (x, y) rotated by angle radians.
func RotY(x, y, angle float64) float64 {
	return x*math.Sin(angle) + y*math.Cos(angle)
}

// Rotate rotates the local offset (x, y) by angle and translates it to (ox, oy).
func Rotate(x, y, angle, ox, oy float64) (float64, float64) {
	return RotX(x, y, angle) + ox, RotY(x, y, angle) + oy
}
