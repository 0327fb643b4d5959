package common

import "math"

// Directions shorter than this are treated as having no direction.
const DirectionThreshold float32 = 0.0001

func DistanceSquaredXY(x1, y1, x2, y2 float32) float32 {
	return (x1-x2)*(x1-x2) + (y1-y2)*(y1-y2)
}

func DistanceXY(x1, y1, x2, y2 float32) float32 {
	return float32(math.Sqrt(float64(DistanceSquaredXY(x1, y1, x2, y2))))
}

// Distance between two points computed in float32 whatever T is.
func Distance[T SignedNumbers](p1, p2 Vector2[T]) float32 {
	return DistanceXY(float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y))
}

func DistanceSquared[T SignedNumbers](p1, p2 Vector2[T]) float32 {
	return DistanceSquaredXY(float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y))
}

// AngleFromDirection returns the angle of the direction in [0, 2pi]. The
// angle is atan2 shifted by pi, so the +x axis maps to pi. Directions shorter
// than threshold return 0.
func AngleFromDirection(xDir, yDir, threshold float32) float32 {
	l := DistanceXY(0, 0, xDir, yDir)
	if l < threshold {
		return 0
	}
	theta := float32(math.Atan2(float64(yDir/l), float64(xDir/l)))
	return Clamp(theta+Pi, 0, TwoPi)
}

// AngleBetween is AngleFromDirection for the segment going from p1 to p2.
func AngleBetween(p1, p2 Vector2[float32], threshold float32) float32 {
	return AngleFromDirection(p2.X-p1.X, p2.Y-p1.Y, threshold)
}

// IsInCone returns true if p lies in the cone with tip o, principal direction
// (xDir, yDir) and total aperture theta (radians), half on each side of the
// direction. Angles are compared in [0, 2pi] without wrapping, so a cone
// pointing along -x only accepts points above the axis.
func IsInCone(o Vector2[float32], xDir, yDir, theta float32, p Vector2[float32]) bool {
	angle := AngleBetween(o, p, DirectionThreshold)
	coneAngle := AngleFromDirection(xDir, yDir, DirectionThreshold)
	return Abs(angle-coneAngle) < theta/2
}

// ToDirection returns the direction from s to t, the distance between them
// and whether the distance is above threshold. The direction is normalized
// only when ok is true, otherwise it is the raw difference.
func ToDirection(s, t Vector2[float32], threshold float32) (dir Vector2[float32], dist float32, ok bool) {
	dir = t.Sub(s)
	dist = Distance(s, t)
	ok = dist > threshold
	if ok {
		dir = dir.DivS(dist)
	}
	return dir, dist, ok
}
