package common

import (
	"fmt"
)

// Zero values for reducing allocations
var (
	ZeroBoxF32 = Box[float32]{}
	ZeroBoxINT = Box[int]{}
)

type (
	Boxf = Box[float32]
	Boxi = Box[int]
)

// Box is an axis aligned rectangle described by its center and its extent.
// Width and height are spread evenly on both sides of the center and y grows
// upward, so top is y + h/2. For integer boxes the halving truncates.
type Box[T SignedNumbers] struct {
	X, Y, W, H T
}

func (box Box[T]) String() string {
	return fmt.Sprintf("[Box: pos: %vx%v, dims: %vx%v]", box.X, box.Y, box.W, box.H)
}

// Shortcut for creating a new box
func NewBox[T SignedNumbers](X, Y, W, H T) Box[T] {
	return Box[T]{X: X, Y: Y, W: W, H: H}
}

func BoxAt[T SignedNumbers](center Vector2[T], W, H T) Box[T] {
	return Box[T]{X: center.X, Y: center.Y, W: W, H: H}
}

func BoxFromSize[T SignedNumbers](center Vector2[T], size Size[T]) Box[T] {
	return Box[T]{X: center.X, Y: center.Y, W: size.W, H: size.H}
}

// FromSize creates a box with the extent of size. When setToOrigin is true
// the box is centered on the origin, otherwise it spans [0, w] x [0, h].
// Converting between coordinate types may truncate or overflow.
func FromSize[T, S SignedNumbers](size Size[S], setToOrigin bool) Box[T] {
	box := Box[T]{W: T(size.W), H: T(size.H)}
	if !setToOrigin {
		box.X = box.W / 2
		box.Y = box.H / 2
	}
	return box
}

// Valid returns false for boxes with a zero width or height. Comparison is
// exact.
func (box Box[T]) Valid() bool {
	return box.W != 0 && box.H != 0
}

// Equals compares every component within DefaultEpsilon.
func (box Box[T]) Equals(other Box[T]) bool {
	return box.EqualsEps(other, Epsilon[T]())
}

func (box Box[T]) EqualsEps(other Box[T], eps T) bool {
	return FuzzyEqual(box.X, other.X, eps) &&
		FuzzyEqual(box.Y, other.Y, eps) &&
		FuzzyEqual(box.W, other.W, eps) &&
		FuzzyEqual(box.H, other.H, eps)
}

func (box Box[T]) Left() T {
	return box.X - box.W/2
}

func (box Box[T]) Right() T {
	return box.X + box.W/2
}

func (box Box[T]) Top() T {
	return box.Y + box.H/2
}

func (box Box[T]) Bottom() T {
	return box.Y - box.H/2
}

func (box Box[T]) Center() Vector2[T] {
	return Vector2[T]{X: box.X, Y: box.Y}
}

func (box Box[T]) TopLeft() Vector2[T] {
	return Vector2[T]{X: box.Left(), Y: box.Top()}
}

func (box Box[T]) TopRight() Vector2[T] {
	return Vector2[T]{X: box.Right(), Y: box.Top()}
}

func (box Box[T]) BottomRight() Vector2[T] {
	return Vector2[T]{X: box.Right(), Y: box.Bottom()}
}

func (box Box[T]) BottomLeft() Vector2[T] {
	return Vector2[T]{X: box.Left(), Y: box.Bottom()}
}

func (box Box[T]) Area() T {
	return box.W * box.H
}

func (box Box[T]) ToSize() Size[T] {
	return Size[T]{W: box.W, H: box.H}
}

// Returns the same box centered on the origin
func (box Box[T]) ToOrigin() Box[T] {
	box.X = 0
	box.Y = 0
	return box
}

// Contains returns true if all bounds of other are inside this box. Shared
// edges count as inside.
func (box Box[T]) Contains(other Box[T]) bool {
	return other.Left() >= box.Left() &&
		other.Right() <= box.Right() &&
		other.Top() <= box.Top() &&
		other.Bottom() >= box.Bottom()
}

// Includes returns true if this box is inside other.
func (box Box[T]) Includes(other Box[T]) bool {
	return other.Contains(box)
}

// ContainsPoint returns true if the point is inside the box or on its edges.
func (box Box[T]) ContainsPoint(point Vector2[T]) bool {
	return box.FuzzyContains(point, 0)
}

// FuzzyContains is ContainsPoint with every bound pushed outward by
// threshold.
func (box Box[T]) FuzzyContains(point Vector2[T], threshold T) bool {
	return point.X >= box.Left()-threshold &&
		point.X <= box.Right()+threshold &&
		point.Y >= box.Bottom()-threshold &&
		point.Y <= box.Top()+threshold
}

// Intersects returns true if the boxes overlap. Touching edges count as an
// intersection unless strict is set.
func (box Box[T]) Intersects(other Box[T], strict bool) bool {
	if strict {
		return !(box.Left() >= other.Right() ||
			box.Right() <= other.Left() ||
			box.Top() <= other.Bottom() ||
			box.Bottom() >= other.Top())
	}
	return !(box.Left() > other.Right() ||
		box.Right() < other.Left() ||
		box.Top() < other.Bottom() ||
		box.Bottom() > other.Top())
}

// NearestPoint projects the point onto the box by clamping each axis to the
// bounds. Points inside the box are returned unchanged.
func (box Box[T]) NearestPoint(point Vector2[T]) Vector2[T] {
	return Vector2[T]{
		X: Clamp(point.X, box.Left(), box.Right()),
		Y: Clamp(point.Y, box.Bottom(), box.Top()),
	}
}

// overlap returns the center and length of the overlap of [lo1, hi1] and
// [lo2, hi2]. Disjoint intervals have zero length and the center falls back
// to the midpoint of c1 and c2.
func overlap[T SignedNumbers](lo1, hi1, lo2, hi2, c1, c2 T) (center, length T) {
	lo := Max(lo1, lo2)
	hi := Min(hi1, hi2)
	length = hi - lo
	if length < 0 {
		return (c1 + c2) / 2, 0
	}
	return (lo + hi) / 2, length
}

// Intersect returns the overlapping area of the boxes. The result is always
// a box but when the boxes are disjoint on an axis its extent on that axis is
// zero, so check Valid before using it as a real intersection.
func (box Box[T]) Intersect(other Box[T]) Box[T] {
	var result Box[T]
	result.X, result.W = overlap(box.Left(), box.Right(), other.Left(), other.Right(), box.X, other.X)
	result.Y, result.H = overlap(box.Bottom(), box.Top(), other.Bottom(), other.Top(), box.Y, other.Y)
	return result
}

// Scale multiplies the extent by factor, center stays in place.
func (box Box[T]) Scale(factor float64) Box[T] {
	box.W = T(float64(box.W) * factor)
	box.H = T(float64(box.H) * factor)
	return box
}
