package common

import "fmt"

type (
	Sizef = Size[float32]
	Sizei = Size[int]
)

// Size is a width and height pair. Nothing stops a size from being zero or
// negative, use IsValid to check it.
type Size[T SignedNumbers] struct {
	W, H T
}

func (s Size[T]) String() string {
	return fmt.Sprintf("[Size: %vx%v]", s.W, s.H)
}

func Sz[T SignedNumbers](W, H T) Size[T] {
	return Size[T]{W: W, H: H}
}

func MaxSize[T SignedNumbers]() Size[T] {
	return Size[T]{W: Highest[T](), H: Highest[T]()}
}

// SizeTo converts the size to another coordinate type. Narrowing conversions
// are not checked.
func SizeTo[T, S SignedNumbers](s Size[S]) Size[T] {
	return Size[T]{W: T(s.W), H: T(s.H)}
}

func (s Size[T]) Add(s1 Size[T]) Size[T] {
	return Size[T]{W: s.W + s1.W, H: s.H + s1.H}
}

func (s Size[T]) Sub(s1 Size[T]) Size[T] {
	return Size[T]{W: s.W - s1.W, H: s.H - s1.H}
}

// Exact comparison
func (s Size[T]) Equals(s1 Size[T]) bool {
	return s.W == s1.W && s.H == s1.H
}

func (s Size[T]) FuzzyEquals(s1 Size[T], tolerance T) bool {
	return FuzzyEqual(s.W, s1.W, tolerance) && FuzzyEqual(s.H, s1.H, tolerance)
}

// Returns true if any of the dimensions is zero
func (s Size[T]) IsEmpty() bool {
	return s.W == 0 || s.H == 0
}

// Returns true if both dimensions are zero
func (s Size[T]) IsNull() bool {
	return s.W == 0 && s.H == 0
}

func (s Size[T]) IsValid() bool {
	return !s.IsEmpty()
}

func (s Size[T]) Area() T {
	return s.W * s.H
}

// Swaps width and height
func (s *Size[T]) Transpose() {
	s.W, s.H = s.H, s.W
}

func (s Size[T]) Transposed() Size[T] {
	s.Transpose()
	return s
}

func (s Size[T]) ToVec2() Vector2[T] {
	return Vector2[T]{X: s.W, Y: s.H}
}
