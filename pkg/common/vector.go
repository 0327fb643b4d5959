package common

import (
	"fmt"
	"math"
)

// Zero values for reducing allocations
var (
	ZeroVector2F32 = Vector2[float32]{}
	ZeroVector2INT = Vector2[int]{}
)

type (
	Vector2f = Vector2[float32]
	Vector2i = Vector2[int]
)

// We will use generics for vectors

type Vector2[T SignedNumbers] struct {
	X, Y T
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("[Vector: %v, %v]", v.X, v.Y)
}

// just a shortcut
func Vec2[T SignedNumbers](X, Y T) Vector2[T] {
	return Vector2[T]{X: X, Y: Y}
}

// Both components at the highest value of T
func MaxVector2[T SignedNumbers]() Vector2[T] {
	return Vector2[T]{X: Highest[T](), Y: Highest[T]()}
}

// Both components at the lowest value of T
func MinVector2[T SignedNumbers]() Vector2[T] {
	return Vector2[T]{X: Lowest[T](), Y: Lowest[T]()}
}

// Lowest X and highest Y. Useful as a starting value when accumulating the
// top left corner of a set of points.
func MinMaxVector2[T SignedNumbers]() Vector2[T] {
	return Vector2[T]{X: Lowest[T](), Y: Highest[T]()}
}

// Highest X and lowest Y
func MaxMinVector2[T SignedNumbers]() Vector2[T] {
	return Vector2[T]{X: Highest[T](), Y: Lowest[T]()}
}

func (v Vector2[T]) ToVec3(Z T) Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y, Z: Z}
}

func (v Vector2[T]) ToInt() Vector2[int] {
	return Vector2[int]{
		X: int(math.Floor(float64(v.X))),
		Y: int(math.Floor(float64(v.Y))),
	}
}

// Add two vectors
func (v Vector2[T]) Add(v1 Vector2[T]) Vector2[T] {
	v.X += v1.X
	v.Y += v1.Y
	return v
}

// Subtract v1 from v
func (v Vector2[T]) Sub(v1 Vector2[T]) Vector2[T] {
	v.X -= v1.X
	v.Y -= v1.Y
	return v
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{X: -v.X, Y: -v.Y}
}

// Componentwise multiplication
func (v Vector2[T]) Mul(v1 Vector2[T]) Vector2[T] {
	v.X *= v1.X
	v.Y *= v1.Y
	return v
}

// Multiplies the vector by a scalar
func (v Vector2[T]) MulS(S T) Vector2[T] {
	v.X *= S
	v.Y *= S
	return v
}

// Divides v by v1 componentwise
func (v Vector2[T]) Div(v1 Vector2[T]) Vector2[T] {
	v.X /= v1.X
	v.Y /= v1.Y
	return v
}

// Divides the vector by a scalar. Zero is not checked.
func (v Vector2[T]) DivS(S T) Vector2[T] {
	v.X /= S
	v.Y /= S
	return v
}

func (v *Vector2[T]) SetAdd(v1 Vector2[T]) {
	v.X += v1.X
	v.Y += v1.Y
}

func (v *Vector2[T]) SetSub(v1 Vector2[T]) {
	v.X -= v1.X
	v.Y -= v1.Y
}

func (v *Vector2[T]) SetMulS(S T) {
	v.X *= S
	v.Y *= S
}

func (v *Vector2[T]) SetDivS(S T) {
	v.X /= S
	v.Y /= S
}

// Dot product of two vectors
func (v Vector2[T]) Dot(v1 Vector2[T]) T {
	return v.X*v1.X + v.Y*v1.Y
}

// 2D cross product, the z component of the 3D cross product
func (v Vector2[T]) Cross(v1 Vector2[T]) T {
	return v.X*v1.Y - v.Y*v1.X
}

func (v Vector2[T]) Length() T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Does not applies sqrt, faster
func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2[T]) Distance(v2 Vector2[T]) T {
	return v2.Sub(v).Length()
}

// Does not applies sqrt, faster
func (v Vector2[T]) DistanceSquared(v2 Vector2[T]) T {
	return v2.Sub(v).LengthSquared()
}

// Normalize scales the vector to unit length and returns the length it had
// before. Vectors whose length is zero within Epsilon are left untouched.
func (v *Vector2[T]) Normalize() T {
	length := v.Length()
	if !FuzzyEqual(length, 0, Epsilon[T]()) {
		v.X /= length
		v.Y /= length
	}
	return length
}

func (v Vector2[T]) Normalized() Vector2[T] {
	v.Normalize()
	return v
}

// Returns the perpenicular vector of v
func (v Vector2[T]) Perpendicular() Vector2[T] {
	v.X, v.Y = v.Y, -v.X
	return v
}

// Returns true if the vectors are equal within DefaultEpsilon
func (v Vector2[T]) Equals(v1 Vector2[T]) bool {
	return v.EqualsEps(v1, Epsilon[T]())
}

func (v Vector2[T]) EqualsEps(v1 Vector2[T], eps T) bool {
	return FuzzyEqual(v.X, v1.X, eps) && FuzzyEqual(v.Y, v1.Y, eps)
}

// Returns true if the vector is horizontal
func (v Vector2[T]) IsHorizontal() bool {
	return Abs(v.X) >= Abs(v.Y)
}
