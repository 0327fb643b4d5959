package common

import (
	"fmt"
	"math"
)

type (
	Vector3f = Vector3[float32]
	Vector3i = Vector3[int]
)

type Vector3[T SignedNumbers] struct {
	X, Y, Z T
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("[Vector: %v, %v, %v]", v.X, v.Y, v.Z)
}

// just a shortcut
func Vec3[T SignedNumbers](X, Y, Z T) Vector3[T] {
	return Vector3[T]{X: X, Y: Y, Z: Z}
}

func MaxVector3[T SignedNumbers]() Vector3[T] {
	return Vector3[T]{X: Highest[T](), Y: Highest[T](), Z: Highest[T]()}
}

func MinVector3[T SignedNumbers]() Vector3[T] {
	return Vector3[T]{X: Lowest[T](), Y: Lowest[T](), Z: Lowest[T]()}
}

func (v Vector3[T]) ToVec2() Vector2[T] {
	return Vector2[T]{X: v.X, Y: v.Y}
}

func (v Vector3[T]) Add(v1 Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + v1.X, Y: v.Y + v1.Y, Z: v.Z + v1.Z}
}

func (v Vector3[T]) Sub(v1 Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - v1.X, Y: v.Y - v1.Y, Z: v.Z - v1.Z}
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3[T]) MulS(S T) Vector3[T] {
	return Vector3[T]{X: v.X * S, Y: v.Y * S, Z: v.Z * S}
}

func (v Vector3[T]) DivS(S T) Vector3[T] {
	return Vector3[T]{X: v.X / S, Y: v.Y / S, Z: v.Z / S}
}

func (v *Vector3[T]) SetAdd(v1 Vector3[T]) {
	*v = v.Add(v1)
}

func (v *Vector3[T]) SetSub(v1 Vector3[T]) {
	*v = v.Sub(v1)
}

func (v *Vector3[T]) SetMulS(S T) {
	*v = v.MulS(S)
}

func (v *Vector3[T]) SetDivS(S T) {
	*v = v.DivS(S)
}

func (v Vector3[T]) Dot(v1 Vector3[T]) T {
	return v.X*v1.X + v.Y*v1.Y + v.Z*v1.Z
}

func (v Vector3[T]) Cross(v1 Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*v1.Z - v.Z*v1.Y,
		Y: v.Z*v1.X - v.X*v1.Z,
		Z: v.X*v1.Y - v.Y*v1.X,
	}
}

func (v Vector3[T]) Length() T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// See Vector2.Normalize
func (v *Vector3[T]) Normalize() T {
	length := v.Length()
	if !FuzzyEqual(length, 0, Epsilon[T]()) {
		v.SetDivS(length)
	}
	return length
}

func (v Vector3[T]) Normalized() Vector3[T] {
	v.Normalize()
	return v
}

func (v Vector3[T]) Equals(v1 Vector3[T]) bool {
	return v.EqualsEps(v1, Epsilon[T]())
}

func (v Vector3[T]) EqualsEps(v1 Vector3[T], eps T) bool {
	return FuzzyEqual(v.X, v1.X, eps) &&
		FuzzyEqual(v.Y, v1.Y, eps) &&
		FuzzyEqual(v.Z, v1.Z, eps)
}
