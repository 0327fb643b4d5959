package common

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Constraints
type Integers interface {
	constraints.Signed
}

type UnsignedIntegers interface {
	constraints.Unsigned
}

type Floats interface {
	constraints.Float
}

// Geometry types need negation and ordering around zero, so they are limited
// to signed coordinates.
type SignedNumbers interface {
	Integers | Floats
}

type Numbers interface {
	Integers | UnsignedIntegers | Floats
}

// DefaultEpsilon is the tolerance used by the Equals methods and by the zero
// length guard of Normalize. Callers working with large magnitudes should use
// the Eps variants with their own tolerance.
const DefaultEpsilon = 1e-6

func Min[T Numbers](v1, v2 T) T {
	if v1 < v2 {
		return v1
	}
	return v2
}

func Max[T Numbers](v1, v2 T) T {
	if v1 > v2 {
		return v1
	}
	return v2
}

// Clamp restricts v to [minv, maxv]. If minv > maxv the result is maxv.
func Clamp[T Numbers](v, minv, maxv T) T {
	return Min(maxv, Max(minv, v))
}

func Abs[T Numbers](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// IsFloat reports whether T is a floating point type.
func IsFloat[T Numbers]() bool {
	var one T = 1
	return one/2 != 0
}

// FuzzyEqual returns true if the difference between a and b is strictly less
// than epsilon. Integer types are always compared exactly.
func FuzzyEqual[T SignedNumbers](a, b, epsilon T) bool {
	if !IsFloat[T]() {
		return a == b
	}
	return Abs(a-b) < epsilon
}

// Epsilon returns DefaultEpsilon converted to T. It is zero for integers.
func Epsilon[T SignedNumbers]() T {
	eps := float64(DefaultEpsilon)
	return T(eps)
}

// Highest returns the largest value representable by T.
func Highest[T SignedNumbers]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32:
		rv.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		rv.SetFloat(math.MaxFloat64)
	default:
		bits := rv.Type().Bits()
		rv.SetInt(int64(1)<<(bits-1) - 1)
	}
	return v
}

// Lowest returns the most negative value representable by T. For floats this
// is -Highest, not the smallest positive value.
func Lowest[T SignedNumbers]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32:
		rv.SetFloat(-math.MaxFloat32)
	case reflect.Float64:
		rv.SetFloat(-math.MaxFloat64)
	default:
		bits := rv.Type().Bits()
		rv.SetInt(-(int64(1) << (bits - 1)))
	}
	return v
}
