package common

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestVector2_Arithmetic(t *testing.T) {
	a := Vec2(1.0, 2.0)
	b := Vec2(3.0, -4.0)
	assert.Equal(t, Vec2(4.0, -2.0), a.Add(b))
	assert.Equal(t, Vec2(-2.0, 6.0), a.Sub(b))
	assert.Equal(t, Vec2(-1.0, -2.0), a.Neg())
	assert.Equal(t, Vec2(2.5, 5.0), a.MulS(2.5))
	assert.Equal(t, Vec2(0.5, 1.0), a.DivS(2))
	assert.Equal(t, Vec2(3.0, -8.0), a.Mul(b))
	assert.Equal(t, Vec2(1.0/3.0, -0.5), a.Div(b))
	assert.Equal(t, Vec2(1.0, 2.0), a, "value methods do not modify the receiver")
}

func TestVector2_InPlace(t *testing.T) {
	v := Vec2(1, 2)
	v.SetAdd(Vec2(2, 2))
	assert.Equal(t, Vec2(3, 4), v)
	v.SetSub(Vec2(1, 1))
	assert.Equal(t, Vec2(2, 3), v)
	v.SetMulS(3)
	assert.Equal(t, Vec2(6, 9), v)
	v.SetDivS(3)
	assert.Equal(t, Vec2(2, 3), v)
}

func TestVector2_DivideByZero(t *testing.T) {
	v := Vec2(1.0, -1.0).DivS(0)
	assert.True(t, math.IsInf(v.X, 1))
	assert.True(t, math.IsInf(v.Y, -1))
}

func TestVector2_Products(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Vector2[float64]
		dot   float64
		cross float64
	}{
		{"axes", Vec2(1.0, 0.0), Vec2(0.0, 1.0), 0, 1},
		{"reversed axes", Vec2(0.0, 1.0), Vec2(1.0, 0.0), 0, -1},
		{"parallel", Vec2(2.0, 2.0), Vec2(1.0, 1.0), 4, 0},
		{"general", Vec2(1.0, 2.0), Vec2(3.0, 4.0), 11, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dot, tt.a.Dot(tt.b))
			assert.Equal(t, tt.cross, tt.a.Cross(tt.b))
		})
	}
}

func TestVector2_Length(t *testing.T) {
	assert.Equal(t, 5.0, Vec2(3.0, 4.0).Length())
	assert.Equal(t, 25.0, Vec2(3.0, 4.0).LengthSquared())
	assert.Equal(t, 5, Vec2(3, 4).Length())
	assert.InDelta(t, math.Sqrt2, Vec2(1.0, 1.0).Length(), 1e-12)
	assert.Equal(t, 5.0, Vec2(1.0, 1.0).Distance(Vec2(4.0, 5.0)))
	assert.Equal(t, 25.0, Vec2(1.0, 1.0).DistanceSquared(Vec2(4.0, 5.0)))
}

func TestVector2_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2[float64]
		want   Vector2[float64]
		length float64
	}{
		{"pythagorean", Vec2(3.0, 4.0), Vec2(0.6, 0.8), 5},
		{"axis", Vec2(0.0, -2.0), Vec2(0.0, -1.0), 2},
		{"zero stays zero", Vec2(0.0, 0.0), Vec2(0.0, 0.0), 0},
		{"near zero stays", Vec2(1e-9, 0.0), Vec2(1e-9, 0.0), 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.v
			length := v.Normalize()
			assert.InDelta(t, tt.length, length, 1e-12)
			if diff := cmp.Diff(tt.want, v, approx); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, tt.v.Normalized().Equals(v))
		})
	}
}

func TestVector2_Equals(t *testing.T) {
	assert.True(t, Vec2(1.0, 1.0).Equals(Vec2(1.0+1e-9, 1.0)))
	assert.False(t, Vec2(1.0, 1.0).Equals(Vec2(1.001, 1.0)))
	assert.True(t, Vec2(1.0, 1.0).EqualsEps(Vec2(1.001, 1.0), 0.01))
	assert.True(t, Vec2(2, 3).Equals(Vec2(2, 3)))
	assert.False(t, Vec2(2, 3).Equals(Vec2(2, 4)))
}

func TestVector2_Boundaries(t *testing.T) {
	assert.Equal(t, Vec2[int32](math.MaxInt32, math.MaxInt32), MaxVector2[int32]())
	assert.Equal(t, Vec2[int32](math.MinInt32, math.MinInt32), MinVector2[int32]())
	assert.Equal(t, Vec2[int32](math.MinInt32, math.MaxInt32), MinMaxVector2[int32]())
	assert.Equal(t, Vec2[int32](math.MaxInt32, math.MinInt32), MaxMinVector2[int32]())
	assert.Equal(t, Vec2(-math.MaxFloat64, -math.MaxFloat64), MinVector2[float64]())

	// Running bounding box over a set of points
	points := []Vector2[float64]{Vec2(1.0, 5.0), Vec2(-3.0, 2.0), Vec2(4.0, -1.0)}
	lo, hi := MaxVector2[float64](), MinVector2[float64]()
	for _, p := range points {
		lo = Vec2(Min(lo.X, p.X), Min(lo.Y, p.Y))
		hi = Vec2(Max(hi.X, p.X), Max(hi.Y, p.Y))
	}
	assert.Equal(t, Vec2(-3.0, -1.0), lo)
	assert.Equal(t, Vec2(4.0, 5.0), hi)
}

func TestVector2_Misc(t *testing.T) {
	assert.Equal(t, Vec2(4.0, -3.0), Vec2(3.0, 4.0).Perpendicular())
	assert.Equal(t, Vec2(1, -2), Vec2(1.7, -1.2).ToInt())
	assert.Equal(t, Vec3(1.0, 2.0, 3.0), Vec2(1.0, 2.0).ToVec3(3))
	assert.True(t, Vec2(3.0, -2.0).IsHorizontal())
	assert.False(t, Vec2(1.0, -2.0).IsHorizontal())
	assert.Equal(t, "[Vector: 1.5, -2]", Vec2(1.5, -2.0).String())
}
