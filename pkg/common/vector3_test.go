package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	x := Vec3(1.0, 0.0, 0.0)
	y := Vec3(0.0, 1.0, 0.0)
	z := Vec3(0.0, 0.0, 1.0)

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Neg(), y.Cross(x))
	assert.Equal(t, 0.0, x.Dot(y))

	v := Vec3(2.0, 3.0, 6.0)
	assert.Equal(t, 7.0, v.Length())
	assert.Equal(t, 49.0, v.LengthSquared())
	assert.Equal(t, Vec3(3.0, 3.0, 6.0), v.Add(x))
	assert.Equal(t, Vec3(2.0, 2.0, 6.0), v.Sub(y))
	assert.Equal(t, Vec3(4.0, 6.0, 12.0), v.MulS(2))
	assert.Equal(t, Vec3(1.0, 1.5, 3.0), v.DivS(2))
	assert.Equal(t, Vec2(2.0, 3.0), v.ToVec2())
	assert.Equal(t, "[Vector: 2, 3, 6]", v.String())
}

func TestVector3_InPlace(t *testing.T) {
	v := Vec3(1, 2, 3)
	v.SetMulS(2)
	assert.Equal(t, Vec3(2, 4, 6), v, "every component is scaled")
	v.SetAdd(Vec3(1, 1, 1))
	assert.Equal(t, Vec3(3, 5, 7), v)
	v.SetSub(Vec3(3, 5, 7))
	assert.Equal(t, Vec3(0, 0, 0), v)
}

func TestVector3_Normalize(t *testing.T) {
	v := Vec3(2.0, 3.0, 6.0)
	assert.Equal(t, 7.0, v.Normalize())
	assert.True(t, v.Equals(Vec3(2.0/7, 3.0/7, 6.0/7)))

	zero := Vec3(0.0, 0.0, 0.0)
	assert.Equal(t, 0.0, zero.Normalize())
	assert.Equal(t, Vec3(0.0, 0.0, 0.0), zero)
}

func TestVector3_Boundaries(t *testing.T) {
	assert.Equal(t, Vec3[int16](math.MaxInt16, math.MaxInt16, math.MaxInt16), MaxVector3[int16]())
	assert.Equal(t, Vec3[int16](math.MinInt16, math.MinInt16, math.MinInt16), MinVector3[int16]())
}
