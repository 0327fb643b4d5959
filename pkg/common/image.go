package common

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// ToRectangle returns the smallest image.Rectangle covering the box, using
// floor for the minimum and ceil for the maximum. Box bottom becomes Min.Y.
func (box Box[T]) ToRectangle() image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(box.Left()))),
		int(math.Floor(float64(box.Bottom()))),
		int(math.Ceil(float64(box.Right()))),
		int(math.Ceil(float64(box.Top()))),
	)
}

func BoxFromRectangle[T SignedNumbers](rect image.Rectangle) Box[T] {
	rect = rect.Canon()
	return Box[T]{
		X: T(float64(rect.Min.X) + float64(rect.Dx())/2),
		Y: T(float64(rect.Min.Y) + float64(rect.Dy())/2),
		W: T(rect.Dx()),
		H: T(rect.Dy()),
	}
}

func (box Box[T]) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(float64(box.Left())), Y: toFixed(float64(box.Bottom()))},
		Max: fixed.Point26_6{X: toFixed(float64(box.Right())), Y: toFixed(float64(box.Top()))},
	}
}

func BoxFromFixed[T SignedNumbers](rect fixed.Rectangle26_6) Box[T] {
	minX, minY := fromFixed(rect.Min.X), fromFixed(rect.Min.Y)
	maxX, maxY := fromFixed(rect.Max.X), fromFixed(rect.Max.Y)
	return Box[T]{
		X: T((minX + maxX) / 2),
		Y: T((minY + maxY) / 2),
		W: T(maxX - minX),
		H: T(maxY - minY),
	}
}

func (v Vector2[T]) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(float64(v.X)), Y: toFixed(float64(v.Y))}
}

func Vec2FromFixed[T SignedNumbers](p fixed.Point26_6) Vector2[T] {
	return Vector2[T]{X: T(fromFixed(p.X)), Y: T(fromFixed(p.Y))}
}

func (v Vector2[T]) ToF64() f64.Vec2 {
	return f64.Vec2{float64(v.X), float64(v.Y)}
}

func Vec2FromF64[T SignedNumbers](v f64.Vec2) Vector2[T] {
	return Vector2[T]{X: T(v[0]), Y: T(v[1])}
}

func (v Vector3[T]) ToF64() f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func Vec3FromF64[T SignedNumbers](v f64.Vec3) Vector3[T] {
	return Vector3[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2])}
}
