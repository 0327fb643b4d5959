package common

const (
	Pi    float32 = 3.1415926535
	TwoPi float32 = 6.283185307
)

func DegToRad(deg float32) float32 {
	return deg * Pi / 180
}

func RadToDeg(rad float32) float32 {
	return rad * 180 / Pi
}
