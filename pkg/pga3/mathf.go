package pga3

import "math"

// float32 wrappers over package math. The algebra is single precision
// throughout; intermediate trigonometry runs in float64 and is rounded
// once on the way out.

func sqrtf(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }

func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }

func expf(x float32) float32 { return float32(math.Exp(float64(x))) }

func logf(x float32) float32 { return float32(math.Log(float64(x))) }

func powf(x, e float32) float32 { return float32(math.Pow(float64(x), float64(e))) }

func absf(x float32) float32 { return float32(math.Abs(float64(x))) }

// acosf clamps its argument to [-1, 1] first. Rounding routinely pushes
// the scalar part of a unit rotor or motor a few ulps past 1.
func acosf(x float32) float32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return float32(math.Acos(float64(x)))
}

// angleOverSin returns angle / sin(angle), which tends to 1 as the angle
// vanishes.
func angleOverSin(angle float32) float32 {
	s := sinf(angle)
	if s == 0 {
		return 1
	}
	return angle / s
}
