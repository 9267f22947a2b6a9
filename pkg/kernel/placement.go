package kernel

import (
	"math"

	"github.com/chazu/pga3/pkg/pga3"
)

// gimbalEpsilon is how small cos y may get before the x and z rotations
// are treated as coupled. Below it, float32 noise in the matrix dominates
// the separate x and z angles.
const gimbalEpsilon = 1e-4

// rotation returns the 3×3 rotation block of m acting on column vectors:
// R[i][j] is coordinate i of the image of axis j.
func rotation(m pga3.Motor) (r [3][3]float64) {
	rows := m.Matrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = float64(rows[j].G0[i])
		}
	}
	return r
}

// EulerZYX decomposes the rotation of m into angles (radians) about the
// fixed X, Y and Z axes, applied in that order: R = Rz(z)·Ry(y)·Rx(x).
// At gimbal lock (y = ±π/2) x is reported as zero and z absorbs the
// remaining rotation.
func EulerZYX(m pga3.Motor) (x, y, z float64) {
	r := rotation(m)
	cy := math.Hypot(r[0][0], r[1][0])
	y = math.Atan2(-r[2][0], cy)
	if cy < gimbalEpsilon {
		return 0, y, math.Atan2(-r[0][1], r[1][1])
	}
	x = math.Atan2(r[2][1], r[2][2])
	z = math.Atan2(r[1][0], r[0][0])
	return x, y, z
}

// Translation returns where m moves the origin.
func Translation(m pga3.Motor) [3]float64 {
	x, y, z := m.Translation()
	return [3]float64{float64(x), float64(y), float64(z)}
}

// MotorFromEulerZYX is the inverse of EulerZYX combined with a translation:
// rotate about X, then Y, then Z, then translate by t.
func MotorFromEulerZYX(x, y, z float64, t [3]float64) pga3.Motor {
	rx := pga3.RotorFromAngleAxis(float32(x), pga3.NewDir(1, 0, 0))
	ry := pga3.RotorFromAngleAxis(float32(y), pga3.NewDir(0, 1, 0))
	rz := pga3.RotorFromAngleAxis(float32(z), pga3.NewDir(0, 0, 1))
	tr := pga3.NewTranslator(float32(t[0]), float32(t[1]), float32(t[2]))
	return tr.Motor().Mul(rz.Mul(ry).Mul(rx).Motor())
}
