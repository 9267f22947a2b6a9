// Package interop converts between pga3 entities and the matrix and
// quaternion types of mathgl and gonum.
//
// The even subalgebra of R(3,0,1) is isomorphic to the dual quaternions
// under
//
//	i ↦ -e23, j ↦ -e31, k ↦ -e12, ε ↦ -e0123
//
// so a Rotor is a unit quaternion and a Motor a unit dual quaternion with
// the same composition order: Mul on the pga3 side corresponds to
// quaternion multiplication with the operands in the same position.
package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/chazu/pga3/pkg/pga3"
	"github.com/chazu/pga3/pkg/simd"
)

// ---------------------------------------------------------------------------
// mathgl
// ---------------------------------------------------------------------------

// Mat4 converts m to a column-major homogeneous transform acting on column
// vectors. Column i is row i of m.Matrix().
func Mat4(m pga3.Motor) mgl32.Mat4 {
	return fromRows(m.Matrix())
}

func RotorMat4(r pga3.Rotor) mgl32.Mat4 {
	return fromRows(r.Matrix())
}

func TranslatorMat4(t pga3.Translator) mgl32.Mat4 {
	return fromRows(t.Matrix())
}

func fromRows(rows [4]pga3.Point) mgl32.Mat4 {
	return mgl32.Mat4FromCols(
		mgl32.Vec4(rows[0].G0),
		mgl32.Vec4(rows[1].G0),
		mgl32.Vec4(rows[2].G0),
		mgl32.Vec4(rows[3].G0),
	)
}

// Quat converts r to a mathgl quaternion.
func Quat(r pga3.Rotor) mgl32.Quat {
	return mgl32.Quat{W: r.G0[0], V: mgl32.Vec3{-r.G0[1], -r.G0[2], -r.G0[3]}}
}

func RotorFromQuat(q mgl32.Quat) pga3.Rotor {
	return pga3.NewRotor(-q.V[0], -q.V[1], -q.V[2], q.W)
}

// Vec3 returns the Euclidean coordinates of p. p must be finite.
func Vec3(p pga3.Point) mgl32.Vec3 {
	x, y, z := p.Euclidean()
	return mgl32.Vec3{x, y, z}
}

// Vec4 returns the homogeneous coordinates of p with the weight last.
func Vec4(p pga3.Point) mgl32.Vec4 {
	return mgl32.Vec4(p.G0)
}

func PointFromVec3(v mgl32.Vec3) pga3.Point {
	return pga3.PointAt(v[0], v[1], v[2])
}

func PointFromVec4(v mgl32.Vec4) pga3.Point {
	return pga3.Point{G0: simd.Float32x4(v)}
}

// ---------------------------------------------------------------------------
// gonum
// ---------------------------------------------------------------------------

// QuatNumber converts r to a gonum quaternion.
func QuatNumber(r pga3.Rotor) quat.Number {
	return toQuat(r.G0[0], r.G0.XYZ().Neg())
}

func RotorFromQuatNumber(q quat.Number) pga3.Rotor {
	s, v := fromQuat(q)
	return pga3.Rotor{G0: simd.Widen(s, v.Neg())}
}

// DualQuat converts m to a gonum dual quaternion. The real part carries
// the rotation and the dual part half the translation times the rotation,
// matching the layout dualquat.Mul expects.
func DualQuat(m pga3.Motor) dualquat.Number {
	return dualquat.Number{
		Real: toQuat(m.G0[0], m.G0.XYZ().Neg()),
		Dual: toQuat(-m.G1[0], m.G1.XYZ().Neg()),
	}
}

func MotorFromDualQuat(d dualquat.Number) pga3.Motor {
	s, b := fromQuat(d.Real)
	p, i := fromQuat(d.Dual)
	return pga3.Motor{
		G0: simd.Widen(s, b.Neg()),
		G1: simd.Widen(-p, i.Neg()),
	}
}

func toQuat(w float32, v simd.Float32x3) quat.Number {
	return quat.Number{
		Real: float64(w),
		Imag: float64(v[0]),
		Jmag: float64(v[1]),
		Kmag: float64(v[2]),
	}
}

func fromQuat(q quat.Number) (float32, simd.Float32x3) {
	return float32(q.Real), simd.Float32x3{float32(q.Imag), float32(q.Jmag), float32(q.Kmag)}
}
