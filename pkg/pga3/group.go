package pga3

import "github.com/chazu/pga3/pkg/simd"

// Group is satisfied by the group elements that generic motion code works
// with: Scalar, Rotor, Translator and Motor.
type Group[G any] interface {
	Element
	ScalarPart() float32
	Neg() G
	Reversal() G
	Mul(G) G
	Powf(e float32) G
}

var (
	_ Group[Scalar]     = Scalar(0)
	_ Group[Rotor]      = Rotor{}
	_ Group[Translator] = Translator{}
	_ Group[Motor]      = Motor{}
)

// ---------------------------------------------------------------------------
// Scalar
// ---------------------------------------------------------------------------

func (s Scalar) ScalarPart() float32 { return float32(s) }
func (s Scalar) Neg() Scalar         { return -s }
func (s Scalar) Reversal() Scalar    { return s }
func (s Scalar) Mul(o Scalar) Scalar { return s * o }

// ---------------------------------------------------------------------------
// Rotor
// ---------------------------------------------------------------------------

func (r Rotor) ScalarPart() float32 { return r.G0[0] }
func (r Rotor) Neg() Rotor          { return Rotor{G0: r.G0.Neg()} }

func (r Rotor) Reversal() Rotor {
	return Rotor{G0: simd.Widen(r.G0[0], r.G0.XYZ().Neg())}
}

// Mul composes rotors: r.Mul(o) applies o first, then r.
func (r Rotor) Mul(o Rotor) Rotor {
	return GeometricProduct(r, o).Rotor()
}

// Branch returns the bivector part of r.
func (r Rotor) Branch() Branch {
	return Branch{G0: r.G0.XYZ()}
}

func (r Rotor) Motor() Motor {
	return Motor{G0: r.G0}
}

// ---------------------------------------------------------------------------
// Translator
// ---------------------------------------------------------------------------

func (t Translator) ScalarPart() float32 { return t.G0[0] }
func (t Translator) Neg() Translator     { return Translator{G0: t.G0.Neg()} }

func (t Translator) Reversal() Translator {
	return Translator{G0: simd.Widen(t.G0[0], t.G0.XYZ().Neg())}
}

// Mul composes translators; the result translates by the sum of both
// offsets.
func (t Translator) Mul(o Translator) Translator {
	return GeometricProduct(t, o).Translator()
}

func (t Translator) IdealLine() IdealLine {
	return IdealLine{G0: t.G0.XYZ()}
}

func (t Translator) Motor() Motor {
	return Motor{
		G0: simd.Float32x4{t.G0[0], 0, 0, 0},
		G1: simd.Widen(0, t.G0.XYZ()),
	}
}

// Offset is the translation (x, y, z) that t applies to a point, the
// inverse of NewTranslator.
func (t Translator) Offset() (x, y, z float32) {
	k := -2 / t.G0[0]
	return k * t.G0[1], k * t.G0[2], k * t.G0[3]
}

// ---------------------------------------------------------------------------
// Motor
// ---------------------------------------------------------------------------

func (m Motor) ScalarPart() float32 { return m.G0[0] }
func (m Motor) Neg() Motor          { return Motor{G0: m.G0.Neg(), G1: m.G1.Neg()} }

func (m Motor) Reversal() Motor {
	return Motor{
		G0: simd.Widen(m.G0[0], m.G0.XYZ().Neg()),
		G1: simd.Widen(m.G1[0], m.G1.XYZ().Neg()),
	}
}

// Mul composes motors: m.Mul(o) applies o first, then m.
func (m Motor) Mul(o Motor) Motor {
	return GeometricProduct(m, o).Motor()
}

func (m Motor) Motor() Motor { return m }

// Rotor returns the rotational part of m, dropping the ideal part.
func (m Motor) Rotor() Rotor {
	return Rotor{G0: m.G0}
}

// Translation returns the offset m applies to the origin.
func (m Motor) Translation() (x, y, z float32) {
	return m.TransformPoint(PointOrigin()).Euclidean()
}

// TransformPoint applies m to p.
func (m Motor) TransformPoint(p Point) Point {
	return Transformation(m, p).Point()
}

// TransformPlane applies m to p.
func (m Motor) TransformPlane(p Plane) Plane {
	return Transformation(m, p).Plane()
}

// TransformLine applies m to l.
func (m Motor) TransformLine(l Line) Line {
	return Transformation(m, l).Line()
}

// ---------------------------------------------------------------------------
// Generator arithmetic
// ---------------------------------------------------------------------------

func (b Branch) Scale(s float32) Branch { return Branch{G0: b.G0.Scale(s)} }

func (l IdealLine) Scale(s float32) IdealLine { return IdealLine{G0: l.G0.Scale(s)} }

func (l Line) Scale(s float32) Line {
	return Line{G0: l.G0.Scale(s), G1: l.G1.Scale(s)}
}

func (l Line) Add(o Line) Line {
	return Line{G0: l.G0.Add(o.G0), G1: l.G1.Add(o.G1)}
}

// Direction returns the Euclidean part of l as a branch.
func (l Line) Direction() Branch { return Branch{G0: l.G1} }

// Moment returns the ideal part of l.
func (l Line) Moment() IdealLine { return IdealLine{G0: l.G0} }
