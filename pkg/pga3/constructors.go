package pga3

import "github.com/chazu/pga3/pkg/simd"

func NewScalar(x float32) Scalar {
	return Scalar(x)
}

// NewPoint returns the weighted point (x, y, z, w).
func NewPoint(x, y, z, w float32) Point {
	return Point{G0: simd.Float32x4{x, y, z, w}}
}

// PointAt returns the unit-weight point at (x, y, z).
func PointAt(x, y, z float32) Point {
	return NewPoint(x, y, z, 1)
}

// PointOrigin returns the unit-weight point at the origin.
func PointOrigin() Point {
	return NewPoint(0, 0, 0, 1)
}

func (p Point) X() float32 { return p.G0[0] }
func (p Point) Y() float32 { return p.G0[1] }
func (p Point) Z() float32 { return p.G0[2] }
func (p Point) W() float32 { return p.G0[3] }

// Dir divides p by its weight and drops the weight.
func (p Point) Dir() Dir {
	return Dir{G0: p.G0.Scale(1 / Magnitude(p)).Head()}
}

// Euclidean returns the dehomogenized coordinates of p.
func (p Point) Euclidean() (x, y, z float32) {
	w := p.G0[3]
	return p.G0[0] / w, p.G0[1] / w, p.G0[2] / w
}

func NewOrigin() Origin {
	return Origin{G0: 1}
}

func NewDir(x, y, z float32) Dir {
	return Dir{G0: simd.Float32x3{x, y, z}}
}

// Point places d at unit weight, turning a direction into the point it
// reaches from the origin.
func (d Dir) Point() Point {
	return Point{G0: simd.Extend(d.G0, 1)}
}

// Length is the Euclidean length of the direction, measured through its
// dual since ideal points have no Euclidean magnitude.
func (d Dir) Length() float32 {
	return IdealMagnitude(d)
}

// Normalize scales d to unit length.
func (d Dir) Normalize() Dir {
	return Dir{G0: d.G0.Scale(1 / d.Length())}
}

// NewPlane returns the plane with normal (x, y, z) at signed distance
// distance from the origin along that normal.
func NewPlane(x, y, z, distance float32) Plane {
	return Plane{G0: simd.Float32x4{x, y, z, -distance}}
}

func NewFlat(x, y, z float32) Flat {
	return Flat{G0: simd.Float32x3{x, y, z}}
}

func NewBranch(x, y, z float32) Branch {
	return Branch{G0: simd.Float32x3{x, y, z}}
}

func NewIdealLine(x, y, z float32) IdealLine {
	return IdealLine{G0: simd.Float32x3{x, y, z}}
}

// NewLine returns the line with the given moment and direction.
func NewLine(moment, direction simd.Float32x3) Line {
	return Line{G0: moment, G1: direction}
}

// LineThrough joins two points into the line running from a to b.
func LineThrough(a, b Point) Line {
	return RegressiveProduct(a, b).Line()
}

// NewRotor takes the bivector part first and the scalar last, in the
// x, y, z, w order of a quaternion.
func NewRotor(x, y, z, w float32) Rotor {
	return Rotor{G0: simd.Float32x4{w, x, y, z}}
}

// RotorFromAngleAxis returns the rotor turning counter-clockwise by angle
// radians about axis, which should be unit length.
func RotorFromAngleAxis(angle float32, axis Dir) Rotor {
	half := angle * 0.5
	return Rotor{G0: simd.Widen(cosf(half), axis.G0.Scale(-sinf(half)))}
}

// NewTranslator returns the translator moving points by (x, y, z).
func NewTranslator(x, y, z float32) Translator {
	return Translator{G0: simd.Float32x4{1, -x / 2, -y / 2, -z / 2}}
}

// NewMotor assembles a motor from its scalar, branch, pseudoscalar and
// ideal parts.
func NewMotor(s float32, b Branch, p float32, i IdealLine) Motor {
	return Motor{G0: simd.Widen(s, b.G0), G1: simd.Widen(p, i.G0)}
}

// ---------------------------------------------------------------------------
// Zero and One
// ---------------------------------------------------------------------------

func ZeroPoint() Point           { return Point{} }
func ZeroPlane() Plane           { return Plane{} }
func ZeroBranch() Branch         { return Branch{} }
func ZeroIdealLine() IdealLine   { return IdealLine{} }
func ZeroLine() Line             { return Line{} }
func ZeroRotor() Rotor           { return Rotor{} }
func ZeroTranslator() Translator { return Translator{} }
func ZeroMotor() Motor           { return Motor{} }

// OneRotor is the identity rotation.
func OneRotor() Rotor {
	return Rotor{G0: simd.Float32x4{1, 0, 0, 0}}
}

// OneTranslator is the identity translation.
func OneTranslator() Translator {
	return Translator{G0: simd.Float32x4{1, 0, 0, 0}}
}

// OneMotor is the identity motion.
func OneMotor() Motor {
	return Motor{G0: simd.Float32x4{1, 0, 0, 0}}
}
