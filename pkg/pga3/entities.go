package pga3

import "github.com/chazu/pga3/pkg/simd"

// Element is anything that can be expanded into a full Multivector. Every
// entity type implements it, which is what lets the product operators in
// products.go accept any pair of operands.
type Element interface {
	Multivector() Multivector
}

// Compile-time interface checks.
var (
	_ Element = Multivector{}
	_ Element = Scalar(0)
	_ Element = Point{}
	_ Element = Origin{}
	_ Element = Dir{}
	_ Element = Plane{}
	_ Element = Flat{}
	_ Element = Branch{}
	_ Element = IdealLine{}
	_ Element = Line{}
	_ Element = Rotor{}
	_ Element = Translator{}
	_ Element = Motor{}
)

// Scalar is a grade-0 element.
type Scalar float32

// Point is a homogeneous weighted point. W == 0 makes it a direction.
type Point struct {
	G0 simd.Float32x4
}

// Origin is the coordinate origin scaled by its weight.
type Origin struct {
	G0 float32
}

// Dir is an ideal point, the direction part of a Point.
type Dir struct {
	G0 simd.Float32x3
}

// Plane is the oriented plane x·X + y·Y + z·Z + d = 0.
type Plane struct {
	G0 simd.Float32x4
}

// Flat is a plane through the origin, given by its normal.
type Flat struct {
	G0 simd.Float32x3
}

// Branch generates rotations about an axis through the origin. Its
// magnitude is half the rotation angle.
type Branch struct {
	G0 simd.Float32x3
}

// IdealLine generates translations. It squares to zero.
type IdealLine struct {
	G0 simd.Float32x3
}

// Line generates general screw motions. G0 is the moment (ideal part)
// and G1 the direction (Euclidean part).
type Line struct {
	G0 simd.Float32x3
	G1 simd.Float32x3
}

// Rotor is a rotation about an axis through the origin. G0 holds the
// scalar in lane 0 and the branch in lanes 1..3.
type Rotor struct {
	G0 simd.Float32x4
}

// Translator is a pure translation. G0 holds the scalar in lane 0 and the
// ideal line in lanes 1..3.
type Translator struct {
	G0 simd.Float32x4
}

// Motor is a general rigid motion. G0 holds the scalar and the branch,
// G1 holds the pseudoscalar and the ideal line.
type Motor struct {
	G0 simd.Float32x4
	G1 simd.Float32x4
}

// ---------------------------------------------------------------------------
// Blade layouts
// ---------------------------------------------------------------------------

// component places one lane of an entity on a signed basis blade.
type component struct {
	blade uint8
	sign  float32
}

var (
	pointBasis       = []component{{bE023, -1}, {bE013, 1}, {bE012, -1}, {bE123, 1}}
	dirBasis         = pointBasis[:3]
	planeBasis       = []component{{bE1, 1}, {bE2, 1}, {bE3, 1}, {bE0, 1}}
	flatBasis        = planeBasis[:3]
	branchBasis      = []component{{bE23, 1}, {bE13, -1}, {bE12, 1}}
	idealBasis       = []component{{bE01, 1}, {bE02, 1}, {bE03, 1}}
	rotorBasis       = append([]component{{bScalar, 1}}, branchBasis...)
	translatorBasis  = append([]component{{bScalar, 1}}, idealBasis...)
	pseudoIdealBasis = append([]component{{bE0123, 1}}, idealBasis...)
)

func embed(m *Multivector, basis []component, lanes []float32) {
	for i, c := range basis {
		m[c.blade] += c.sign * lanes[i]
	}
}

func pick(m Multivector, basis []component, lanes []float32) {
	for i, c := range basis {
		lanes[i] = c.sign * m[c.blade]
	}
}

// ---------------------------------------------------------------------------
// Expansion into a Multivector
// ---------------------------------------------------------------------------

func (s Scalar) Multivector() (m Multivector) {
	m[bScalar] = float32(s)
	return m
}

func (p Point) Multivector() (m Multivector) {
	embed(&m, pointBasis, p.G0[:])
	return m
}

func (o Origin) Multivector() (m Multivector) {
	m[bE123] = o.G0
	return m
}

func (d Dir) Multivector() (m Multivector) {
	embed(&m, dirBasis, d.G0[:])
	return m
}

func (p Plane) Multivector() (m Multivector) {
	embed(&m, planeBasis, p.G0[:])
	return m
}

func (f Flat) Multivector() (m Multivector) {
	embed(&m, flatBasis, f.G0[:])
	return m
}

func (b Branch) Multivector() (m Multivector) {
	embed(&m, branchBasis, b.G0[:])
	return m
}

func (l IdealLine) Multivector() (m Multivector) {
	embed(&m, idealBasis, l.G0[:])
	return m
}

func (l Line) Multivector() (m Multivector) {
	embed(&m, idealBasis, l.G0[:])
	embed(&m, branchBasis, l.G1[:])
	return m
}

func (r Rotor) Multivector() (m Multivector) {
	embed(&m, rotorBasis, r.G0[:])
	return m
}

func (t Translator) Multivector() (m Multivector) {
	embed(&m, translatorBasis, t.G0[:])
	return m
}

func (v Motor) Multivector() (m Multivector) {
	embed(&m, rotorBasis, v.G0[:])
	embed(&m, pseudoIdealBasis, v.G1[:])
	return m
}

// ---------------------------------------------------------------------------
// Projection out of a Multivector
//
// Each projection keeps the blades the target type stores and drops the
// rest, so callers pick the type that matches the grade of the product.
// ---------------------------------------------------------------------------

func (m Multivector) Scalar() Scalar {
	return Scalar(m[bScalar])
}

func (m Multivector) Point() (p Point) {
	pick(m, pointBasis, p.G0[:])
	return p
}

func (m Multivector) Origin() Origin {
	return Origin{G0: m[bE123]}
}

func (m Multivector) Dir() (d Dir) {
	pick(m, dirBasis, d.G0[:])
	return d
}

func (m Multivector) Plane() (p Plane) {
	pick(m, planeBasis, p.G0[:])
	return p
}

func (m Multivector) Flat() (f Flat) {
	pick(m, flatBasis, f.G0[:])
	return f
}

func (m Multivector) Branch() (b Branch) {
	pick(m, branchBasis, b.G0[:])
	return b
}

func (m Multivector) IdealLine() (l IdealLine) {
	pick(m, idealBasis, l.G0[:])
	return l
}

func (m Multivector) Line() (l Line) {
	pick(m, idealBasis, l.G0[:])
	pick(m, branchBasis, l.G1[:])
	return l
}

func (m Multivector) Rotor() (r Rotor) {
	pick(m, rotorBasis, r.G0[:])
	return r
}

func (m Multivector) Translator() (t Translator) {
	pick(m, translatorBasis, t.G0[:])
	return t
}

func (m Multivector) Motor() (v Motor) {
	pick(m, rotorBasis, v.G0[:])
	pick(m, pseudoIdealBasis, v.G1[:])
	return v
}
