package pga3

import "github.com/chazu/pga3/pkg/simd"

// Exponential and logarithm maps between the generators (Line, IdealLine,
// Branch) and the groups they generate (Motor, Translator, Rotor). Powf
// on a group element walks the one-parameter subgroup through its
// logarithm: g^e = exp(e·ln(g)).

// ---------------------------------------------------------------------------
// Line <-> Motor
// ---------------------------------------------------------------------------

// Exp returns the motor generated by l. A line with no Euclidean
// direction generates a pure translation.
func (l Line) Exp() Motor {
	det := l.G1.Dot(l.G1)
	if det <= 0 {
		return Motor{
			G0: simd.Float32x4{1, 0, 0, 0},
			G1: simd.Widen(0, l.G0),
		}
	}
	a := sqrtf(det)
	c := cosf(a)
	s := sinf(a) / a
	m := l.G0.Dot(l.G1)
	t := m / det * (c - s)
	return Motor{
		G0: simd.Widen(c, l.G1.Scale(s)),
		G1: simd.Widen(s*m, l.G0.Scale(s).Add(l.G1.Scale(t))),
	}
}

// Ln returns the line generating m. A motor with no rotation yields a
// line at infinity carrying the translation.
func (m Motor) Ln() Line {
	det := 1 - m.G0[0]*m.G0[0]
	if det <= 0 {
		return Line{G0: m.G1.XYZ()}
	}
	a := 1 / det
	b := acosf(m.G0[0]) * sqrtf(a)
	c := a * m.G1[0] * (1 - m.G0[0]*b)
	rot := m.G0.XYZ()
	return Line{
		G0: m.G1.XYZ().Scale(b).Add(rot.Scale(c)),
		G1: rot.Scale(b),
	}
}

// Powf raises m to the power e along its screw axis.
func (m Motor) Powf(e float32) Motor {
	return m.Ln().Scale(e).Exp()
}

// ---------------------------------------------------------------------------
// IdealLine <-> Translator
// ---------------------------------------------------------------------------

// Exp embeds l as a translator. Ideal lines square to zero, so the
// series stops after the linear term.
func (l IdealLine) Exp() Translator {
	return Translator{G0: simd.Widen(1, l.G0)}
}

func (t Translator) Ln() IdealLine {
	return IdealLine{G0: t.G0.XYZ().Scale(1 / t.G0[0])}
}

func (t Translator) Powf(e float32) Translator {
	return t.Ln().Scale(e).Exp()
}

// ---------------------------------------------------------------------------
// Branch <-> Rotor
// ---------------------------------------------------------------------------

// Exp returns the rotor generated by b. The magnitude of b is half the
// rotation angle.
func (b Branch) Exp() Rotor {
	n := Magnitude(b)
	if n == 0 {
		return OneRotor()
	}
	return Rotor{G0: simd.Widen(cosf(n), b.G0.Scale(sinf(n)/n))}
}

// Ln returns the branch generating r. A rotor without a bivector part has
// no rotation axis and maps to the zero branch.
func (r Rotor) Ln() Branch {
	n := Magnitude(r)
	if n == 0 || r.G0.XYZ().IsZero() {
		return ZeroBranch()
	}
	angle := acosf(r.G0[0] / n)
	k := angleOverSin(angle) / n
	return Branch{G0: r.G0.XYZ().Scale(k)}
}

// Powf raises r to the power e. A rotor that is a bare scalar has no
// logarithm, so the scalar is raised directly.
func (r Rotor) Powf(e float32) Rotor {
	if r.G0.XYZ().IsZero() {
		return Rotor{G0: simd.Float32x4{powf(r.G0[0], e), 0, 0, 0}}
	}
	return r.Ln().Scale(e).Exp()
}

// ---------------------------------------------------------------------------
// Scalar
// ---------------------------------------------------------------------------

func (s Scalar) Exp() Scalar { return Scalar(expf(float32(s))) }

func (s Scalar) Ln() Scalar { return Scalar(logf(float32(s))) }

func (s Scalar) Powf(e float32) Scalar { return Scalar(powf(float32(s), e)) }
