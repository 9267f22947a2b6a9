package pga3

import "fmt"

// Multivector is a general element of the algebra with one coefficient per
// basis blade, indexed by blade bitmask. It is the common carrier for the
// results of the grade-filtered products; the entity types project out of
// it with Point, Line, Motor and friends.
type Multivector [bladeCount]float32

// Multivector returns m itself so that Multivector satisfies Element.
func (m Multivector) Multivector() Multivector {
	return m
}

// product multiplies every pair of blades through the Cayley table and
// keeps the terms admitted by keep.
func product(a, b Multivector, keep gradeFilter) Multivector {
	var out Multivector
	for i := uint8(0); i < bladeCount; i++ {
		if a[i] == 0 {
			continue
		}
		r := grade(i)
		for j := uint8(0); j < bladeCount; j++ {
			if b[j] == 0 {
				continue
			}
			e := cayley[i][j]
			if e.sign == 0 {
				continue
			}
			if !keep(r, grade(j), grade(e.blade)) {
				continue
			}
			out[e.blade] += e.sign * a[i] * b[j]
		}
	}
	return out
}

// GeometricProduct is the full Clifford product a·b.
func (m Multivector) GeometricProduct(o Multivector) Multivector {
	return product(m, o, keepAll)
}

// OuterProduct is the geometric product filtered by t == r + s (join of
// subspaces, also called wedge).
func (m Multivector) OuterProduct(o Multivector) Multivector {
	return product(m, o, outerFilter)
}

// InnerProduct is the geometric product filtered by t == |r - s|.
func (m Multivector) InnerProduct(o Multivector) Multivector {
	return product(m, o, innerFilter)
}

// LeftContraction is the geometric product filtered by t == s - r.
func (m Multivector) LeftContraction(o Multivector) Multivector {
	return product(m, o, leftContractionFilter)
}

// RightContraction is the geometric product filtered by t == r - s.
func (m Multivector) RightContraction(o Multivector) Multivector {
	return product(m, o, rightContractionFilter)
}

// ScalarProduct is the geometric product filtered by t == 0.
func (m Multivector) ScalarProduct(o Multivector) Multivector {
	return product(m, o, scalarFilter)
}

// RegressiveProduct is the outer product taken on the dual side,
// undual(dual(a) ∧ dual(b)). It meets planes into lines and points, and
// joins points into lines and planes.
func (m Multivector) RegressiveProduct(o Multivector) Multivector {
	return m.Dual().OuterProduct(o.Dual()).Undual()
}

// Dual maps every blade onto its complement, oriented so that
// e ∧ dual(e) = e0123.
func (m Multivector) Dual() Multivector {
	var out Multivector
	for s := uint8(0); s < bladeCount; s++ {
		out[bE0123^s] = dualSign[s] * m[s]
	}
	return out
}

// Undual is the inverse of Dual.
func (m Multivector) Undual() Multivector {
	var out Multivector
	for c := uint8(0); c < bladeCount; c++ {
		out[bE0123^c] = undualSign[c] * m[c]
	}
	return out
}

func (m Multivector) negateGrades(neg func(g int) bool) Multivector {
	for i := uint8(0); i < bladeCount; i++ {
		if neg(grade(i)) {
			m[i] = -m[i]
		}
	}
	return m
}

// Reversal negates the components with grade % 4 >= 2.
func (m Multivector) Reversal() Multivector {
	return m.negateGrades(func(g int) bool { return g%4 >= 2 })
}

// Automorphism negates the odd-grade components (main involution).
func (m Multivector) Automorphism() Multivector {
	return m.negateGrades(func(g int) bool { return g%2 == 1 })
}

// Conjugation negates the components with (grade + 3) % 4 < 2.
func (m Multivector) Conjugation() Multivector {
	return m.negateGrades(func(g int) bool { return (g+3)%4 < 2 })
}

// SquaredMagnitude is the scalar part of m·reversal(m). Blades that
// contain e0 contribute nothing.
func (m Multivector) SquaredMagnitude() float32 {
	return m.ScalarProduct(m.Reversal())[bScalar]
}

// Magnitude is the Euclidean norm; the ideal part is excluded.
func (m Multivector) Magnitude() float32 {
	return sqrtf(m.SquaredMagnitude())
}

// Inverse raises m to the scalar power -1: reversal(m) / |m|².
func (m Multivector) Inverse() Multivector {
	return m.Reversal().Scale(1 / m.SquaredMagnitude())
}

// Signum divides m by its magnitude.
func (m Multivector) Signum() Multivector {
	return m.Scale(1 / m.Magnitude())
}

// Transformation is the sandwich product m·x·reversal(m).
func (m Multivector) Transformation(x Multivector) Multivector {
	return m.GeometricProduct(x).GeometricProduct(m.Reversal())
}

func (m Multivector) Add(o Multivector) Multivector {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

func (m Multivector) Sub(o Multivector) Multivector {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

// Scale multiplies every component by s.
func (m Multivector) Scale(s float32) Multivector {
	for i := range m {
		m[i] *= s
	}
	return m
}

func (m Multivector) Neg() Multivector {
	return m.Scale(-1)
}

// Grade keeps only the components of grade g.
func (m Multivector) Grade(g int) Multivector {
	var out Multivector
	for i := uint8(0); i < bladeCount; i++ {
		if grade(i) == g {
			out[i] = m[i]
		}
	}
	return out
}

// Even keeps only the even-grade components.
func (m Multivector) Even() Multivector {
	return m.Grade(0).Add(m.Grade(2)).Add(m.Grade(4))
}

var bladeNames = [bladeCount]string{
	"", "e0", "e1", "e01", "e2", "e02", "e12", "e012",
	"e3", "e03", "e13", "e013", "e23", "e023", "e123", "e0123",
}

func (m Multivector) String() string {
	s := ""
	for i, v := range m {
		if v == 0 {
			continue
		}
		if s != "" {
			s += " + "
		}
		s += fmt.Sprintf("%g%s", v, bladeNames[i])
	}
	if s == "" {
		return "0"
	}
	return s
}
