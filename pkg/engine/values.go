package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/pga3/pkg/pga3"
)

// classifyEps is the relative size below which a grade counts as absent
// when naming the result of a general product.
const classifyEps = 1e-6

// classify narrows a general multivector to the entity type its nonzero
// grades describe. Mixed odd and even results stay as multivectors.
func classify(m pga3.Multivector) pga3.Element {
	var peak float32
	for _, c := range m {
		if c < 0 {
			c = -c
		}
		if c > peak {
			peak = c
		}
	}
	if peak == 0 {
		return pga3.Scalar(0)
	}

	var present [5]bool
	for g := 0; g <= 4; g++ {
		for _, c := range m.Grade(g) {
			if c > classifyEps*peak || c < -classifyEps*peak {
				present[g] = true
				break
			}
		}
	}

	switch present {
	case [5]bool{true, false, false, false, false}:
		return m.Scalar()
	case [5]bool{false, true, false, false, false}:
		return m.Plane()
	case [5]bool{false, false, true, false, false}:
		return m.Line()
	case [5]bool{false, false, false, true, false}:
		return m.Point()
	}
	if !present[1] && !present[3] {
		return m.Motor()
	}
	return m
}

// projectLike narrows m to the type family of like: points stay points,
// planes stay planes, lines stay lines and group elements become motors.
func projectLike(m pga3.Multivector, like pga3.Element) pga3.Element {
	switch like.(type) {
	case pga3.Point, pga3.Dir, pga3.Origin:
		return m.Point()
	case pga3.Plane, pga3.Flat:
		return m.Plane()
	case pga3.Line, pga3.Branch, pga3.IdealLine:
		return m.Line()
	case pga3.Rotor, pga3.Translator, pga3.Motor:
		return m.Motor()
	case pga3.Scalar:
		return m.Scalar()
	}
	return classify(m)
}

// asMotor promotes any group element to a motor.
func asMotor(v pga3.Element) (pga3.Motor, bool) {
	switch e := v.(type) {
	case pga3.Motor:
		return e, true
	case pga3.Rotor:
		return e.Motor(), true
	case pga3.Translator:
		return e.Motor(), true
	case pga3.Scalar:
		return pga3.NewMotor(float32(e), pga3.ZeroBranch(), 0, pga3.ZeroIdealLine()), true
	}
	return pga3.Motor{}, false
}

// kindName is the builtin that constructs values of v's type.
func kindName(v pga3.Element) string {
	switch v.(type) {
	case pga3.Scalar:
		return "scalar"
	case pga3.Point:
		return "point"
	case pga3.Origin:
		return "origin"
	case pga3.Dir:
		return "dir"
	case pga3.Plane:
		return "plane"
	case pga3.Flat:
		return "flat"
	case pga3.Branch:
		return "branch"
	case pga3.IdealLine:
		return "ideal-line"
	case pga3.Line:
		return "line"
	case pga3.Rotor:
		return "rotor"
	case pga3.Translator:
		return "translator"
	case pga3.Motor:
		return "motor"
	}
	return "multivector"
}

// lanes returns the stored components of v in storage order.
func lanes(v pga3.Element) []float32 {
	switch e := v.(type) {
	case pga3.Scalar:
		return []float32{float32(e)}
	case pga3.Point:
		return e.G0[:]
	case pga3.Origin:
		return []float32{e.G0}
	case pga3.Dir:
		return e.G0[:]
	case pga3.Plane:
		return e.G0[:]
	case pga3.Flat:
		return e.G0[:]
	case pga3.Branch:
		return e.G0[:]
	case pga3.IdealLine:
		return e.G0[:]
	case pga3.Line:
		return append(e.G0[:], e.G1[:]...)
	case pga3.Rotor:
		return e.G0[:]
	case pga3.Translator:
		return e.G0[:]
	case pga3.Motor:
		return append(e.G0[:], e.G1[:]...)
	case pga3.Multivector:
		return e[:]
	}
	mv := v.Multivector()
	return mv[:]
}

func formatElement(v pga3.Element) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(kindName(v))
	for _, c := range lanes(v) {
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	sb.WriteString(")")
	return sb.String()
}

// parity reports whether v has odd-grade components, and whether it mixes
// odd and even grades.
func parity(v pga3.Element) (odd, mixed bool) {
	m := v.Multivector()
	even := m.Even()
	hasOdd := m.Sub(even) != pga3.Multivector{}
	hasEven := even != pga3.Multivector{}
	return hasOdd, hasOdd && hasEven
}

func typeError(op string, v pga3.Element) error {
	return fmt.Errorf("%s: unsupported operand %s", op, kindName(v))
}
