package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/pga3/pkg/kernel"
	"github.com/chazu/pga3/pkg/pga3"
	"github.com/chazu/pga3/pkg/scene"
	"github.com/chazu/pga3/pkg/simd"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms script source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: anti-project -> anti_project
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpElement wraps a pga3 element so it can be passed between builtins.
// Scalars never appear here; they travel as plain zygomys numbers.
type sexpElement struct {
	v pga3.Element
}

func (e *sexpElement) SexpString(ps *zygo.PrintState) string { return formatElement(e.v) }
func (e *sexpElement) Type() *zygo.RegisteredType            { return nil }

// sexpNode refers to a scene node by name.
type sexpNode struct {
	name string
}

func (n *sexpNode) SexpString(ps *zygo.PrintState) string { return fmt.Sprintf("(node %q)", n.name) }
func (n *sexpNode) Type() *zygo.RegisteredType            { return nil }

// wrap returns the zygomys form of v.
func wrap(v pga3.Element) zygo.Sexp {
	if s, ok := v.(pga3.Scalar); ok {
		return number(float32(s))
	}
	return &sexpElement{v: v}
}

func number(f float32) zygo.Sexp {
	return &zygo.SexpFloat{Val: float64(f)}
}

func floatArray(fs []float32) *zygo.SexpArray {
	items := make([]zygo.Sexp, len(fs))
	for i, f := range fs {
		items[i] = number(f)
	}
	return &zygo.SexpArray{Val: items}
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// arg returns the keyword argument kw if present, otherwise positional i.
func (a kwArgs) arg(kw string, i int) (zygo.Sexp, bool) {
	if v, ok := a.kw[kw]; ok {
		return v, true
	}
	if i < len(a.positional) {
		return a.positional[i], true
	}
	return nil, false
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toFloat32(s zygo.Sexp) (float32, error) {
	f, err := toFloat64(s)
	return float32(f), err
}

// toFloats extracts exactly n numbers from args.
func toFloats(args []zygo.Sexp, n int) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d arguments", n, len(args))
	}
	out := make([]float32, n)
	for i, a := range args {
		f, err := toFloat32(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toNodeName accepts a node reference or a plain string.
func toNodeName(s zygo.Sexp) (string, error) {
	if n, ok := s.(*sexpNode); ok {
		return n.name, nil
	}
	name, err := toString(s)
	if err != nil {
		return "", fmt.Errorf("expected node reference or name: %w", err)
	}
	return name, nil
}

// toElement extracts a geometric element. Numbers become scalars.
func toElement(s zygo.Sexp) (pga3.Element, error) {
	switch v := s.(type) {
	case *sexpElement:
		return v.v, nil
	case *zygo.SexpInt, *zygo.SexpFloat:
		f, err := toFloat32(s)
		return pga3.Scalar(f), err
	}
	return nil, fmt.Errorf("expected geometric element, got %T (%s)", s, s.SexpString(nil))
}

// toElements extracts exactly n geometric elements from args.
func toElements(args []zygo.Sexp, n int) ([]pga3.Element, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	out := make([]pga3.Element, n)
	for i, a := range args {
		e, err := toElement(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = e
	}
	return out, nil
}

func toPoint(s zygo.Sexp) (pga3.Point, error) {
	e, err := toElement(s)
	if err != nil {
		return pga3.Point{}, err
	}
	switch p := e.(type) {
	case pga3.Point:
		return p, nil
	case pga3.Dir:
		return p.Point(), nil
	}
	return pga3.Point{}, fmt.Errorf("expected point, got %s", kindName(e))
}

func toMotor(s zygo.Sexp) (pga3.Motor, error) {
	e, err := toElement(s)
	if err != nil {
		return pga3.Motor{}, err
	}
	m, ok := asMotor(e)
	if !ok {
		return pga3.Motor{}, fmt.Errorf("expected motor, rotor or translator, got %s", kindName(e))
	}
	return m, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the geometry and scene builtins into a zygomys
// environment. Scene builtins populate sc during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {
	registerConstructors(env)
	registerOperators(env)
	registerSceneBuiltins(env, sc)
}

// registerConstructors installs the builtins that build entities from numbers.
func registerConstructors(env *zygo.Zlisp) {

	// -----------------------------------------------------------------------
	// (point 1 2 3) or (point x y z w)
	// -----------------------------------------------------------------------
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch len(args) {
		case 3:
			f, err := toFloats(args, 3)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("point: %w", err)
			}
			return wrap(pga3.PointAt(f[0], f[1], f[2])), nil
		case 4:
			f, err := toFloats(args, 4)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("point: %w", err)
			}
			return wrap(pga3.NewPoint(f[0], f[1], f[2], f[3])), nil
		}
		return zygo.SexpNull, fmt.Errorf("point requires 3 or 4 coordinates, got %d", len(args))
	})

	// -----------------------------------------------------------------------
	// (dir 0 0 1)
	// -----------------------------------------------------------------------
	env.AddFunction("dir", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args, 3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("dir: %w", err)
		}
		return wrap(pga3.NewDir(f[0], f[1], f[2])), nil
	})

	// -----------------------------------------------------------------------
	// (plane 0 0 1 5) is the plane z = 5
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args, 4)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		return wrap(pga3.NewPlane(f[0], f[1], f[2], f[3])), nil
	})

	// -----------------------------------------------------------------------
	// (flat 0 0 1) is a plane through the origin
	// -----------------------------------------------------------------------
	env.AddFunction("flat", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args, 3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("flat: %w", err)
		}
		return wrap(pga3.NewFlat(f[0], f[1], f[2])), nil
	})

	// -----------------------------------------------------------------------
	// (branch 0 0 0.5)
	// -----------------------------------------------------------------------
	env.AddFunction("branch", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args, 3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("branch: %w", err)
		}
		return wrap(pga3.NewBranch(f[0], f[1], f[2])), nil
	})

	// -----------------------------------------------------------------------
	// (ideal-line 1 0 0)
	// -----------------------------------------------------------------------
	env.AddFunction("ideal_line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args, 3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ideal-line: %w", err)
		}
		return wrap(pga3.NewIdealLine(f[0], f[1], f[2])), nil
	})

	// -----------------------------------------------------------------------
	// (line (point 0 0 0) (point 0 0 1)) or (line mx my mz dx dy dz)
	// -----------------------------------------------------------------------
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch len(args) {
		case 2:
			a, err := toPoint(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("line: from: %w", err)
			}
			b, err := toPoint(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("line: to: %w", err)
			}
			return wrap(pga3.LineThrough(a, b)), nil
		case 6:
			f, err := toFloats(args, 6)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("line: %w", err)
			}
			return wrap(pga3.NewLine(
				simd.Float32x3{f[0], f[1], f[2]},
				simd.Float32x3{f[3], f[4], f[5]},
			)), nil
		}
		return zygo.SexpNull, fmt.Errorf("line requires two points or six coordinates, got %d arguments", len(args))
	})

	// -----------------------------------------------------------------------
	// (rotor :angle 1.5708 :axis (dir 0 0 1)) or (rotor x y z w)
	// -----------------------------------------------------------------------
	env.AddFunction("rotor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.kw) == 0 && len(pa.positional) == 4 {
			f, err := toFloats(pa.positional, 4)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotor: %w", err)
			}
			return wrap(pga3.NewRotor(f[0], f[1], f[2], f[3])), nil
		}

		v, ok := pa.arg("angle", 0)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("rotor requires an angle")
		}
		angle, err := toFloat32(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotor: angle: %w", err)
		}

		v, ok = pa.arg("axis", 1)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("rotor requires an axis")
		}
		e, err := toElement(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotor: axis: %w", err)
		}
		axis, ok := e.(pga3.Dir)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("rotor: axis: expected dir, got %s", kindName(e))
		}

		return wrap(pga3.RotorFromAngleAxis(angle, axis)), nil
	})

	// -----------------------------------------------------------------------
	// (translator 1 2 3) moves points by (1, 2, 3)
	// -----------------------------------------------------------------------
	env.AddFunction("translator", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args, 3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translator: %w", err)
		}
		return wrap(pga3.NewTranslator(f[0], f[1], f[2])), nil
	})

	// -----------------------------------------------------------------------
	// (motor (rotor ...)) promotes; (motor s bx by bz p ix iy iz) is raw
	// -----------------------------------------------------------------------
	env.AddFunction("motor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch len(args) {
		case 0:
			return wrap(pga3.OneMotor()), nil
		case 1:
			m, err := toMotor(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("motor: %w", err)
			}
			return wrap(m), nil
		case 8:
			f, err := toFloats(args, 8)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("motor: %w", err)
			}
			return wrap(pga3.NewMotor(
				f[0], pga3.NewBranch(f[1], f[2], f[3]),
				f[4], pga3.NewIdealLine(f[5], f[6], f[7]),
			)), nil
		}
		return zygo.SexpNull, fmt.Errorf("motor requires 0, 1 or 8 arguments, got %d", len(args))
	})

	// -----------------------------------------------------------------------
	// (euler rx ry rz tx ty tz): rotate about X, then Y, then Z (radians),
	// then translate.
	// -----------------------------------------------------------------------
	env.AddFunction("euler", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := toFloats(args, 6)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("euler: %w", err)
		}
		m := kernel.MotorFromEulerZYX(
			float64(f[0]), float64(f[1]), float64(f[2]),
			[3]float64{float64(f[3]), float64(f[4]), float64(f[5])},
		)
		return wrap(m), nil
	})
}
