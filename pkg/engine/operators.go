package engine

import (
	"fmt"

	"github.com/chazu/pga3/pkg/pga3"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Group dispatch
// ---------------------------------------------------------------------------

func expOf(v pga3.Element) (pga3.Element, error) {
	switch e := v.(type) {
	case pga3.Scalar:
		return e.Exp(), nil
	case pga3.Line:
		return e.Exp(), nil
	case pga3.Branch:
		return e.Exp(), nil
	case pga3.IdealLine:
		return e.Exp(), nil
	}
	return nil, typeError("exp", v)
}

func lnOf(v pga3.Element) (pga3.Element, error) {
	switch e := v.(type) {
	case pga3.Scalar:
		return e.Ln(), nil
	case pga3.Motor:
		return e.Ln(), nil
	case pga3.Rotor:
		return e.Ln(), nil
	case pga3.Translator:
		return e.Ln(), nil
	}
	return nil, typeError("ln", v)
}

func powfOf(v pga3.Element, x float32) (pga3.Element, error) {
	switch e := v.(type) {
	case pga3.Scalar:
		return e.Powf(x), nil
	case pga3.Motor:
		return e.Powf(x), nil
	case pga3.Rotor:
		return e.Powf(x), nil
	case pga3.Translator:
		return e.Powf(x), nil
	}
	return nil, typeError("powf", v)
}

func constrainOf(v pga3.Element) (pga3.Element, error) {
	switch e := v.(type) {
	case pga3.Scalar:
		return pga3.Constrain(e), nil
	case pga3.Motor:
		return pga3.Constrain(e), nil
	case pga3.Rotor:
		return pga3.Constrain(e), nil
	case pga3.Translator:
		return pga3.Constrain(e), nil
	}
	return nil, typeError("constrain", v)
}

// mulOf composes a and b. Like group elements keep their type, mixed group
// elements meet as motors and anything else falls back to the geometric
// product.
func mulOf(a, b pga3.Element) pga3.Element {
	switch x := a.(type) {
	case pga3.Rotor:
		if y, ok := b.(pga3.Rotor); ok {
			return x.Mul(y)
		}
	case pga3.Translator:
		if y, ok := b.(pga3.Translator); ok {
			return x.Mul(y)
		}
	case pga3.Motor:
		if y, ok := b.(pga3.Motor); ok {
			return x.Mul(y)
		}
	}
	_, aScalar := a.(pga3.Scalar)
	_, bScalar := b.(pga3.Scalar)
	if !aScalar && !bScalar {
		if ma, ok := asMotor(a); ok {
			if mb, ok := asMotor(b); ok {
				return ma.Mul(mb)
			}
		}
	}
	return classify(pga3.GeometricProduct(a, b))
}

func interpolateOf(a, b pga3.Element, t float32) (pga3.Element, error) {
	switch x := a.(type) {
	case pga3.Rotor:
		if y, ok := b.(pga3.Rotor); ok {
			return pga3.Interpolate(x, y, t), nil
		}
	case pga3.Translator:
		if y, ok := b.(pga3.Translator); ok {
			return pga3.Interpolate(x, y, t), nil
		}
	case pga3.Scalar:
		if y, ok := b.(pga3.Scalar); ok {
			return pga3.Interpolate(x, y, t), nil
		}
	}
	ma, ok := asMotor(a)
	if !ok {
		return nil, typeError("interpolate", a)
	}
	mb, ok := asMotor(b)
	if !ok {
		return nil, typeError("interpolate", b)
	}
	return pga3.Interpolate(ma, mb, t), nil
}

func matrixOf(v pga3.Element) ([4]pga3.Point, error) {
	switch e := v.(type) {
	case pga3.Motor:
		return e.Matrix(), nil
	case pga3.Rotor:
		return e.Matrix(), nil
	case pga3.Translator:
		return e.Matrix(), nil
	}
	return [4]pga3.Point{}, typeError("matrix", v)
}

// ---------------------------------------------------------------------------
// Operator builtins
// ---------------------------------------------------------------------------

type (
	unaryOp  func(v pga3.Element) (pga3.Element, error)
	binaryOp func(a, b pga3.Element) (pga3.Element, error)
)

func addUnary(env *zygo.Zlisp, name, display string, op unaryOp) {
	env.AddFunction(name, func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		el, err := toElements(args, 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", display, err)
		}
		out, err := op(el[0])
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrap(out), nil
	})
}

func addBinary(env *zygo.Zlisp, name, display string, op binaryOp) {
	env.AddFunction(name, func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		el, err := toElements(args, 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", display, err)
		}
		out, err := op(el[0], el[1])
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrap(out), nil
	})
}

// registerOperators installs the products, exponentials and metric
// builtins. Names registered with underscores are written with hyphens in
// scripts.
func registerOperators(env *zygo.Zlisp) {
	addUnary(env, "exp", "exp", expOf)
	addUnary(env, "ln", "ln", lnOf)
	addUnary(env, "constrain", "constrain", constrainOf)
	addUnary(env, "sqrt", "sqrt", func(v pga3.Element) (pga3.Element, error) {
		return powfOf(v, 0.5)
	})
	addUnary(env, "reversal", "reversal", func(v pga3.Element) (pga3.Element, error) {
		return projectLike(pga3.Reversal(v), v), nil
	})
	addUnary(env, "dual", "dual", func(v pga3.Element) (pga3.Element, error) {
		return classify(pga3.Dual(v)), nil
	})
	addUnary(env, "inverse", "inverse", func(v pga3.Element) (pga3.Element, error) {
		return projectLike(pga3.Inverse(v), v), nil
	})
	addUnary(env, "signum", "signum", func(v pga3.Element) (pga3.Element, error) {
		return projectLike(pga3.Signum(v), v), nil
	})
	addUnary(env, "magnitude", "magnitude", func(v pga3.Element) (pga3.Element, error) {
		return pga3.Scalar(pga3.Magnitude(v)), nil
	})
	addUnary(env, "ideal_magnitude", "ideal-magnitude", func(v pga3.Element) (pga3.Element, error) {
		return pga3.Scalar(pga3.IdealMagnitude(v)), nil
	})

	addBinary(env, "wedge", "wedge", func(a, b pga3.Element) (pga3.Element, error) {
		return classify(pga3.OuterProduct(a, b)), nil
	})
	addBinary(env, "vee", "vee", func(a, b pga3.Element) (pga3.Element, error) {
		return classify(pga3.RegressiveProduct(a, b)), nil
	})
	addBinary(env, "dot", "dot", func(a, b pga3.Element) (pga3.Element, error) {
		return classify(pga3.InnerProduct(a, b)), nil
	})
	addBinary(env, "product", "product", func(a, b pga3.Element) (pga3.Element, error) {
		return classify(pga3.GeometricProduct(a, b)), nil
	})
	addBinary(env, "transform", "transform", func(v, x pga3.Element) (pga3.Element, error) {
		if _, ok := asMotor(v); !ok {
			return nil, typeError("transform", v)
		}
		return projectLike(pga3.Transformation(v, x), x), nil
	})
	addBinary(env, "distance", "distance", func(a, b pga3.Element) (pga3.Element, error) {
		return pga3.Scalar(pga3.Distance(a, b)), nil
	})
	addBinary(env, "project", "project", func(a, b pga3.Element) (pga3.Element, error) {
		return projectLike(pga3.Project(a, b), a), nil
	})
	addBinary(env, "anti_project", "anti-project", func(a, b pga3.Element) (pga3.Element, error) {
		return projectLike(pga3.AntiProject(a, b), a), nil
	})
	addBinary(env, "motion", "motion", func(a, b pga3.Element) (pga3.Element, error) {
		oa, ma := parity(a)
		ob, mb := parity(b)
		if ma || mb || oa != ob {
			return nil, fmt.Errorf("motion: no motion carries %s onto %s", kindName(a), kindName(b))
		}
		return pga3.Motion(a, b), nil
	})

	// -----------------------------------------------------------------------
	// (mul a b c ...) composes left to right: c is applied first.
	// -----------------------------------------------------------------------
	env.AddFunction("mul", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("mul requires at least 2 arguments, got %d", len(args))
		}
		el, err := toElements(args, len(args))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mul: %w", err)
		}
		acc := el[0]
		for _, e := range el[1:] {
			acc = mulOf(acc, e)
		}
		return wrap(acc), nil
	})

	// -----------------------------------------------------------------------
	// (powf m 0.5)
	// -----------------------------------------------------------------------
	env.AddFunction("powf", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("powf requires 2 arguments, got %d", len(args))
		}
		v, err := toElement(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("powf: base: %w", err)
		}
		x, err := toFloat32(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("powf: exponent: %w", err)
		}
		out, err := powfOf(v, x)
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrap(out), nil
	})

	// -----------------------------------------------------------------------
	// (interpolate a b 0.25)
	// -----------------------------------------------------------------------
	env.AddFunction("interpolate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("interpolate requires 3 arguments, got %d", len(args))
		}
		el, err := toElements(args[:2], 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate: %w", err)
		}
		t, err := toFloat32(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("interpolate: t: %w", err)
		}
		out, err := interpolateOf(el[0], el[1], t)
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrap(out), nil
	})

	// -----------------------------------------------------------------------
	// (matrix m) returns four rows: the images of e1, e2, e3 and the origin.
	// -----------------------------------------------------------------------
	env.AddFunction("matrix", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		el, err := toElements(args, 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("matrix: %w", err)
		}
		rows, err := matrixOf(el[0])
		if err != nil {
			return zygo.SexpNull, err
		}
		out := make([]zygo.Sexp, len(rows))
		for i, r := range rows {
			out[i] = floatArray(r.G0[:])
		}
		return &zygo.SexpArray{Val: out}, nil
	})

	// -----------------------------------------------------------------------
	// (coords p) returns the stored components of any element.
	// -----------------------------------------------------------------------
	env.AddFunction("coords", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		el, err := toElements(args, 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("coords: %w", err)
		}
		return floatArray(lanes(el[0])), nil
	})
}
