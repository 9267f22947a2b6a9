// Package engine provides a Lisp evaluator for PGA scripts. It wraps
// zygomys in a sandboxed environment with builtins for constructing points,
// planes, lines and motors, for composing and interpolating motions, and
// for assembling a scene graph of posed shapes.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/pga3/pkg/pga3"
	"github.com/chazu/pga3/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result is the output of a successful evaluation.
type Result struct {
	// Value is the Go form of the last top-level expression: a pga3
	// element, a float64, a string, a []any for arrays, or nil.
	Value any
	// Text is the printed form of the last expression.
	Text string
	// Scene holds every node declared with (node ...).
	Scene *scene.Scene
}

// Element returns Value as a pga3 element, if it is one.
func (r *Result) Element() (pga3.Element, bool) {
	e, ok := r.Value.(pga3.Element)
	return e, ok
}

// Number returns Value as a float64, if it is one.
func (r *Result) Number() (float64, bool) {
	f, ok := r.Value.(float64)
	return f, ok
}

// Engine wraps the zygomys interpreter.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs Lisp source code and returns the value of its last
// expression along with the scene it declared.
// Each call creates a fresh zygomys sandbox for deterministic evaluation.
//
// Return semantics:
//   - On success: returns result + nil errors + nil error
//   - On parse/eval failure: returns nil result + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res, evalErrs, err := e.evaluate(source)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*Result, []EvalError, error) {
	sc := scene.New()

	// Empty source is a valid program with no value and an empty scene.
	if strings.TrimSpace(source) == "" {
		return &Result{Scene: sc}, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, sc)

	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	out, err := env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	res := &Result{Scene: sc}
	if out != nil {
		res.Value = toValue(out)
		res.Text = out.SexpString(nil)
	}
	return res, nil, nil
}

// toValue converts a zygomys value into its Go form.
func toValue(s zygo.Sexp) any {
	switch v := s.(type) {
	case *sexpElement:
		return v.v
	case *sexpNode:
		return v.name
	case *zygo.SexpInt:
		return float64(v.Val)
	case *zygo.SexpFloat:
		return v.Val
	case *zygo.SexpStr:
		return v.S
	case *zygo.SexpArray:
		out := make([]any, len(v.Val))
		for i, item := range v.Val {
			out[i] = toValue(item)
		}
		return out
	}
	return nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// zygomys formats parse errors as "Error on line N: <details>\n"
	for _, pat := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := pat.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
