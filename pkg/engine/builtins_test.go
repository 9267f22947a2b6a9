package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/pga3/pkg/pga3"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(node "arm" :parent "base")`,
			expect: `(node "arm" "__kw_parent" "base")`,
		},
		{
			name:   "multiple keywords",
			input:  `(rotor :angle 1.5 :axis z)`,
			expect: `(rotor "__kw_angle" 1.5 "__kw_axis" z)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(anti-project :from-plane ref)`,
			expect: `(anti_project "__kw_from-plane" ref)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative literal preserved",
			input:  `(point 1 -2 3)`,
			expect: `(point 1 -2 3)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:ideal-norm`,
			expect: `"__kw_ideal-norm"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const tol = 1e-4

func near(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func mustEval(t *testing.T, source string) *Result {
	t.Helper()
	res, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if res == nil {
		t.Fatal("expected non-nil result")
	}
	return res
}

func evalNumber(t *testing.T, source string) float64 {
	t.Helper()
	res := mustEval(t, source)
	f, ok := res.Number()
	if !ok {
		t.Fatalf("expected number, got %T (%s)", res.Value, res.Text)
	}
	return f
}

func evalElement(t *testing.T, source string) pga3.Element {
	t.Helper()
	res := mustEval(t, source)
	e, ok := res.Element()
	if !ok {
		t.Fatalf("expected element, got %T (%s)", res.Value, res.Text)
	}
	return e
}

func evalPoint(t *testing.T, source string, x, y, z float64) {
	t.Helper()
	p, ok := evalElement(t, source).(pga3.Point)
	if !ok {
		t.Fatalf("expected point from %s", source)
	}
	gx, gy, gz := p.Euclidean()
	if !near(float64(gx), x) || !near(float64(gy), y) || !near(float64(gz), z) {
		t.Errorf("%s = (%v, %v, %v), want (%v, %v, %v)", source, gx, gy, gz, x, y, z)
	}
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

func TestConstructors(t *testing.T) {
	tests := []struct {
		source string
		want   pga3.Element
	}{
		{`(point 1 2 3)`, pga3.PointAt(1, 2, 3)},
		{`(point 2 4 6 2)`, pga3.NewPoint(2, 4, 6, 2)},
		{`(dir 0 0 1)`, pga3.NewDir(0, 0, 1)},
		{`(plane 0 0 1 5)`, pga3.NewPlane(0, 0, 1, 5)},
		{`(flat 1 0 0)`, pga3.NewFlat(1, 0, 0)},
		{`(branch 0 0 0.5)`, pga3.NewBranch(0, 0, 0.5)},
		{`(ideal-line 1 0 0)`, pga3.NewIdealLine(1, 0, 0)},
		{`(line (point 1 0 0) (point 1 1 0))`, pga3.LineThrough(pga3.PointAt(1, 0, 0), pga3.PointAt(1, 1, 0))},
		{`(line 0 0 1 0 1 0)`, pga3.NewLine([3]float32{0, 0, 1}, [3]float32{0, 1, 0})},
		{`(rotor 0 0 0 1)`, pga3.OneRotor()},
		{`(translator 4 2 6)`, pga3.NewTranslator(4, 2, 6)},
		{`(motor)`, pga3.OneMotor()},
		{`(motor (translator 1 0 0))`, pga3.NewTranslator(1, 0, 0).Motor()},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got := evalElement(t, tt.source)
			if got != tt.want {
				t.Errorf("%s = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestRotorKeywords(t *testing.T) {
	want := pga3.RotorFromAngleAxis(0.5, pga3.NewDir(0, 1, 0))
	for _, source := range []string{
		`(rotor :angle 0.5 :axis (dir 0 1 0))`,
		`(rotor 0.5 (dir 0 1 0))`,
		`(rotor :axis (dir 0 1 0) :angle 0.5)`,
	} {
		if got := evalElement(t, source); got != want {
			t.Errorf("%s = %v, want %v", source, got, want)
		}
	}
}

func TestResultText(t *testing.T) {
	res := mustEval(t, `(point 1 2 3)`)
	if res.Text != "(point 1 2 3 1)" {
		t.Errorf("text = %q", res.Text)
	}
}

// ---------------------------------------------------------------------------
// Metric operators
// ---------------------------------------------------------------------------

func TestDistanceBuiltin(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   float64
	}{
		{"point to point", `(distance (point 0 0 0) (point 1 0 0))`, 1},
		{"origin to plane", `(distance (point 0 0 0) (plane 1 0 0 5))`, 5},
		{"point to axis", `(distance (point 0 3 0) (line (point 0 0 0) (point 0 0 1)))`, 3},
		{"weighted points", `(distance (point 0 0 2 2) (point 3 4 1))`, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalNumber(t, tt.source); !near(got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestMagnitudeBuiltins(t *testing.T) {
	if got := evalNumber(t, `(ideal-magnitude (point 3 4 0 0))`); !near(got, 5) {
		t.Errorf("ideal-magnitude = %v, want 5", got)
	}
	if got := evalNumber(t, `(magnitude (point 1 2 3 2))`); !near(got, 2) {
		t.Errorf("magnitude = %v, want 2", got)
	}
}

func TestProjectBuiltins(t *testing.T) {
	evalPoint(t, `(project (point 0 0 0) (plane 1 0 0 5))`, 5, 0, 0)
	evalPoint(t, `(project (point 1 2 3) (line (point 0 0 0) (point 0 0 1)))`, 0, 0, 3)

	got, ok := evalElement(t, `(anti-project (plane 0 0 1 0) (point 0 0 4))`).(pga3.Plane)
	if !ok {
		t.Fatal("expected plane")
	}
	want := pga3.NewPlane(0, 0, 1, 4)
	for i := range want.G0 {
		if !near(float64(got.G0[i]), float64(want.G0[i])) {
			t.Fatalf("anti-project = %v, want %v", got.G0, want.G0)
		}
	}
}

// ---------------------------------------------------------------------------
// Motions
// ---------------------------------------------------------------------------

func TestTransformBuiltin(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		x, y, z float64
	}{
		{"translate", `(transform (translator 1 2 3) (point 0 0 0))`, 1, 2, 3},
		{"rotate", `(transform (rotor :angle 1.5707964 :axis (dir 0 0 1)) (point 1 0 0))`, 0, 1, 0},
		{"compose", `(transform (mul (translator 1 0 0) (rotor :angle 1.5707964 :axis (dir 0 0 1))) (point 1 0 0))`, 1, 1, 0},
		{"euler", `(transform (euler 0 0 1.5707964 1 0 0) (point 1 0 0))`, 1, 1, 0},
		{"interpolate", `(transform (interpolate (translator 0 0 0) (translator 2 0 0) 0.5) (point 0 0 0))`, 1, 0, 0},
		{"interpolate mixed", `(transform (interpolate (motor) (translator 0 4 0) 0.25) (point 0 0 0))`, 0, 1, 0},
		{"motion", `(transform (motion (point 0 0 0) (point 3 0 0)) (point 0 0 0))`, 3, 0, 0},
		{"powf", `(transform (powf (translator 0 0 6) 0.5) (point 0 0 0))`, 0, 0, 3},
		{"sqrt", `(transform (sqrt (translator 0 0 6)) (point 0 0 0))`, 0, 0, 3},
		{"exp of line", `(transform (exp (ln (translator 0 2 0))) (point 0 0 0))`, 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evalPoint(t, tt.source, tt.x, tt.y, tt.z)
		})
	}
}

func TestMulKeepsGroupType(t *testing.T) {
	if _, ok := evalElement(t, `(mul (rotor 0 0 0 1) (rotor 0 0 0 1))`).(pga3.Rotor); !ok {
		t.Error("rotor times rotor should be a rotor")
	}
	if _, ok := evalElement(t, `(mul (translator 1 0 0) (translator 0 1 0))`).(pga3.Translator); !ok {
		t.Error("translator times translator should be a translator")
	}
	if _, ok := evalElement(t, `(mul (rotor 0 0 0 1) (translator 0 1 0))`).(pga3.Motor); !ok {
		t.Error("rotor times translator should be a motor")
	}
	if _, ok := evalElement(t, `(mul 2 (point 1 0 0))`).(pga3.Point); !ok {
		t.Error("scalar times point should be a point")
	}
}

func TestExpLnBuiltins(t *testing.T) {
	m := evalElement(t, `(exp (ln (mul (translator 1 2 3) (rotor :angle 0.7 :axis (dir 0 0 1)))))`)
	want := pga3.NewTranslator(1, 2, 3).Motor().Mul(pga3.RotorFromAngleAxis(0.7, pga3.NewDir(0, 0, 1)).Motor())
	got, ok := m.(pga3.Motor)
	if !ok {
		t.Fatalf("expected motor, got %T", m)
	}
	for i := 0; i < 4; i++ {
		if !near(float64(got.G0[i]), float64(want.G0[i])) || !near(float64(got.G1[i]), float64(want.G1[i])) {
			t.Fatalf("exp(ln m) = %v, want %v", got, want)
		}
	}

	if got := evalNumber(t, `(exp 0)`); !near(got, 1) {
		t.Errorf("(exp 0) = %v, want 1", got)
	}
	if _, ok := evalElement(t, `(exp (branch 0 0 0.5))`).(pga3.Rotor); !ok {
		t.Error("exp of a branch should be a rotor")
	}
	if _, ok := evalElement(t, `(ln (translator 1 0 0))`).(pga3.IdealLine); !ok {
		t.Error("ln of a translator should be an ideal line")
	}
}

func TestConstrainBuiltin(t *testing.T) {
	got := evalElement(t, `(constrain (rotor 0 0 -0.6 -0.8))`)
	r, ok := got.(pga3.Rotor)
	if !ok {
		t.Fatalf("expected rotor, got %T", got)
	}
	if r.G0[0] < 0 {
		t.Errorf("constrain left negative scalar part %v", r.G0[0])
	}
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

func TestProductBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   string
	}{
		{"vee of points is a line", `(vee (point 0 0 0) (point 1 0 0))`, "line"},
		{"wedge of planes is a line", `(wedge (plane 1 0 0 0) (plane 0 1 0 0))`, "line"},
		{"three planes meet in a point", `(wedge (wedge (plane 1 0 0 1) (plane 0 1 0 2)) (plane 0 0 1 3))`, "point"},
		{"point and line span a plane", `(vee (point 0 0 1) (line (point 0 0 0) (point 1 0 0)))`, "plane"},
		{"product of planes is a motor", `(product (plane 1 0 0 0) (plane 1 1 0 0))`, "motor"},
		{"dual of a plane is a point", `(dual (plane 1 0 0 0))`, "point"},
		{"reversal keeps lines", `(reversal (line 0 0 1 0 1 0))`, "line"},
		{"inverse keeps motors", `(inverse (motor (translator 1 2 3)))`, "motor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kindName(evalElement(t, tt.source)); got != tt.kind {
				t.Errorf("%s gave %s, want %s", tt.source, got, tt.kind)
			}
		})
	}

	evalPoint(t, `(wedge (wedge (plane 1 0 0 1) (plane 0 1 0 2)) (plane 0 0 1 3))`, 1, 2, 3)
	if got := evalNumber(t, `(dot (plane 1 2 0 3) (plane 1 2 0 0))`); !near(got, 5) {
		t.Errorf("dot = %v, want 5", got)
	}
}

// ---------------------------------------------------------------------------
// Inspection
// ---------------------------------------------------------------------------

func toFloatSlice(t *testing.T, v any) []float64 {
	t.Helper()
	items, ok := v.([]any)
	if !ok {
		t.Fatalf("expected array, got %T", v)
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := item.(float64)
		if !ok {
			t.Fatalf("item %d: expected number, got %T", i, item)
		}
		out[i] = f
	}
	return out
}

func TestCoordsBuiltin(t *testing.T) {
	got := toFloatSlice(t, mustEval(t, `(coords (plane 0 0 1 5))`).Value)
	want := []float64{0, 0, 1, -5}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Fatalf("coords = %v, want %v", got, want)
		}
	}
}

func TestMatrixBuiltin(t *testing.T) {
	rows, ok := mustEval(t, `(matrix (translator 1 2 3))`).Value.([]any)
	if !ok || len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %v", rows)
	}
	want := [4][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 2, 3, 1},
	}
	for i, row := range rows {
		got := toFloatSlice(t, row)
		for j := range want[i] {
			if !near(got[j], want[i][j]) {
				t.Fatalf("row %d = %v, want %v", i, got, want[i])
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"too few coordinates", `(point 1 2)`, "point"},
		{"rotor without axis", `(rotor :angle 1)`, "axis"},
		{"rotor with point axis", `(rotor :angle 1 :axis (point 0 0 1))`, "expected dir"},
		{"exp of point", `(exp (point 0 0 0))`, "exp"},
		{"powf of plane", `(powf (plane 0 0 1 0) 2)`, "powf"},
		{"transform by point", `(transform (point 0 0 0) (point 1 0 0))`, "transform"},
		{"distance to string", `(distance (point 0 0 0) "x")`, "distance"},
		{"matrix of line", `(matrix (line 0 0 1 0 1 0))`, "matrix"},
		{"motion point to line", `(motion (point 0 0 0) (line 0 0 1 0 1 0))`, "no motion carries point onto line"},
		{"motion plane to motor", `(motion (plane 1 0 0 0) (translator 1 0 0))`, "no motion carries"},
		{"unknown parent", `(node "a" :parent "missing")`, "unknown node"},
		{"two shapes", `(node "a" :box [1 2 3] :cylinder [1 2])`, "at most one"},
		{"duplicate node", "(node \"a\")\n(node \"a\")", "duplicate"},
		{"flat box", `(node "a" :box [1 0 3])`, "invalid shape"},
		{"zero pose", `(node "a" :pose (motor 0 0 0 0 0 0 0 0))`, "invalid pose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if len(evalErrs) == 0 {
				t.Fatalf("expected an eval error for %s", tt.source)
			}
			if !strings.Contains(evalErrs[0].Message, tt.want) {
				t.Errorf("message = %q, want containing %q", evalErrs[0].Message, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Variable reference test
// ---------------------------------------------------------------------------

func TestVariableReference(t *testing.T) {
	source := `
(def quarter (rotor :angle 1.5707964 :axis (dir 0 0 1)))
(def p (point 1 0 0))
(transform (mul quarter quarter) p)
`
	evalPoint(t, source, -1, 0, 0)
}
