package pga3

import (
	"math"
	"testing"
)

const tol = 1e-5

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func nearAll(a, b []float32, eps float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !near(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func assertMotor(t *testing.T, got, want Motor, eps float32) {
	t.Helper()
	if !nearAll(got.G0[:], want.G0[:], eps) || !nearAll(got.G1[:], want.G1[:], eps) {
		t.Fatalf("motor = %v %v, want %v %v", got.G0, got.G1, want.G0, want.G1)
	}
}

func assertRotor(t *testing.T, got, want Rotor, eps float32) {
	t.Helper()
	if !nearAll(got.G0[:], want.G0[:], eps) {
		t.Fatalf("rotor = %v, want %v", got.G0, want.G0)
	}
}

func assertLine(t *testing.T, got, want Line, eps float32) {
	t.Helper()
	if !nearAll(got.G0[:], want.G0[:], eps) || !nearAll(got.G1[:], want.G1[:], eps) {
		t.Fatalf("line = moment %v direction %v, want moment %v direction %v", got.G0, got.G1, want.G0, want.G1)
	}
}

// assertPoint compares dehomogenized coordinates.
func assertPoint(t *testing.T, got Point, x, y, z float32, eps float32) {
	t.Helper()
	gx, gy, gz := got.Euclidean()
	if !near(gx, x, eps) || !near(gy, y, eps) || !near(gz, z, eps) {
		t.Fatalf("point = (%v, %v, %v), want (%v, %v, %v)", gx, gy, gz, x, y, z)
	}
}

func assertPlane(t *testing.T, got, want Plane, eps float32) {
	t.Helper()
	if !nearAll(got.G0[:], want.G0[:], eps) {
		t.Fatalf("plane = %v, want %v", got.G0, want.G0)
	}
}

// sampleLines are screw axes with a non-vanishing direction whose
// rotation half-angle stays below π.
var sampleLines = []struct {
	name string
	line Line
}{
	{"x axis", NewLine([3]float32{}, [3]float32{0.5, 0, 0})},
	{"offset z axis", LineThrough(PointAt(1, 2, 0), PointAt(1, 2, 1)).Scale(0.7)},
	{"general screw", NewLine([3]float32{0.3, -0.2, 0.5}, [3]float32{0.4, 0.1, -0.3})},
	{"large angle", NewLine([3]float32{1, 1, 0}, [3]float32{0, 1.2, 1.5})},
}
