package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/pga3/pkg/kernel"
	"github.com/chazu/pga3/pkg/pga3"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func translate(k *SdfxKernel, s kernel.Solid, x, y, z float32) kernel.Solid {
	return k.Place(s, pga3.NewTranslator(x, y, z).Motor())
}

func assertBounds(t *testing.T, s kernel.Solid, expectMin, expectMax [3]float64, tol float64) {
	t.Helper()
	min, max := s.BoundingBox()
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	triCount := mesh.TriangleCount()
	if triCount == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	// A box should produce exactly 12 triangles (2 per face, 6 faces).
	if triCount != 12 {
		t.Logf("box triangle count: %d (expected 12)", triCount)
	}
	// Verify vertex and index array sizes are consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != triCount*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), triCount*3)
	}
}

func TestCylinder(t *testing.T) {
	k := New()
	cyl := k.Cylinder(50, 10, 32)
	mesh, err := k.ToMesh(cyl)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	t.Logf("cylinder triangle count: %d", mesh.TriangleCount())
}

func TestDifference(t *testing.T) {
	k := New()

	box := k.Box(100, 100, 100)
	// Cylinders are centered on the origin; move the hole to the box center.
	hole := translate(k, k.Cylinder(120, 20, 32), 50, 50, 50)
	diff := k.Difference(box, hole)

	tests := []struct {
		name   string
		p      v3.Vec
		boxIn  bool
		diffIn bool
	}{
		{"center", v3.Vec{X: 50, Y: 50, Z: 50}, true, false},
		{"inside hole near wall", v3.Vec{X: 65, Y: 50, Z: 20}, true, false},
		{"corner", v3.Vec{X: 10, Y: 10, Z: 50}, true, true},
		{"outside box", v3.Vec{X: 150, Y: 50, Z: 50}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unwrap(box).Evaluate(tt.p) < 0; got != tt.boxIn {
				t.Errorf("box contains %v = %v, want %v", tt.p, got, tt.boxIn)
			}
			if got := unwrap(diff).Evaluate(tt.p) < 0; got != tt.diffIn {
				t.Errorf("difference contains %v = %v, want %v", tt.p, got, tt.diffIn)
			}
		})
	}

	mesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	// The bore wall is a ring of vertices about 20 from the hole axis.
	wall := 0
	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		x, y, z := float64(mesh.Vertices[i]), float64(mesh.Vertices[i+1]), float64(mesh.Vertices[i+2])
		r := math.Hypot(x-50, y-50)
		if math.Abs(r-20) < 1.5 && z > 5 && z < 95 {
			wall++
		}
	}
	if wall == 0 {
		t.Fatal("difference mesh has no vertices on the bore wall")
	}
}

func TestUnion(t *testing.T) {
	k := New()
	box1 := k.Box(50, 50, 50)
	box2 := translate(k, k.Box(50, 50, 50), 30, 0, 0)
	u := k.Union(box1, box2)
	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}
	t.Logf("union triangle count: %d", mesh.TriangleCount())
}

func TestPlaceTranslation(t *testing.T) {
	k := New()
	box := k.Box(10, 10, 10)
	translated := translate(k, box, 100, 200, 300)

	// Box(10,10,10) has its minimum corner at the origin, so the translated
	// box spans (100,200,300) to (110,210,310).
	assertBounds(t, translated, [3]float64{100, 200, 300}, [3]float64{110, 210, 310}, 0.5)
}

func TestBoundingBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	assertBounds(t, box, [3]float64{0, 0, 0}, [3]float64{100, 50, 25}, 0.01)
}

func TestIntersection(t *testing.T) {
	k := New()
	box1 := k.Box(100, 100, 100)
	box2 := translate(k, k.Box(100, 100, 100), 50, 0, 0)
	inter := k.Intersection(box1, box2)
	mesh, err := k.ToMesh(inter)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("intersection mesh is empty")
	}
	t.Logf("intersection triangle count: %d", mesh.TriangleCount())
}

func TestPlaceRotation(t *testing.T) {
	k := New()
	box := k.Box(100, 10, 10)

	// A long box along X turned 90 degrees about Z extends along -X..0 in X
	// (its short side) and 0..100 in Y.
	r := pga3.RotorFromAngleAxis(math.Pi/2, pga3.NewDir(0, 0, 1))
	rotated := k.Place(box, r.Motor())
	assertBounds(t, rotated, [3]float64{-10, 0, 0}, [3]float64{0, 100, 10}, 1.0)
}

func TestPlaceScrew(t *testing.T) {
	k := New()
	box := k.Box(100, 10, 10)

	// Turn about Z, then lift by 50 along Z and shift by 20 along X.
	r := pga3.RotorFromAngleAxis(math.Pi/2, pga3.NewDir(0, 0, 1))
	m := pga3.NewTranslator(20, 0, 50).Motor().Mul(r.Motor())
	placed := k.Place(box, m)
	assertBounds(t, placed, [3]float64{10, 0, 50}, [3]float64{20, 100, 60}, 1.0)
}

func TestPlacementMatchesMotor(t *testing.T) {
	m := kernel.MotorFromEulerZYX(0.3, -0.5, 1.2, [3]float64{4, -5, 6})
	mat := placement(m)
	p := pga3.PointAt(1, 2, 3)
	want := m.TransformPoint(p)
	wx, wy, wz := want.Euclidean()
	got := mat.MulPosition(v3.Vec{X: 1, Y: 2, Z: 3})
	const tol = 1e-4
	if math.Abs(got.X-float64(wx)) > tol || math.Abs(got.Y-float64(wy)) > tol || math.Abs(got.Z-float64(wz)) > tol {
		t.Fatalf("placement moves p to %v, want (%v, %v, %v)", got, wx, wy, wz)
	}
}
