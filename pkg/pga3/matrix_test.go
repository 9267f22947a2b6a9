package pga3

import (
	"math"
	"testing"
)

func assertRows(t *testing.T, got [4]Point, want [4][4]float32) {
	t.Helper()
	for i := range got {
		if !nearAll(got[i].G0[:], want[i][:], tol) {
			t.Fatalf("row %d = %v, want %v", i, got[i].G0, want[i])
		}
	}
}

func TestTranslatorMatrix(t *testing.T) {
	assertRows(t, NewTranslator(1, 2, 3).Matrix(), [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 2, 3, 1},
	})
}

func TestRotorMatrix(t *testing.T) {
	assertRows(t, RotorFromAngleAxis(math.Pi/2, NewDir(0, 0, 1)).Matrix(), [4][4]float32{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

func TestMotorMatrix(t *testing.T) {
	r := RotorFromAngleAxis(math.Pi/2, NewDir(0, 0, 1)).Motor()
	tr := NewTranslator(5, 0, -1).Motor()
	// Rotate first, then translate.
	assertRows(t, tr.Mul(r).Matrix(), [4][4]float32{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{5, 0, -1, 1},
	})
	// Translate first, then rotate.
	assertRows(t, r.Mul(tr).Matrix(), [4][4]float32{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 5, -1, 1},
	})
}

func TestMatrixAgreesWithTransformation(t *testing.T) {
	m := sampleLines[2].line.Exp()
	rows := m.Matrix()
	p := PointAt(0.5, -1, 2)
	var want [4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want[j] += p.G0[i] * rows[i].G0[j]
		}
	}
	got := m.TransformPoint(p)
	if !nearAll(got.G0[:], want[:], 1e-4) {
		t.Fatalf("p·M = %v, transformation = %v", want, got.G0)
	}
}
