package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/pga3/pkg/pga3"
)

func offsetX(t *testing.T, m pga3.Motor) float32 {
	t.Helper()
	x, _, _ := m.Translation()
	return x
}

func TestTrackSample(t *testing.T) {
	tr := NewTrack(
		Keyframe{Time: 2, Pose: translation(4, 0, 0)},
		Keyframe{Time: 0, Pose: translation(0, 0, 0)},
		Keyframe{Time: 3, Pose: translation(10, 0, 0)},
	)
	tests := []struct {
		name string
		t    float32
		want float32
	}{
		{"before first key", -1, 0},
		{"first key", 0, 0},
		{"quarter", 0.5, 1},
		{"middle key", 2, 4},
		{"second span", 2.5, 7},
		{"last key", 3, 10},
		{"after last key", 5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tr.Sample(tt.t)
			if err != nil {
				t.Fatalf("Sample(%v) failed: %v", tt.t, err)
			}
			if got := offsetX(t, m); math.Abs(float64(got-tt.want)) > tol {
				t.Errorf("Sample(%v) offset = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestTrackSampleRotation(t *testing.T) {
	z := pga3.NewDir(0, 0, 1)
	tr := NewTrack(
		Keyframe{Time: 0, Pose: pga3.OneMotor()},
		Keyframe{Time: 1, Pose: pga3.RotorFromAngleAxis(math.Pi/2, z).Motor()},
	)
	m, err := tr.Sample(0.5)
	if err != nil {
		t.Fatal(err)
	}
	c := float32(math.Sqrt2 / 2)
	if got := m.TransformPoint(pga3.PointAt(1, 0, 0)); !nearPoint(got, c, c, 0) {
		t.Errorf("half-way rotation moves x to %v, want (%v, %v, 0)", got.G0, c, c)
	}
}

func TestTrackEmpty(t *testing.T) {
	tr := NewTrack()
	if _, err := tr.Sample(0); !errors.Is(err, ErrNoKeys) {
		t.Fatalf("Sample() error = %v, want ErrNoKeys", err)
	}
}

func TestTrackAddReplaces(t *testing.T) {
	tr := NewTrack()
	tr.Add(1, translation(1, 0, 0))
	tr.Add(0, translation(0, 0, 0))
	tr.Add(1, translation(2, 0, 0))
	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	keys := tr.Keys()
	if keys[0].Time != 0 || keys[1].Time != 1 {
		t.Fatalf("keys out of order: %v", keys)
	}
	if got := offsetX(t, keys[1].Pose); math.Abs(float64(got-2)) > tol {
		t.Errorf("replaced key offset = %v, want 2", got)
	}
	keys[0].Time = 99
	if tr.Keys()[0].Time != 0 {
		t.Error("Keys() exposed internal storage")
	}
}

func TestTrackScaledKeys(t *testing.T) {
	quarter := pga3.RotorFromAngleAxis(math.Pi/2, pga3.NewDir(0, 0, 1)).Motor()
	tr := NewTrack(
		Keyframe{Time: 0, Pose: scaled(pga3.OneMotor(), 3)},
		Keyframe{Time: 1, Pose: scaled(quarter, 0.5)},
	)
	m, err := tr.Sample(0.5)
	if err != nil {
		t.Fatal(err)
	}
	got := m.TransformPoint(pga3.PointAt(1, 0, 0))
	h := float32(math.Sqrt(0.5))
	if !nearPoint(got, h, h, 0) {
		t.Errorf("halfway pose moves (1, 0, 0) to %v, want (%v, %v, 0)", got.G0, h, h)
	}
}

func TestAnimate(t *testing.T) {
	s := armScene(t)
	tracks := map[string]*Track{
		"base": NewTrack(
			Keyframe{Time: 0, Pose: translation(10, 0, 0)},
			Keyframe{Time: 1, Pose: translation(20, 0, 0)},
		),
	}
	if err := s.Animate(tracks, 0.5); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	got, err := s.Origin("hand")
	if err != nil {
		t.Fatal(err)
	}
	if !nearPoint(got, 15, 8, 0) {
		t.Errorf("hand origin = %v, want (15, 8, 0)", got.G0)
	}

	tracks["ghost"] = NewTrack(Keyframe{Time: 0, Pose: pga3.OneMotor()})
	if err := s.Animate(tracks, 0); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Animate(ghost) error = %v, want ErrUnknownNode", err)
	}
	delete(tracks, "ghost")
	tracks["base"] = NewTrack()
	if err := s.Animate(tracks, 0); !errors.Is(err, ErrNoKeys) {
		t.Errorf("Animate(empty track) error = %v, want ErrNoKeys", err)
	}
}
