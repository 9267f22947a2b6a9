package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chazu/pga3/pkg/pga3"
)

// ErrNoKeys is returned when sampling a track without keyframes.
var ErrNoKeys = errors.New("scene: track has no keyframes")

// Keyframe is a pose at a point in time.
type Keyframe struct {
	Time float32    `json:"time"`
	Pose pga3.Motor `json:"pose"`
}

// Track is a sequence of keyframes ordered by time. Between two keys the
// pose follows the screw joining them at constant velocity.
type Track struct {
	keys []Keyframe
}

// NewTrack returns a track holding the given keys in time order.
func NewTrack(keys ...Keyframe) *Track {
	tr := &Track{}
	for _, k := range keys {
		tr.Add(k.Time, k.Pose)
	}
	return tr
}

// Add inserts a keyframe, replacing any key already at that time. Poses
// are scaled to unit norm; a degenerate pose is kept as given and rejected
// when it is applied.
func (tr *Track) Add(time float32, pose pga3.Motor) {
	if unit, err := normalizePose(pose); err == nil {
		pose = unit
	}
	i := sort.Search(len(tr.keys), func(i int) bool { return tr.keys[i].Time >= time })
	if i < len(tr.keys) && tr.keys[i].Time == time {
		tr.keys[i].Pose = pose
		return
	}
	tr.keys = append(tr.keys, Keyframe{})
	copy(tr.keys[i+1:], tr.keys[i:])
	tr.keys[i] = Keyframe{Time: time, Pose: pose}
}

// Keys returns a copy of the keyframes in time order.
func (tr *Track) Keys() []Keyframe {
	return append([]Keyframe(nil), tr.keys...)
}

// Len returns the number of keyframes.
func (tr *Track) Len() int {
	return len(tr.keys)
}

// Sample returns the pose at time t. Before the first key and after the
// last the end poses are held.
func (tr *Track) Sample(t float32) (pga3.Motor, error) {
	n := len(tr.keys)
	if n == 0 {
		return pga3.Motor{}, ErrNoKeys
	}
	if t <= tr.keys[0].Time {
		return tr.keys[0].Pose, nil
	}
	if t >= tr.keys[n-1].Time {
		return tr.keys[n-1].Pose, nil
	}
	i := sort.Search(n, func(i int) bool { return tr.keys[i].Time > t })
	a, b := tr.keys[i-1], tr.keys[i]
	u := (t - a.Time) / (b.Time - a.Time)
	return pga3.Interpolate(a.Pose, b.Pose, u), nil
}

// Animate samples every track at time t and installs the result as the
// local motion of the node it is keyed by.
func (s *Scene) Animate(tracks map[string]*Track, t float32) error {
	for name, tr := range tracks {
		pose, err := tr.Sample(t)
		if err != nil {
			return fmt.Errorf("animating %q: %w", name, err)
		}
		if err := s.SetLocal(name, pose); err != nil {
			return err
		}
	}
	return nil
}
