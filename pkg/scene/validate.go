package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/pga3/pkg/pga3"
)

var (
	// ErrInvalidPose is returned for a pose with zero or non-finite norm.
	ErrInvalidPose = errors.New("scene: invalid pose")
	// ErrInvalidShape is returned for a shape with a non-positive or
	// non-finite dimension.
	ErrInvalidShape = errors.New("scene: invalid shape")
)

// minPoseNorm is the smallest Euclidean norm a pose may have before it is
// treated as degenerate.
const minPoseNorm = 1e-6

// normalizePose scales m to unit norm. Kernels read the rotation block of
// the pose matrix directly, so a scaled motor would also scale the solid.
func normalizePose(m pga3.Motor) (pga3.Motor, error) {
	for _, c := range append(m.G0[:], m.G1[:]...) {
		if !finite(float64(c)) {
			return pga3.Motor{}, fmt.Errorf("%w: non-finite component %v", ErrInvalidPose, c)
		}
	}
	norm := pga3.Magnitude(m)
	if !(norm > minPoseNorm) {
		return pga3.Motor{}, fmt.Errorf("%w: norm %v", ErrInvalidPose, norm)
	}
	if norm == 1 {
		return m, nil
	}
	return pga3.Signum(m).Motor(), nil
}

// validateShape checks that every dimension of shape is positive. A nil
// shape is valid.
func validateShape(shape Shape) error {
	var dims []float64
	switch sh := shape.(type) {
	case nil:
		return nil
	case Box:
		dims = sh.Size[:]
	case Cylinder:
		dims = []float64{sh.Height, sh.Radius}
	default:
		return fmt.Errorf("%w: unsupported kind %s", ErrInvalidShape, shape.Kind())
	}
	for _, d := range dims {
		if !finite(d) || d <= 0 {
			return fmt.Errorf("%w: %s dimension %v must be positive", ErrInvalidShape, shape.Kind(), d)
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
