//go:build !manifold

// Package manifold provides a CGo-based geometry kernel binding to the
// Manifold library. When the "manifold" build tag is not set, this stub
// package is compiled instead, returning ErrUnavailable from New().
//
// Build with: go build -tags=manifold
package manifold

import "github.com/chazu/pga3/pkg/kernel"

// New reports ErrUnavailable. Build with -tags=manifold to enable.
func New() (kernel.Kernel, error) {
	return nil, ErrUnavailable
}
