// Package kernel defines the abstract geometry kernel interface.
// Implementations provide solid modeling and boolean operations behind
// this interface; solids are positioned by rigid motions expressed as
// pga3 motors, which a backend decomposes into whatever transform
// representation it understands.
package kernel

import "github.com/chazu/pga3/pkg/pga3"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Place applies the rigid motion m to s. m must have unit norm; a
	// scaled motor scales the rotation block the backends read.
	Place(s Solid, m pga3.Motor) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
