package scene

import (
	"fmt"

	"github.com/chazu/pga3/pkg/kernel"
	"github.com/chazu/pga3/pkg/pga3"
)

// cylinderSegments is passed to kernels that facet cylinders.
const cylinderSegments = 32

// Tessellate produces one triangle mesh per shaped node, each placed at
// the node's world motion. Frame-only nodes contribute no mesh. The scene
// is not modified.
func Tessellate(s *Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	err := s.Walk(func(n *Node, world pga3.Motor) error {
		solid, err := solidFor(k, n)
		if err != nil || solid == nil {
			return err
		}
		mesh, err := k.ToMesh(k.Place(solid, world))
		if err != nil {
			return fmt.Errorf("ToMesh failed: %w", err)
		}
		mesh.Node = n.Name
		meshes = append(meshes, mesh)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}
	return meshes, nil
}

// solidFor builds the unplaced solid for a node, nil for frame-only nodes.
func solidFor(k kernel.Kernel, n *Node) (kernel.Solid, error) {
	switch shape := n.Shape.(type) {
	case nil:
		return nil, nil
	case Box:
		return k.Box(shape.Size[0], shape.Size[1], shape.Size[2]), nil
	case Cylinder:
		return k.Cylinder(shape.Height, shape.Radius, cylinderSegments), nil
	default:
		return nil, fmt.Errorf("unsupported shape type %T", n.Shape)
	}
}
