// Package scene holds a kinematic tree of named nodes. Each node carries
// a rigid motion relative to its parent and, optionally, a solid shape.
// World poses are motor products along the path from a root, keyframed
// tracks animate local motions by screw interpolation, and Tessellate
// turns the placed shapes into meshes through a geometry kernel.
package scene

import (
	"errors"
	"fmt"

	"github.com/chazu/pga3/pkg/pga3"
)

var (
	// ErrUnknownNode is returned when a name does not resolve to a node.
	ErrUnknownNode = errors.New("scene: unknown node")
	// ErrDuplicateNode is returned when a name is added twice.
	ErrDuplicateNode = errors.New("scene: duplicate node")
	// ErrEmptyName is returned when a node is added without a name.
	ErrEmptyName = errors.New("scene: empty node name")
)

// ---------------------------------------------------------------------------
// Shapes
// ---------------------------------------------------------------------------

// ShapeKind distinguishes between node shapes.
type ShapeKind int

const (
	ShapeNone     ShapeKind = iota // frame only, no geometry
	ShapeBox                       // rectangular solid, minimum corner at the node origin
	ShapeCylinder                  // cylinder centered on the node origin along Z
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNone:
		return "none"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Shape is the geometry attached to a node.
type Shape interface {
	Kind() ShapeKind
}

// Box is a rectangular solid of the given size.
type Box struct {
	Size [3]float64 `json:"size"`
}

func (Box) Kind() ShapeKind { return ShapeBox }

// Cylinder is a cylinder of the given height and radius.
type Cylinder struct {
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`
}

func (Cylinder) Kind() ShapeKind { return ShapeCylinder }

// ---------------------------------------------------------------------------
// Nodes
// ---------------------------------------------------------------------------

// Node is a frame in the kinematic tree.
type Node struct {
	Name     string     `json:"name"`
	Parent   string     `json:"parent,omitempty"` // empty for roots
	Local    pga3.Motor `json:"local"`            // motion relative to the parent frame
	Shape    Shape      `json:"shape,omitempty"`
	Children []string   `json:"children,omitempty"`
}

// ShapeKind reports the kind of the node's shape, ShapeNone if it has none.
func (n *Node) ShapeKind() ShapeKind {
	if n.Shape == nil {
		return ShapeNone
	}
	return n.Shape.Kind()
}

// Scene is a forest of nodes indexed by name. Parents are always added
// before their children, so the structure cannot contain cycles.
type Scene struct {
	Nodes map[string]*Node `json:"nodes"`
	Roots []string         `json:"roots"`
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{Nodes: make(map[string]*Node)}
}

// AddNode adds a node under parent, or as a root when parent is empty.
// The local pose is scaled to unit norm.
func (s *Scene) AddNode(name, parent string, local pga3.Motor, shape Shape) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := s.Nodes[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	local, err := normalizePose(local)
	if err != nil {
		return fmt.Errorf("adding %q: %w", name, err)
	}
	if err := validateShape(shape); err != nil {
		return fmt.Errorf("adding %q: %w", name, err)
	}
	n := &Node{Name: name, Parent: parent, Local: local, Shape: shape}
	if parent == "" {
		s.Roots = append(s.Roots, name)
	} else {
		p, ok := s.Nodes[parent]
		if !ok {
			return fmt.Errorf("adding %q: parent %w %q", name, ErrUnknownNode, parent)
		}
		p.Children = append(p.Children, name)
	}
	s.Nodes[name] = n
	return nil
}

// Lookup returns the node with the given name, or nil.
func (s *Scene) Lookup(name string) *Node {
	return s.Nodes[name]
}

func (s *Scene) get(name string) (*Node, error) {
	n, ok := s.Nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownNode, name)
	}
	return n, nil
}

// SetLocal replaces the local motion of a node, scaled to unit norm.
func (s *Scene) SetLocal(name string, local pga3.Motor) error {
	n, err := s.get(name)
	if err != nil {
		return err
	}
	local, err = normalizePose(local)
	if err != nil {
		return fmt.Errorf("posing %q: %w", name, err)
	}
	n.Local = local
	return nil
}

// World returns the motion from the world frame to the node's frame:
// root.Local · … · parent.Local · node.Local.
func (s *Scene) World(name string) (pga3.Motor, error) {
	n, err := s.get(name)
	if err != nil {
		return pga3.Motor{}, err
	}
	world := n.Local
	for n.Parent != "" {
		n, err = s.get(n.Parent)
		if err != nil {
			return pga3.Motor{}, err
		}
		world = n.Local.Mul(world)
	}
	return world, nil
}

// Locate maps a point given in the node's frame to world coordinates.
func (s *Scene) Locate(name string, p pga3.Point) (pga3.Point, error) {
	world, err := s.World(name)
	if err != nil {
		return pga3.Point{}, err
	}
	return world.TransformPoint(p), nil
}

// Origin returns the world position of the node's origin.
func (s *Scene) Origin(name string) (pga3.Point, error) {
	return s.Locate(name, pga3.PointOrigin())
}

// Separation is the distance between the origins of two nodes.
func (s *Scene) Separation(a, b string) (float32, error) {
	pa, err := s.Origin(a)
	if err != nil {
		return 0, err
	}
	pb, err := s.Origin(b)
	if err != nil {
		return 0, err
	}
	return pga3.Distance(pa, pb), nil
}

// Relative returns the shortest world-space motion carrying the frame of
// a onto the frame of b, so that Relative(a, b)·World(a) = ±World(b).
func (s *Scene) Relative(a, b string) (pga3.Motor, error) {
	wa, err := s.World(a)
	if err != nil {
		return pga3.Motor{}, err
	}
	wb, err := s.World(b)
	if err != nil {
		return pga3.Motor{}, err
	}
	return pga3.Constrain(wb.Mul(wa.Reversal())), nil
}
