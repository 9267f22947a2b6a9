package scene

import (
	"fmt"

	"github.com/chazu/pga3/pkg/pga3"
)

// motorStack accumulates world motions during a depth-first walk. The top
// of the stack is the world motion of the current node's parent.
type motorStack struct {
	motors []pga3.Motor
}

func newMotorStack() *motorStack {
	return &motorStack{motors: []pga3.Motor{pga3.OneMotor()}}
}

func (ms *motorStack) top() pga3.Motor {
	return ms.motors[len(ms.motors)-1]
}

// push composes local onto the current top and returns the result.
func (ms *motorStack) push(local pga3.Motor) pga3.Motor {
	world := ms.top().Mul(local)
	ms.motors = append(ms.motors, world)
	return world
}

func (ms *motorStack) pop() {
	if len(ms.motors) > 1 {
		ms.motors = ms.motors[:len(ms.motors)-1]
	}
}

// WalkFunc is called for every node with its world motion.
type WalkFunc func(n *Node, world pga3.Motor) error

// Walk visits every node depth first, parents before children, roots in
// insertion order. It stops at the first error fn returns.
func (s *Scene) Walk(fn WalkFunc) error {
	ms := newMotorStack()
	for _, name := range s.Roots {
		if err := s.walkNode(name, ms, fn); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) walkNode(name string, ms *motorStack, fn WalkFunc) error {
	n, err := s.get(name)
	if err != nil {
		return err
	}
	world := ms.push(n.Local)
	defer ms.pop()

	if err := fn(n, world); err != nil {
		return fmt.Errorf("node %q: %w", name, err)
	}
	for _, child := range n.Children {
		if err := s.walkNode(child, ms, fn); err != nil {
			return err
		}
	}
	return nil
}
