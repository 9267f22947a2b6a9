package engine

import (
	"fmt"

	"github.com/chazu/pga3/pkg/pga3"
	"github.com/chazu/pga3/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// toShape reads the optional :box or :cylinder keyword of a node form.
func toShape(pa kwArgs) (scene.Shape, error) {
	box, hasBox := pa.kw["box"]
	cyl, hasCyl := pa.kw["cylinder"]
	if hasBox && hasCyl {
		return nil, fmt.Errorf("a node takes at most one of :box and :cylinder")
	}

	switch {
	case hasBox:
		items, err := sexpListToSlice(box)
		if err != nil {
			return nil, fmt.Errorf("box: %w", err)
		}
		f, err := toFloats(items, 3)
		if err != nil {
			return nil, fmt.Errorf("box: %w", err)
		}
		return scene.Box{Size: [3]float64{float64(f[0]), float64(f[1]), float64(f[2])}}, nil
	case hasCyl:
		items, err := sexpListToSlice(cyl)
		if err != nil {
			return nil, fmt.Errorf("cylinder: %w", err)
		}
		f, err := toFloats(items, 2)
		if err != nil {
			return nil, fmt.Errorf("cylinder: expected height and radius: %w", err)
		}
		return scene.Cylinder{Height: float64(f[0]), Radius: float64(f[1])}, nil
	}
	return nil, nil
}

// registerSceneBuiltins installs the builtins that declare and query scene
// nodes. Each node is posed by a motor relative to its parent.
func registerSceneBuiltins(env *zygo.Zlisp, sc *scene.Scene) {
	tracks := make(map[string]*scene.Track)

	// -----------------------------------------------------------------------
	// (node "arm" :parent "base" :pose (translator 0 0 10) :box [2 2 8])
	// -----------------------------------------------------------------------
	env.AddFunction("node", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("node requires a name argument")
		}
		nodeName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("node: name: %w", err)
		}

		var parent string
		if v, ok := pa.kw["parent"]; ok {
			parent, err = toNodeName(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("node: parent: %w", err)
			}
		}

		pose := pga3.OneMotor()
		if v, ok := pa.kw["pose"]; ok {
			pose, err = toMotor(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("node: pose: %w", err)
			}
		}

		shape, err := toShape(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("node: %w", err)
		}

		if err := sc.AddNode(nodeName, parent, pose, shape); err != nil {
			return zygo.SexpNull, fmt.Errorf("node: %w", err)
		}
		return &sexpNode{name: nodeName}, nil
	})

	// -----------------------------------------------------------------------
	// (pose "arm" (rotor :angle 0.5 :axis (dir 0 1 0)))
	// -----------------------------------------------------------------------
	env.AddFunction("pose", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("pose requires a node and a motor")
		}
		nodeName, err := toNodeName(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pose: %w", err)
		}
		m, err := toMotor(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pose: %w", err)
		}
		if err := sc.SetLocal(nodeName, m); err != nil {
			return zygo.SexpNull, fmt.Errorf("pose: %w", err)
		}
		return &sexpNode{name: nodeName}, nil
	})

	// -----------------------------------------------------------------------
	// (world "hand") is the motor from the world frame to the node's frame.
	// -----------------------------------------------------------------------
	env.AddFunction("world", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("world requires a node argument")
		}
		nodeName, err := toNodeName(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("world: %w", err)
		}
		m, err := sc.World(nodeName)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("world: %w", err)
		}
		return wrap(m), nil
	})

	// -----------------------------------------------------------------------
	// (locate "hand" (point 0 0 1)) maps a node-local point to world space.
	// Without a point it returns the node's origin.
	// -----------------------------------------------------------------------
	env.AddFunction("locate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 || len(args) > 2 {
			return zygo.SexpNull, fmt.Errorf("locate requires a node and an optional point")
		}
		nodeName, err := toNodeName(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("locate: %w", err)
		}
		var p pga3.Point
		if len(args) == 2 {
			local, err := toPoint(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("locate: %w", err)
			}
			p, err = sc.Locate(nodeName, local)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("locate: %w", err)
			}
		} else {
			p, err = sc.Origin(nodeName)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("locate: %w", err)
			}
		}
		return wrap(p), nil
	})

	// -----------------------------------------------------------------------
	// (separation "base" "hand") is the distance between node origins.
	// -----------------------------------------------------------------------
	env.AddFunction("separation", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := nodePair("separation", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		d, err := sc.Separation(a, b)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("separation: %w", err)
		}
		return number(d), nil
	})

	// -----------------------------------------------------------------------
	// (relative "arm" "hand") carries the first frame onto the second.
	// -----------------------------------------------------------------------
	env.AddFunction("relative", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := nodePair("relative", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		m, err := sc.Relative(a, b)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("relative: %w", err)
		}
		return wrap(m), nil
	})

	// -----------------------------------------------------------------------
	// (key "arm" 0.5 (rotor ...)) adds a keyframe to the node's track.
	// -----------------------------------------------------------------------
	env.AddFunction("key", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("key requires a node, a time and a pose")
		}
		nodeName, err := toNodeName(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("key: %w", err)
		}
		if sc.Lookup(nodeName) == nil {
			return zygo.SexpNull, fmt.Errorf("key: %w %q", scene.ErrUnknownNode, nodeName)
		}
		at, err := toFloat32(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("key: time: %w", err)
		}
		pose, err := toMotor(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("key: pose: %w", err)
		}
		tr, ok := tracks[nodeName]
		if !ok {
			tr = scene.NewTrack()
			tracks[nodeName] = tr
		}
		tr.Add(at, pose)
		return &sexpNode{name: nodeName}, nil
	})

	// -----------------------------------------------------------------------
	// (animate 0.5) poses every keyed node at time 0.5.
	// -----------------------------------------------------------------------
	env.AddFunction("animate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("animate requires a time")
		}
		at, err := toFloat32(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("animate: %w", err)
		}
		if err := sc.Animate(tracks, at); err != nil {
			return zygo.SexpNull, fmt.Errorf("animate: %w", err)
		}
		return number(at), nil
	})
}

func nodePair(op string, args []zygo.Sexp) (string, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("%s requires 2 node arguments, got %d", op, len(args))
	}
	a, err := toNodeName(args[0])
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	b, err := toNodeName(args[1])
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return a, b, nil
}
