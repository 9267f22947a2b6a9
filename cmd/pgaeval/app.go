package main

import (
	"log"

	"github.com/chazu/pga3/pkg/engine"
	"github.com/chazu/pga3/pkg/kernel"
	"github.com/chazu/pga3/pkg/kernel/sdfx"
	"github.com/chazu/pga3/pkg/scene"
)

// colorPalette is a default palette used to assign distinct colors to nodes.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App runs scripts through the engine and, when asked, tessellates the
// scene they declare.
type App struct {
	engine     *engine.Engine
	kernel     kernel.Kernel
	tessellate bool
}

// MeshData is the JSON-serializable mesh format.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Node     string    `json:"node"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of running a script.
type EvalResult struct {
	Value  string          `json:"value"`
	Nodes  int             `json:"nodes"`
	Meshes []MeshData      `json:"meshes"`
	Errors []EvalErrorData `json:"errors"`
}

// NewApp creates a new App with an engine and the sdfx kernel.
func NewApp(tessellate bool) *App {
	return &App{
		engine:     engine.NewEngine(),
		kernel:     sdfx.New(),
		tessellate: tessellate,
	}
}

// Evaluate takes Lisp source and returns its value, mesh data and errors.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes: []MeshData{},
		Errors: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source.
	res, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors to the output format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	result.Value = res.Text
	result.Nodes = len(res.Scene.Nodes)
	if !a.tessellate {
		return result
	}

	// Step 3: Tessellate the posed scene into triangle meshes.
	meshes, err := scene.Tessellate(res.Scene, a.kernel)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Node:     m.Node,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}

	return result
}
