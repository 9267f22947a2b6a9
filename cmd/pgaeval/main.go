// Command pgaeval evaluates a PGA script and prints the value of its last
// expression. With -mesh it also tessellates the scene the script declares.
//
// Usage:
//
//	pgaeval [-mesh] [-kernel sdfx|manifold] [-json] [script.pga]
//
// The script is read from standard input when no file is given.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/pga3/pkg/kernel"
	"github.com/chazu/pga3/pkg/kernel/manifold"
	"github.com/chazu/pga3/pkg/kernel/sdfx"
)

func main() {
	mesh := flag.Bool("mesh", false, "tessellate the declared scene")
	kernelName := flag.String("kernel", "sdfx", "geometry kernel used by -mesh: sdfx or manifold")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("pgaeval: ")

	source, err := readSource(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	app, err := newApp(*mesh, *kernelName)
	if err != nil {
		log.Fatal(err)
	}
	result := app.Evaluate(string(source))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatal(err)
		}
	} else {
		printResult(os.Stdout, result)
	}

	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

// newApp checks the kernel name but only builds the kernel when the scene
// will be tessellated.
func newApp(mesh bool, kernelName string) (*App, error) {
	switch kernelName {
	case "sdfx", "manifold":
	default:
		return nil, fmt.Errorf("unknown kernel %q", kernelName)
	}
	app := NewApp(mesh)
	if !mesh {
		return app, nil
	}
	k, err := newKernel(kernelName)
	if err != nil {
		return nil, err
	}
	app.kernel = k
	return app, nil
}

func newKernel(name string) (kernel.Kernel, error) {
	switch name {
	case "sdfx":
		return sdfx.New(), nil
	case "manifold":
		return manifold.New()
	}
	return nil, fmt.Errorf("unknown kernel %q", name)
}

func readSource(args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(os.Stdin)
	case 1:
		return os.ReadFile(args[0])
	}
	return nil, fmt.Errorf("expected at most one script, got %d", len(args))
}

func printResult(w io.Writer, r EvalResult) {
	for _, e := range r.Errors {
		if e.Line > 0 {
			fmt.Fprintf(w, "error: line %d: %s\n", e.Line, e.Message)
		} else {
			fmt.Fprintf(w, "error: %s\n", e.Message)
		}
	}
	if len(r.Errors) > 0 {
		return
	}
	if r.Value != "" {
		fmt.Fprintln(w, r.Value)
	}
	for _, m := range r.Meshes {
		fmt.Fprintf(w, "mesh %s: %d vertices, %d triangles\n", m.Node, len(m.Vertices)/3, len(m.Indices)/3)
	}
}
