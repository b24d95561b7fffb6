// Package render turns a callgraph snapshot into a directed-graph artifact.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/emicklei/dot"

	"github.com/danpilch/tracegraph/pkg/callgraph"
)

// Options configure graph rendering.
type Options struct {
	// TimeResolution is the number of decimals shown for cumulative time.
	TimeResolution int
}

// Graph builds the call graph: one box node per tracked function, labelled
// with its call count and rounded cumulative time and filled from the time
// palette, plus one edge per recorded source relationship.
//
// An edge whose source has no node means a function recorded as a caller was
// never registered itself. That indicates a bug in registration ordering, so
// it is surfaced as an error rather than skipped.
func Graph(snap callgraph.Snapshot, opts Options) (*dot.Graph, error) {
	g := dot.NewGraph(dot.Directed)
	g.Attr("compound", "true")
	g.NodeInitializer(func(n dot.Node) {
		n.Attr("color", "black")
		n.Attr("style", "filled")
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
		n.Attr("fontsize", "10")
	})

	times := make([]float64, 0, len(snap.Functions))
	for _, rec := range snap.Functions {
		times = append(times, snap.Stats[rec.Name].CumulativeMS)
	}
	palette := Palette(times)

	nodes := make(map[string]dot.Node, len(snap.Functions))
	for _, rec := range snap.Functions {
		st := snap.Stats[rec.Name]
		label := fmt.Sprintf("%s\nNumber of Calls: %d\n%s ms",
			rec.Name, st.Calls, formatMS(st.CumulativeMS, opts.TimeResolution))
		n := g.Node(rec.Name).Label(label)
		n.Attr("fillcolor", palette[int(st.CumulativeMS)])
		nodes[rec.Name] = n
	}

	for _, rec := range snap.Functions {
		for _, src := range snap.Stats[rec.Name].Sources {
			from, ok := nodes[src.Name]
			if !ok {
				return nil, fmt.Errorf("cannot draw edge %s -> %s: source was never assigned a node", src.Name, rec.Name)
			}
			g.Edge(from, nodes[rec.Name])
		}
	}
	return g, nil
}

// WriteDOT writes the graph in DOT source form.
func WriteDOT(snap callgraph.Snapshot, opts Options, w io.Writer) error {
	g, err := Graph(snap, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return err
}

// WriteFile renders the graph to path. A .dot or .gv extension writes DOT
// source directly; any other extension is produced by piping the DOT source
// through the local graphviz dot binary, which must be on PATH.
func WriteFile(snap callgraph.Snapshot, opts Options, path string) error {
	g, err := Graph(snap, opts)
	if err != nil {
		return err
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" || ext == "dot" || ext == "gv" {
		if err := os.WriteFile(path, []byte(g.String()), 0644); err != nil {
			return fmt.Errorf("cannot write graph: %w", err)
		}
		return nil
	}

	cmd := exec.Command("dot", "-T"+ext, "-o", path)
	cmd.Stdin = strings.NewReader(g.String())
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("cannot render %s via graphviz: %w: %s", ext, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// formatMS rounds to the requested number of decimals and drops trailing
// zeros, so a resolution of 2 renders 12.30 as "12.3" and 12.00 as "12".
func formatMS(ms float64, resolution int) string {
	if resolution < 0 {
		resolution = 0
	}
	p := math.Pow10(resolution)
	return strconv.FormatFloat(math.Round(ms*p)/p, 'f', -1, 64)
}
