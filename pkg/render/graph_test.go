package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danpilch/tracegraph/pkg/callgraph"
)

func sampleSnapshot() callgraph.Snapshot {
	reg := callgraph.New(nil)
	outer := reg.Track("pkg.outer")
	inner := reg.Track("pkg.inner")
	inner()
	outer()
	return reg.Snapshot()
}

func TestGraphNodesAndEdges(t *testing.T) {
	g, err := Graph(sampleSnapshot(), Options{TimeResolution: 2})
	require.NoError(t, err)

	src := g.String()
	require.Contains(t, src, "pkg.outer")
	require.Contains(t, src, "pkg.inner")
	require.Contains(t, src, "->")
	require.Contains(t, src, "Number of Calls: 1")
	require.Contains(t, src, "fillcolor")
	require.Contains(t, src, "shape=\"box\"")
}

func TestGraphMissingSourceNode(t *testing.T) {
	snap := callgraph.Snapshot{
		Taken:     time.Now(),
		Functions: []callgraph.CallRecord{{Name: "pkg.orphan"}},
		Stats: map[string]callgraph.FunctionStats{
			"pkg.orphan": {
				Calls:   1,
				Sources: []callgraph.CallRecord{{Name: "pkg.missing"}},
			},
		},
	}

	_, err := Graph(snap, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "pkg.missing")
}

func TestGraphEmptySnapshot(t *testing.T) {
	g, err := Graph(callgraph.Snapshot{Stats: map[string]callgraph.FunctionStats{}}, Options{})
	require.NoError(t, err)
	require.Contains(t, g.String(), "digraph")
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(sampleSnapshot(), Options{TimeResolution: 1}, &buf))
	require.Contains(t, buf.String(), "digraph")
	require.Contains(t, buf.String(), "ms")
}

func TestWriteFileDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	require.NoError(t, WriteFile(sampleSnapshot(), Options{TimeResolution: 2}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "digraph"))
}

func TestFormatMS(t *testing.T) {
	require.Equal(t, "12.35", formatMS(12.345, 2))
	require.Equal(t, "12", formatMS(12.004, 2))
	require.Equal(t, "12.3", formatMS(12.30, 2))
	require.Equal(t, "0", formatMS(0, 3))
	require.Equal(t, "13", formatMS(12.7, -1))
}
