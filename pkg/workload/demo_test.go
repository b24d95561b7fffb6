package workload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danpilch/tracegraph/pkg/callgraph"
)

func TestDemo(t *testing.T) {
	reg := callgraph.New(nil)
	var buf bytes.Buffer

	require.Equal(t, 2, Demo(reg, &buf))
	require.Contains(t, buf.String(), "current value = 2")
	require.Contains(t, buf.String(), "final value = 2")

	snap := reg.Snapshot()
	require.Len(t, snap.Functions, 2)
	require.Equal(t, 2, snap.Stats["workload.sumRecursive"].Calls)
	require.Equal(t, 2, snap.Stats["workload.printValue"].Calls)
	require.Equal(t, []callgraph.CallRecord{{Name: "workload.sumRecursive"}},
		snap.Stats["workload.printValue"].Sources)
	require.Empty(t, reg.Active())
}
