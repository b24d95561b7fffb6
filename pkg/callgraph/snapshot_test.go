package callgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotSaveLoad(t *testing.T) {
	reg := New(nil)
	done := reg.Track("pkg.outer")
	inner := reg.Track("pkg.inner")
	inner()
	done()

	snap := reg.Snapshot()
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, snap.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, snap.Functions, loaded.Functions)
	require.Equal(t, len(snap.Stats), len(loaded.Stats))
	require.Equal(t, snap.Stats["pkg.inner"].Sources, loaded.Stats["pkg.inner"].Sources)
	require.Equal(t, snap.Stats["pkg.outer"].Calls, loaded.Stats["pkg.outer"].Calls)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}
