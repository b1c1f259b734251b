package syncdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverOrdersByPriority(t *testing.T) {
	dir := t.TempDir()
	for _, repo := range []string{"zeta", "multilib", "alpha", "extra", "core"} {
		writeDB(t, dir, repo, coreFixture)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core.db.sig"), []byte("sig"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.db"), 0755))

	containers, err := Discover(context.Background(), dir)
	require.NoError(t, err)

	var repos []string
	for _, c := range containers {
		repos = append(repos, c.Repo)
	}
	require.Equal(t, []string{"core", "extra", "multilib", "alpha", "zeta"}, repos)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
