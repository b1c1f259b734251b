package syncdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultPriority is the order of the official repositories. Discovered databases
// not listed here follow in alphabetical order.
var DefaultPriority = []string{"core", "extra", "multilib"}

// Discover finds the sync databases (*.db) directly inside dir and returns them in
// DefaultPriority order.
func Discover(ctx context.Context, dir string) ([]Container, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	var containers []Container
	for _, entry := range entries {
		// Check context cancellation
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}

		c := NewContainer(filepath.Join(dir, entry.Name()))
		logrus.Debugf("Found sync database %s: %s", c.Repo, c.Path)
		containers = append(containers, c)
	}

	rank := make(map[string]int, len(DefaultPriority))
	for i, repo := range DefaultPriority {
		rank[repo] = i + 1
	}
	sort.SliceStable(containers, func(i, j int) bool {
		ri, rj := rank[containers[i].Repo], rank[containers[j].Repo]
		switch {
		case ri != 0 && rj != 0:
			return ri < rj
		case ri != 0 || rj != 0:
			return ri != 0
		default:
			return containers[i].Repo < containers[j].Repo
		}
	})

	logrus.Debugf("Found %d sync databases in %s", len(containers), dir)
	return containers, nil
}
