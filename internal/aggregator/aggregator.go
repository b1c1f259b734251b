// Package aggregator fans a search out to the enabled package sources and merges
// their ranked results.
package aggregator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ralt/pkgseek/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SourceSet selects sources by name. An empty set selects every source.
type SourceSet map[string]bool

// ParseSourceSet builds a set from names, accepting comma-separated entries.
func ParseSourceSet(names []string) SourceSet {
	set := make(SourceSet)
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if part = strings.TrimSpace(part); part != "" {
				set[part] = true
			}
		}
	}
	return set
}

// Enabled reports whether name is selected
func (s SourceSet) Enabled(name string) bool {
	return len(s) == 0 || s[name]
}

// Names returns the selected names, sorted
func (s SourceSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Aggregator searches a fixed list of sources
type Aggregator struct {
	sources []Source
}

// New creates an Aggregator. Results from sources are concatenated in this order
// before ranking.
func New(sources ...Source) *Aggregator {
	return &Aggregator{sources: sources}
}

// Sources returns the registered source names
func (a *Aggregator) Sources() []string {
	names := make([]string, len(a.sources))
	for i, s := range a.sources {
		names[i] = s.Name()
	}
	return names
}

// Validate checks that every name in enabled refers to a registered source
func (a *Aggregator) Validate(enabled SourceSet) error {
	known := make(map[string]bool, len(a.sources))
	for _, s := range a.sources {
		known[s.Name()] = true
	}
	for _, n := range enabled.Names() {
		if !known[n] {
			return &models.LookupError{
				Type: models.ErrInvalidConfig,
				Err:  fmt.Errorf("unknown source %q (available: %s)", n, strings.Join(a.Sources(), ", ")),
			}
		}
	}
	return nil
}

// Search queries every enabled source concurrently and returns the merged results,
// best first.
func (a *Aggregator) Search(ctx context.Context, query string, enabled SourceSet) []models.Package {
	results := make([][]models.Package, len(a.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		if !enabled.Enabled(src.Name()) {
			continue
		}
		i, src := i, src
		g.Go(func() error {
			results[i] = src.Search(gctx, query)
			logrus.Debugf("Source %s returned %d packages", src.Name(), len(results[i]))
			return nil
		})
	}
	// Sources report failure as empty results, so Wait never returns an error.
	_ = g.Wait()

	var merged []models.Package
	for _, r := range results {
		merged = append(merged, r...)
	}

	models.SortByScore(merged)
	return merged
}
