package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ralt/pkgseek/internal/aggregator"
	"github.com/ralt/pkgseek/internal/details"
	"github.com/ralt/pkgseek/internal/models"
	"github.com/ralt/pkgseek/internal/runner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *options) *cobra.Command {
	var (
		sources []string
		limit   int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Rank packages matching a search term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("source") {
				opts.cfg.Sources = sources
			}

			a, err := newApp(cmd.Context(), opts.cfg, runner.Exec{}, details.NewCache())
			if err != nil {
				return err
			}

			enabled := aggregator.ParseSourceSet(opts.cfg.Sources)
			if err := a.aggregator.Validate(enabled); err != nil {
				return err
			}

			query := strings.Join(args, " ")
			logrus.Debugf("Searching %v for %q", enabled.Names(), query)

			results := a.aggregator.Search(cmd.Context(), query, enabled)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return writeResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringSliceVarP(&sources, "source", "s", nil, "Sources to search (syncdb, pacman, aur)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of results (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

type jsonPackage struct {
	Provider    string  `json:"provider"`
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

func writeJSON(w io.Writer, results []models.Package) error {
	out := make([]jsonPackage, len(results))
	for i, p := range results {
		out[i] = jsonPackage(p)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeResults(w io.Writer, results []models.Package) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No packages found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n", p.Provider, p.Name, p.Version, p.Score, p.Description)
	}
	return tw.Flush()
}
