package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ralt/pkgseek/internal/details"
	"github.com/ralt/pkgseek/internal/models"
	"github.com/ralt/pkgseek/internal/runner"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "info <identity>",
		Short: "Show the details of a package",
		Long: `Shows full package details. The provider selects where details come from:
"pacman" or "pacman/<repo>" reads the sync databases, "aur" queries the AUR.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts.cfg, runner.Exec{}, details.NewCache())
			if err != nil {
				return err
			}

			d, ok := a.resolver.Resolve(cmd.Context(), args[0], provider)
			if !ok {
				return &models.LookupError{
					Type:    models.ErrNotFound,
					Package: args[0],
					Err:     fmt.Errorf("no details from %s", provider),
				}
			}

			return writeDetails(cmd.OutOrStdout(), d)
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", models.FamilyPacman.String(), "Provider tag (pacman, pacman/<repo>, aur)")

	return cmd
}

func writeDetails(w io.Writer, d *models.Details) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, f := range d.Fields() {
		fmt.Fprintf(tw, "%s\t: %s\n", f.Key, f.Value)
	}
	return tw.Flush()
}
