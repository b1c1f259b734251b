package cli

import (
	"github.com/ralt/pkgseek/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options carries state shared by the subcommands
type options struct {
	cfgFile string
	viper   *viper.Viper
	cfg     config.Config
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "pkgseek",
		Short: "Fuzzy-search Arch Linux packages across repositories and the AUR",
		Long: `Pkgseek ranks packages from the local pacman sync databases, pacman and yay
search output against a partial or misspelled search term, and shows full
package details on demand.

Sources:
  - syncdb  (pacman sync databases on disk)
  - pacman  (pacman -Ss)
  - aur     (yay -Ss, details from the AUR RPC interface)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}

			cfg, err := config.Load(opts.viper, opts.cfgFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logrus.Debugf("Configuration: %+v", cfg)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: ~/.config/pkgseek/config.yaml)")
	rootCmd.PersistentFlags().String("sync-dir", "", "Directory holding the pacman sync databases")
	rootCmd.PersistentFlags().StringSlice("repos", nil, "Sync databases to read, in priority order")

	_ = opts.viper.BindPFlag("sync_dir", rootCmd.PersistentFlags().Lookup("sync-dir"))
	_ = opts.viper.BindPFlag("repos", rootCmd.PersistentFlags().Lookup("repos"))

	// Add subcommands
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newInfoCmd(opts))

	return rootCmd
}
