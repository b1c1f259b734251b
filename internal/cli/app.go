package cli

import (
	"context"
	"fmt"

	"github.com/ralt/pkgseek/internal/aggregator"
	"github.com/ralt/pkgseek/internal/catalog/aur"
	"github.com/ralt/pkgseek/internal/catalog/syncdb"
	"github.com/ralt/pkgseek/internal/config"
	"github.com/ralt/pkgseek/internal/details"
	"github.com/ralt/pkgseek/internal/models"
	"github.com/ralt/pkgseek/internal/runner"
	"github.com/ralt/pkgseek/internal/verify"
	"github.com/sirupsen/logrus"
)

// app wires the package sources for one configuration
type app struct {
	aggregator *aggregator.Aggregator
	resolver   *details.Resolver
}

func newApp(ctx context.Context, cfg config.Config, r runner.Runner, cache *details.Cache) (*app, error) {
	var syncOpts []syncdb.Option
	if cfg.Verify.Keyring != "" {
		v, err := verify.NewKeyringVerifier(cfg.Verify.Keyring)
		if err != nil {
			return nil, &models.LookupError{
				Type: models.ErrInvalidConfig,
				Err:  fmt.Errorf("failed to initialize signature verification: %w", err),
			}
		}
		syncOpts = append(syncOpts, syncdb.WithVerifier(v))
		logrus.Debug("Sync database signature verification enabled")
	}

	containers := syncdb.ContainersFor(cfg.SyncDir, cfg.Repos)
	if len(cfg.Repos) == 0 {
		discovered, err := syncdb.Discover(ctx, cfg.SyncDir)
		if err != nil {
			logrus.Warnf("No sync databases available: %v", err)
		}
		containers = discovered
	}

	syncSource := syncdb.NewSource(containers, syncOpts...)
	aurClient := aur.NewClient(aur.NewHTTPFetcher(cfg.AUR.BaseURL, cfg.AUR.Timeout))

	return &app{
		aggregator: aggregator.New(
			syncSource,
			aggregator.NewPacmanSource(cfg.Commands.Pacman, r),
			aggregator.NewAURSource(cfg.Commands.Yay, r),
		),
		resolver: details.NewResolver(cache,
			details.WithProvider(models.FamilyPacman, syncSource),
			details.WithProvider(models.FamilyAUR, aurClient),
		),
	}, nil
}
