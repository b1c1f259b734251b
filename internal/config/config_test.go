package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ralt/pkgseek/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sync_dir: /tmp/sync
repos: [extra, core]
sources: [syncdb]
aur:
  timeout: 3s
commands:
  yay: paru
`), 0644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/sync", cfg.SyncDir)
	require.Equal(t, []string{"extra", "core"}, cfg.Repos)
	require.Equal(t, []string{"syncdb"}, cfg.Sources)
	require.Equal(t, 3*time.Second, cfg.AUR.Timeout)
	require.Equal(t, "https://aur.archlinux.org/rpc/", cfg.AUR.BaseURL)
	require.Equal(t, "paru", cfg.Commands.Yay)
	require.Equal(t, "pacman", cfg.Commands.Pacman)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PKGSEEK_SYNC_DIR", "/srv/sync")
	t.Setenv("PKGSEEK_VERIFY_KEYRING", "/etc/pacman.d/gnupg/pubring.gpg")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "/srv/sync", cfg.SyncDir)
	require.Equal(t, "/etc/pacman.d/gnupg/pubring.gpg", cfg.Verify.Keyring)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var lookupErr *models.LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, models.ErrInvalidConfig, lookupErr.Type)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	cfg.Repos = []string{"core", "../etc"}
	require.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.SyncDir = ""
	require.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.AUR.Timeout = -time.Second
	require.Error(t, cfg.Validate())
}
