// Package config provides configuration types, defaults and loading for pkgseek.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ralt/pkgseek/internal/models"
	"github.com/spf13/viper"
)

// Config holds all configuration options for pkgseek.
type Config struct {
	// Sync databases
	SyncDir string   `mapstructure:"sync_dir"`
	Repos   []string `mapstructure:"repos"` // lookup priority order

	// Sources enabled for search
	Sources []string `mapstructure:"sources"`

	AUR      AURConfig      `mapstructure:"aur"`
	Verify   VerifyConfig   `mapstructure:"verify"`
	Commands CommandsConfig `mapstructure:"commands"`
}

// AURConfig configures the AUR RPC client.
type AURConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// VerifyConfig configures sync database signature checks.
type VerifyConfig struct {
	Keyring string `mapstructure:"keyring"` // empty disables verification
}

// CommandsConfig names the package manager binaries.
type CommandsConfig struct {
	Pacman string `mapstructure:"pacman"`
	Yay    string `mapstructure:"yay"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		SyncDir: "/var/lib/pacman/sync",
		Repos:   []string{"core", "extra", "multilib"},
		Sources: []string{"syncdb", "pacman", "aur"},
		AUR: AURConfig{
			BaseURL: "https://aur.archlinux.org/rpc/",
			Timeout: 10 * time.Second,
		},
		Commands: CommandsConfig{
			Pacman: "pacman",
			Yay:    "yay",
		},
	}
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("sync_dir", d.SyncDir)
	v.SetDefault("repos", d.Repos)
	v.SetDefault("sources", d.Sources)
	v.SetDefault("aur.base_url", d.AUR.BaseURL)
	v.SetDefault("aur.timeout", d.AUR.Timeout)
	v.SetDefault("verify.keyring", d.Verify.Keyring)
	v.SetDefault("commands.pacman", d.Commands.Pacman)
	v.SetDefault("commands.yay", d.Commands.Yay)
}

// Load reads configuration from cfgFile, or from ~/.config/pkgseek/config.yaml when
// cfgFile is empty, layered over defaults and PKGSEEK_* environment variables.
// A missing default config file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("PKGSEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pkgseek"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return Config{}, &models.LookupError{
				Type: models.ErrInvalidConfig,
				Err:  fmt.Errorf("failed to read config: %w", err),
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &models.LookupError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("failed to decode config: %w", err),
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for required values.
func (c *Config) Validate() error {
	if len(c.Repos) > 0 && c.SyncDir == "" {
		return invalid("sync_dir is required when repos are configured")
	}
	for _, repo := range c.Repos {
		if repo == "" || strings.ContainsAny(repo, `/\`) {
			return invalid(fmt.Sprintf("invalid repository name %q", repo))
		}
	}
	if c.AUR.Timeout < 0 {
		return invalid("aur.timeout must not be negative")
	}
	return nil
}

func invalid(msg string) error {
	return &models.LookupError{Type: models.ErrInvalidConfig, Err: fmt.Errorf("%s", msg)}
}
