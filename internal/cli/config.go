package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
)

// Config holds settings shared by every command.
type Config struct {
	// UseGroups enforces group constraints by default.
	UseGroups bool `toml:"use_groups" env:"USE_GROUPS"`

	// MaxAttempts is the retry ceiling for a draw.
	MaxAttempts int `toml:"max_attempts" env:"MAX_ATTEMPTS"`

	// Format is the default output format of draw and history show.
	Format string `toml:"format" env:"FORMAT"`

	// Record stores every draw in the history database.
	Record bool `toml:"record" env:"RECORD"`

	// HistoryDB is the SQLite history path.
	HistoryDB string `toml:"history_db" env:"HISTORY_DB"`

	// Addr is the listen address of serve.
	Addr string `toml:"addr" env:"ADDR"`
}

// defaultConfig returns the built-in settings.
func defaultConfig() Config {
	cfg := Config{
		MaxAttempts: circle.DefaultMaxAttempts,
		Format:      "csv",
		Addr:        ":8080",
	}
	if dir, err := dataDir(); err == nil {
		cfg.HistoryDB = filepath.Join(dir, "history.db")
	}
	return cfg
}

// defaultConfigPath returns $XDG_CONFIG_HOME/giftcircle/config.toml.
func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// loadConfig resolves the config file and environment on top of defaults.
// A missing file at the default path is ignored; a missing file passed
// explicitly is an error.
func loadConfig(path string, explicit bool, environ map[string]string, logger *log.Logger) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
			for _, key := range md.Undecoded() {
				logger.Warn("unknown config key", "key", key.String(), "file", path)
			}
			logger.Debug("loaded config", "file", path)
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return cfg, gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "load config %s", path)
		}
	}

	if err := applyEnv(&cfg, environ); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadDotEnv loads .env from the working directory into the process
// environment without overriding variables that are already set.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "load .env")
	}
	return nil
}

// applyEnv overrides cfg with the GIFTCIRCLE_* variables in environ, or in
// the process environment when environ is nil. Empty variables are ignored.
func applyEnv(cfg *Config, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix, Environment: environ})
	if err != nil {
		return gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "read %s* environment", envPrefix)
	}
	return nil
}

func (cfg Config) validate() error {
	if cfg.MaxAttempts < 1 {
		return gcerrors.New(gcerrors.ErrCodeInvalidInput, "max_attempts must be at least 1, got %d", cfg.MaxAttempts)
	}
	if _, err := parseOutputFormat(cfg.Format); err != nil {
		return err
	}
	return nil
}

// writeDefaultConfig writes cfg as TOML to path unless a file already exists.
func writeDefaultConfig(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return gcerrors.New(gcerrors.ErrCodeInvalidInput, "config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}
