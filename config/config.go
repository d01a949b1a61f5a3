// Package config resolves animator settings from file, environment and command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

// EnvPrefix prefixes environment overrides, e.g. RHOTATE_STEP or RHOTATE_LOG_DEBUG
const EnvPrefix = "RHOTATE"

// FileName is the config file searched for when no path is given
const FileName = "rhotate.yaml"

// Display backends
const (
	BackendConsole = "console"
	BackendTcell   = "tcell"
)

// DefaultFrameUnit is the wait per step unit between frames
const DefaultFrameUnit = 40 * time.Millisecond

// Step bounds
const (
	MinStep = 1
	MaxStep = 10
)

var ErrBadBackend = errors.New("unknown backend")

// Config holds all animator settings
type Config struct {
	Step      int           `fig:"step" default:"1"`
	Backend   string        `fig:"backend" default:"console"`
	Chime     bool          `fig:"chime"`
	FrameUnit time.Duration `fig:"frame_unit" default:"40ms"`
	Duration  time.Duration `fig:"duration"` // 0 runs until input
	Log       LogConfig     `fig:"log"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `fig:"debug"`
	Dir   string `fig:"dir" default:"logs"`
}

// Load reads path, or FileName from the default search dirs when path is empty
// A missing default file is not an error; a missing explicit path is
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		err := fig.Load(cfg,
			fig.File(filepath.Base(path)),
			fig.Dirs(filepath.Dir(path)),
			fig.UseEnv(EnvPrefix),
		)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		return cfg, cfg.Validate()
	}

	err := fig.Load(cfg, fig.File(FileName), fig.Dirs(searchDirs()...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		cfg = &Config{}
		err = loadDefaults(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, cfg.Validate()
}

// emptyDoc stands in for a missing config file
const emptyDoc = "{}\n"

// loadDefaults runs fig over an empty document so defaults and env overrides still apply
// fig only reads from disk, so the document goes to a throwaway dir
func loadDefaults(cfg *Config) error {
	dir, err := os.MkdirTemp("", "rhotate-config-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(emptyDoc), 0o600); err != nil {
		return err
	}
	return fig.Load(cfg, fig.File(FileName), fig.Dirs(dir), fig.UseEnv(EnvPrefix))
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "rhotate"))
	}
	return dirs
}

// Validate normalizes Step and checks Backend
func (c *Config) Validate() error {
	c.Step = ClampStep(c.Step)
	switch c.Backend {
	case BackendConsole, BackendTcell:
	default:
		return fmt.Errorf("%w: %q", ErrBadBackend, c.Backend)
	}
	if c.FrameUnit <= 0 {
		c.FrameUnit = DefaultFrameUnit
	}
	if c.Duration < 0 {
		c.Duration = 0
	}
	return nil
}

// FrameWait returns the per-frame input wait
func (c *Config) FrameWait() time.Duration {
	return c.FrameUnit * time.Duration(c.Step)
}
