// Package config resolves the startup configuration from defaults, an
// optional .env file, PATHVIZ_* environment variables and command-line flags,
// in increasing order of precedence. The result is fixed for the process lifetime.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/pathviz/constants"
)

// ErrInvalid indicates a configuration value that cannot be used
var ErrInvalid = errors.New("config: invalid value")

// DefaultEnvFile is read when present and no explicit file is given
const DefaultEnvFile = ".env"

const envPrefix = "PATHVIZ_"

// Config holds the startup settings
type Config struct {
	Width  int // Grid width in cells
	Height int // Grid height in cells
	PitchX int // Terminal columns per cell
	PitchY int // Terminal rows per cell
	TPS    int // Host loop ticks per second
	Audio  bool
	Debug  bool   // Enables file logging
	LogDir string // Directory for the debug log
	Seed   int64  // Maze preset seed, 0 = time based
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		Width:  constants.GridWidth,
		Height: constants.GridHeight,
		PitchX: constants.CellPitchX,
		PitchY: constants.CellPitchY,
		TPS:    constants.TicksPerSecond,
		Audio:  true,
		LogDir: "logs",
	}
}

// Load resolves the configuration. envFiles are read without modifying the
// process environment; real environment variables win over file entries.
// A missing DefaultEnvFile is not an error, a missing explicit file is.
func Load(args []string, envFiles ...string) (Config, error) {
	cfg := Default()

	fileEnv := map[string]string{}
	if len(envFiles) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			envFiles = []string{DefaultEnvFile}
		}
	}
	if len(envFiles) > 0 {
		m, err := godotenv.Read(envFiles...)
		if err != nil {
			return cfg, fmt.Errorf("config: reading env file: %w", err)
		}
		fileEnv = m
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			return v, true
		}
		v, ok := fileEnv[envPrefix+key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	fs.IntVar(&cfg.PitchX, "pitch-x", cfg.PitchX, "terminal columns per cell")
	fs.IntVar(&cfg.PitchY, "pitch-y", cfg.PitchY, "terminal rows per cell")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "ticks per second")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "enable sound cues")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to the log directory")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "debug log directory")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "maze preset seed (0 = random)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the grid and loop cannot run with
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"pitch-x", c.PitchX},
		{"pitch-y", c.PitchY},
		{"tps", c.TPS},
	}
	for _, ch := range checks {
		if ch.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, ch.name, ch.v)
		}
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WIDTH", &c.Width},
		{"HEIGHT", &c.Height},
		{"PITCH_X", &c.PitchX},
		{"PITCH_Y", &c.PitchY},
		{"TPS", &c.TPS},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, envPrefix, e.key, v)
		}
		*e.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"AUDIO", &c.Audio},
		{"DEBUG", &c.Debug},
	}
	for _, e := range bools {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, envPrefix, e.key, v)
		}
		*e.dst = b
	}

	if v, ok := lookup("LOG_DIR"); ok {
		c.LogDir = v
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalid, envPrefix, v)
		}
		c.Seed = n
	}
	return nil
}
