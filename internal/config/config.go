package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "REGTABLES"

const (
	KeyInput         = "input"
	KeyOutputDir     = "output_dir"
	KeyXLSX          = "xlsx"
	KeyStrategy      = "strategy"
	KeySnapTolerance = "snap_tolerance"
	KeyLogLevel      = "log_level"
)

const (
	StrategyLines = "lines"
	StrategyText  = "text"
)

type Config struct {
	InputPath string
	OutputDir string
	XLSXPath  string

	Strategy      string
	SnapTolerance float64

	LogLevel string
}

// New returns a viper instance with defaults and environment binding.
// Values in a .env file in the working directory are visible through it.
func New() (*viper.Viper, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyOutputDir, cwd)
	v.SetDefault(KeyXLSX, "")
	v.SetDefault(KeyStrategy, StrategyLines)
	v.SetDefault(KeySnapTolerance, 3.0)
	v.SetDefault(KeyLogLevel, "info")
	return v, nil
}

// FromViper reads the settings out of v and validates them.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		InputPath:     strings.TrimSpace(v.GetString(KeyInput)),
		OutputDir:     v.GetString(KeyOutputDir),
		XLSXPath:      strings.TrimSpace(v.GetString(KeyXLSX)),
		Strategy:      strings.ToLower(strings.TrimSpace(v.GetString(KeyStrategy))),
		SnapTolerance: v.GetFloat64(KeySnapTolerance),
		LogLevel:      strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
	}
	return cfg, cfg.Validate()
}

// Load is New followed by FromViper, for callers without flags.
func Load() (Config, error) {
	v, err := New()
	if err != nil {
		return Config{}, err
	}
	return FromViper(v)
}

func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyLines, StrategyText:
	default:
		return fmt.Errorf("unsupported strategy: %s", c.Strategy)
	}
	if c.SnapTolerance <= 0 {
		return fmt.Errorf("snap tolerance must be positive, got %v", c.SnapTolerance)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("missing output directory")
	}
	return nil
}

func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
