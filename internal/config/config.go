package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/rmcalc/internal/render"
	"github.com/misterclayt0n/rmcalc/internal/rm"
)

type Config struct {
	Calculator CalculatorConfig `toml:"calculator"`
	Server     ServerConfig     `toml:"server"`
	Output     OutputConfig     `toml:"output"`
}

type CalculatorConfig struct {
	RejectZeroWeight bool `toml:"reject_zero_weight"` // Treat 0 kg as "no result".
	DefaultReps      int  `toml:"default_reps"`       // Preselected rep count in the widget.
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Calculator: CalculatorConfig{DefaultReps: 1},
		Server:     ServerConfig{Host: "127.0.0.1", Port: 8080},
		Output:     OutputConfig{Format: render.FormatTable, Color: true},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "rmcalc")
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from path, or from GetConfigPath when path is
// empty. A missing file is not an error. A .env file in the working directory
// is loaded first, then RMCALC_* environment variables override the file.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads variables from path into the environment. A missing file
// is fine; a malformed one is not.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RMCALC_REJECT_ZERO_WEIGHT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Calculator.RejectZeroWeight = b
		}
	}
	if v := os.Getenv("RMCALC_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("RMCALC_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RMCALC_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	// https://no-color.org
	if os.Getenv("RMCALC_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		cfg.Output.Color = false
	}
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Calculator.DefaultReps < 1 || c.Calculator.DefaultReps > rm.MaxReps {
		return fmt.Errorf("calculator.default_reps must be between 1 and %d", rm.MaxReps)
	}
	if !render.ValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %v", c.Output.Format, render.Formats)
	}
	return nil
}

// EngineOptions maps the calculator section onto engine options.
func (c *Config) EngineOptions() rm.Options {
	return rm.Options{RejectZeroWeight: c.Calculator.RejectZeroWeight}
}

// Addr is the listen address for the widget server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
