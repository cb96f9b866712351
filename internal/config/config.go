// Package config resolves tally settings from the environment, an optional
// .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.sr.ht/~jakintosh/tally/internal/report"
)

const (
	EnvLedgerFile = "LEDGER_FILE"
	EnvColor      = "TALLY_COLOR"
	EnvConfig     = "TALLY_CONFIG"
)

// Config is the resolved configuration. Command-line flags are applied on
// top of it by the caller, followed by Validate.
type Config struct {
	Files  []string
	Color  report.ColorMode
	Pager  bool
	Strict bool
	Sort   bool

	// Source is the config file that was read, empty when none was.
	Source string

	colorSource string // where Color came from, for error messages
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Color:       report.ColorAuto,
		Sort:        true,
		colorSource: "default color",
	}
}

// fileConfig mirrors the YAML layout. Pointers tell unset keys apart from
// false.
type fileConfig struct {
	Files  []string `yaml:"files"`
	Color  string   `yaml:"color"`
	Pager  *bool    `yaml:"pager"`
	Strict *bool    `yaml:"strict"`
	Sort   *bool    `yaml:"sort"`
}

// Load builds the configuration. envPath names a .env file to load; when it
// is empty a .env in the working directory is loaded if present.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := Default()

	path, explicit, err := configPath()
	if err != nil {
		return nil, err
	}
	// the default location is optional
	if err := cfg.readFile(path); err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return nil, err
	}

	if files := os.Getenv(EnvLedgerFile); files != "" {
		cfg.Files = filepath.SplitList(files)
	}
	if color := os.Getenv(EnvColor); color != "" {
		cfg.Color = report.ColorMode(color)
		cfg.colorSource = EnvColor
	}

	return cfg, nil
}

// Validate checks the values Load could not. Call it after applying
// command-line overrides, so a valid flag replaces an invalid setting.
func (c *Config) Validate() error {
	if _, err := report.ParseColorMode(string(c.Color)); err != nil {
		return fmt.Errorf("invalid %s: %w", c.colorSource, err)
	}
	return nil
}

// SetColor overrides the color mode, as the --color flag does.
func (c *Config) SetColor(mode report.ColorMode, source string) {
	c.Color = mode
	c.colorSource = source
}

// configPath returns the config file to read and whether it was chosen
// explicitly through the environment.
func configPath() (string, bool, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, true, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "tally", "config.yaml"), false, nil
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(b, &file); err != nil {
		return fmt.Errorf("invalid config file '%s': %w", path, err)
	}

	// relative ledger paths are relative to the config file
	for _, f := range file.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(filepath.Dir(path), f)
		}
		c.Files = append(c.Files, f)
	}
	if file.Color != "" {
		c.Color = report.ColorMode(file.Color)
		c.colorSource = fmt.Sprintf("color in config file '%s'", path)
	}
	if file.Pager != nil {
		c.Pager = *file.Pager
	}
	if file.Strict != nil {
		c.Strict = *file.Strict
	}
	if file.Sort != nil {
		c.Sort = *file.Sort
	}

	c.Source = path
	return nil
}
