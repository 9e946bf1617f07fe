// Package config loads optional CLI defaults from a notalib.yml file.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

// Config holds defaults for the CLI commands. Every field has a usable zero
// or default value, so a missing config file is not an error.
type Config struct {
	Progress ProgressConfig `yaml:"progress"`
	Date     DateConfig     `yaml:"date"`
	Log      LogConfig      `yaml:"log"`
}

type ProgressConfig struct {
	// IntervalMs bounds how often the indicator repaints, in milliseconds.
	IntervalMs int  `yaml:"interval_ms" validate:"gte=0"`
	NoCaptions bool `yaml:"no_captions"`
}

type DateConfig struct {
	// InputLayouts are Go time layouts tried in order when parsing.
	InputLayouts []string `yaml:"input_layouts"`
	OutputLayout string   `yaml:"output_layout"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=auto pretty json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Interval returns the configured repaint interval as a duration.
func (p ProgressConfig) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}

// Load reads configuration from the provided path. When path is empty it
// looks for notalib.yml or notalib.yaml in the current working directory and
// falls back to defaults when neither exists.
func Load(path string) (Config, error) {
	resolved, err := resolveConfigPath(path)
	if err != nil {
		return Config{}, err
	}
	cfg := defaults()
	if resolved == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(resolved)
	if err != nil {
		return Config{}, apperr.Wrap("config.Load", apperr.NotFound, err, "read config %s", resolved)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b), yaml.Validator(validate), yaml.Strict())
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, apperr.Wrap("config.Load", apperr.InvalidInput, err, "parse yaml: %s", yaml.FormatError(err, false, true))
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Progress: ProgressConfig{IntervalMs: 100},
		Date: DateConfig{
			InputLayouts: []string{"2006-01-02", "02.01.2006", "2006-01-02 15:04:05"},
			OutputLayout: "2006-01-02",
		},
	}
}

// resolveConfigPath maps the user-provided path to a concrete file. An empty
// result with a nil error means "use defaults".
func resolveConfigPath(path string) (string, error) {
	if path != "" {
		// An explicitly named file must exist.
		if _, err := os.Stat(path); err != nil {
			return "", apperr.Wrap("config.Load", apperr.NotFound, err, "config file %s", path)
		}
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", apperr.Wrap("config.Load", apperr.Internal, err, "getwd")
	}
	for _, name := range []string{"notalib.yml", "notalib.yaml"} {
		candidate := filepath.Join(cwd, name)
		_, statErr := os.Stat(candidate)
		if statErr == nil {
			return candidate, nil
		}
		if !errors.Is(statErr, fs.ErrNotExist) {
			return "", apperr.Wrap("config.Load", apperr.Internal, statErr, "stat %s", candidate)
		}
	}
	return "", nil
}
