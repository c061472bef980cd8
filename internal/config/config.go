// Package config loads interpreter settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by every session a process runs. Command line
// flags override any of these.
type Config struct {
	// Trace logs every evaluation step.
	Trace bool `yaml:"trace"`

	// Dump prints the operand stack after each input unit.
	Dump bool `yaml:"dump"`

	// DepthLimit bounds nested block evaluation; 0 means unlimited.
	DepthLimit int `yaml:"depthLimit"`

	// Timeout bounds the evaluation of each input unit; 0 means unlimited.
	Timeout time.Duration `yaml:"timeout"`

	// Jobs limits how many files are evaluated concurrently.
	Jobs int `yaml:"jobs"`

	// Prelude files are evaluated into every session before its input.
	// Relative paths are resolved against the config file's directory.
	Prelude []string `yaml:"prelude"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Dump: true,
		Jobs: 4,
	}
}

// Load reads a config file, filling in defaults for anything it omits.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, name := range cfg.Prelude {
		if !filepath.IsAbs(name) {
			cfg.Prelude[i] = filepath.Join(dir, name)
		}
	}
	return cfg, nil
}

// Parse decodes YAML config data over Default; unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot be used.
func (cfg Config) Validate() error {
	if cfg.DepthLimit < 0 {
		return fmt.Errorf("invalid depthLimit %v", cfg.DepthLimit)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("invalid timeout %v", cfg.Timeout)
	}
	if cfg.Jobs < 1 {
		return fmt.Errorf("invalid jobs %v, must be at least 1", cfg.Jobs)
	}
	return nil
}
