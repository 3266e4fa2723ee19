// Package config loads vfsh.yaml and layers VFSH_* environment overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the per-directory configuration file name.
const ConfigFileName = "vfsh.yaml"

// Environment variable names recognized by ApplyEnvironment.
const (
	EnvSnapshot         = "VFSH_SNAPSHOT"
	EnvSnapshotCompress = "VFSH_SNAPSHOT_COMPRESS"
	EnvPrompt           = "VFSH_PROMPT"
)

// SnapshotConfig controls persistence. An empty Path disables it.
type SnapshotConfig struct {
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress,omitempty"`
}

// Config is the full project configuration.
type Config struct {
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Prompt   string         `yaml:"prompt,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{}
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnvironment overrides fields from VFSH_* environment variables.
// Precedence is established by call order: file values first, then this,
// then CLI flags applied by the caller.
func (c *Config) ApplyEnvironment() {
	if v, ok := os.LookupEnv(EnvSnapshot); ok {
		c.Snapshot.Path = v
	}
	if v, ok := os.LookupEnv(EnvSnapshotCompress); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Snapshot.Compress = b
		}
	}
	if v, ok := os.LookupEnv(EnvPrompt); ok {
		c.Prompt = v
	}
}
