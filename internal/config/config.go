// Package config loads optional defaults from a .spindlewrit.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spindlewrit/spindlewrit/internal/extract"
	"github.com/spindlewrit/spindlewrit/internal/project"
)

// FileName is the per-directory configuration file.
const FileName = ".spindlewrit.yaml"

// Config is the effective configuration after merging file values over
// defaults.
type Config struct {
	Model        string `yaml:"model"`
	GemmaBaseURL string `yaml:"gemmaBaseURL"`
	TaskstoreURL string `yaml:"taskstoreURL"`
	DefaultType  string `yaml:"defaultType"`
}

// rawConfig is used for YAML unmarshaling to distinguish missing keys from
// explicit empty values.
type rawConfig struct {
	Model        *string `yaml:"model"`
	GemmaBaseURL *string `yaml:"gemmaBaseURL"`
	TaskstoreURL *string `yaml:"taskstoreURL"`
	DefaultType  *string `yaml:"defaultType"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model:        extract.DefaultModel,
		GemmaBaseURL: extract.DefaultBaseURL,
		TaskstoreURL: extract.DefaultTaskstoreURL,
		DefaultType:  string(project.KindPython),
	}
}

// Validate checks that the merged configuration is usable.
func (c *Config) Validate() error {
	if _, err := project.ParseKind(c.DefaultType); err != nil {
		return fmt.Errorf("defaultType: %w", err)
	}
	if c.TaskstoreURL == "" {
		return fmt.Errorf("taskstoreURL must not be empty")
	}
	if c.GemmaBaseURL == "" {
		return fmt.Errorf("gemmaBaseURL must not be empty")
	}
	return nil
}

// Load reads .spindlewrit.yaml from dir. A missing file yields defaults; only
// keys present in the file override them.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return &cfg, nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cfg := Default()
	if raw.Model != nil {
		cfg.Model = *raw.Model
	}
	if raw.GemmaBaseURL != nil {
		cfg.GemmaBaseURL = *raw.GemmaBaseURL
	}
	if raw.TaskstoreURL != nil {
		cfg.TaskstoreURL = *raw.TaskstoreURL
	}
	if raw.DefaultType != nil {
		cfg.DefaultType = *raw.DefaultType
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
