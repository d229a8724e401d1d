package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/vowelscan/internal/source"
	"github.com/hyperifyio/vowelscan/internal/vowels"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input   string `yaml:"input" json:"input"`
	Mode    string `yaml:"mode" json:"mode"`
	Verbose bool   `yaml:"verbose" json:"verbose"`

	Source struct {
		Format    string `yaml:"format" json:"format"`
		Normalize string `yaml:"normalize" json:"normalize"`
	} `yaml:"source" json:"source"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc into cfg for any fields that are
// still unset, so flags and environment keep precedence over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if trim(cfg.InputPath) == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if trim(cfg.Mode) == "" && fc.Mode != "" {
		cfg.Mode = fc.Mode
	}
	if trim(cfg.Format) == "" && fc.Source.Format != "" {
		cfg.Format = fc.Source.Format
	}
	if trim(cfg.Normalize) == "" && fc.Source.Normalize != "" {
		cfg.Normalize = fc.Source.Normalize
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ErrNoInput is returned when no input path was configured or entered.
var ErrNoInput = errors.New("config: input path is required")

// ValidateConfig checks that every setting names a known value.
func ValidateConfig(cfg Config) error {
	if trim(cfg.InputPath) == "" {
		return ErrNoInput
	}
	if _, err := vowels.ParseMode(cfg.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := sourceOptions(cfg).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func sourceOptions(cfg Config) source.Options {
	return source.Options{Format: cfg.Format, Normalize: cfg.Normalize}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
