package app

import (
	"os"
	"strings"
)

// Environment variables read by ApplyEnvToConfig.
const (
	EnvInput     = "VOWELSCAN_INPUT"
	EnvMode      = "VOWELSCAN_MODE"
	EnvFormat    = "VOWELSCAN_FORMAT"
	EnvNormalize = "VOWELSCAN_NORMALIZE"
	EnvVerbose   = "VERBOSE"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	setString := func(dst *string, envKey string) {
		if trim(*dst) != "" {
			return
		}
		if v := trim(os.Getenv(envKey)); v != "" {
			*dst = v
		}
	}
	setString(&cfg.InputPath, EnvInput)
	setString(&cfg.Mode, EnvMode)
	setString(&cfg.Format, EnvFormat)
	setString(&cfg.Normalize, EnvNormalize)

	if !cfg.Verbose {
		switch strings.ToLower(trim(os.Getenv(EnvVerbose))) {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		}
	}
}
