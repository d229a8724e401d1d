package app

// Config holds runtime configuration for the application.
type Config struct {
	// InputPath is the file to scan. Empty means prompt for it.
	InputPath string

	// Mode is "raw" or "deduped".
	Mode string
	// Format is the input format: "text" or "html".
	Format string
	// Normalize is the Unicode normalization applied before scanning:
	// "none", "nfc" or "nfd".
	Normalize string

	Verbose bool
}

// Defaults applied after flags, environment and config file.
const (
	DefaultMode      = "raw"
	DefaultFormat    = "text"
	DefaultNormalize = "none"
)

// ApplyDefaults fills any still-empty settings with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if trim(cfg.Mode) == "" {
		cfg.Mode = DefaultMode
	}
	if trim(cfg.Format) == "" {
		cfg.Format = DefaultFormat
	}
	if trim(cfg.Normalize) == "" {
		cfg.Normalize = DefaultNormalize
	}
}
