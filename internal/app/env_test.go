package app

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadEnvFiles reads KEY=VALUE pairs, strips quotes, ignores comments and
// skips files that do not exist.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv("FOO", "")
	t.Setenv("BAR", "")
	t.Setenv("BAZ", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	content := "\n# sample dotenv file\nFOO=alpha\nexport BAR=\"beta gamma\"\nBAZ='delta'\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := LoadEnvFiles(envPath, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}

	if got := os.Getenv("FOO"); got != "alpha" {
		t.Fatalf("FOO=%q, want alpha", got)
	}
	if got := os.Getenv("BAR"); got != "beta gamma" {
		t.Fatalf("BAR=%q, want beta gamma", got)
	}
	if got := os.Getenv("BAZ"); got != "delta" {
		t.Fatalf("BAZ=%q, want delta", got)
	}
}

// Later files override earlier ones and values already in the environment.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	t.Setenv("K", "preset")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env.a")
	b := filepath.Join(dir, ".env.b")
	if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil {
		t.Fatalf("write b: %v", err)
	}

	if err := LoadEnvFiles(a, b); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("K"); got != "second" {
		t.Fatalf("override order failed: got %q, want second", got)
	}
}

func TestApplyEnvToConfig_FillsUnsetOnly(t *testing.T) {
	t.Setenv(EnvInput, "env.txt")
	t.Setenv(EnvMode, "deduped")
	t.Setenv(EnvFormat, "html")
	t.Setenv(EnvNormalize, "nfd")
	t.Setenv(EnvVerbose, "yes")

	cfg := Config{InputPath: "flag.txt"}
	ApplyEnvToConfig(&cfg)
	if cfg.InputPath != "flag.txt" {
		t.Fatalf("InputPath=%q, explicit value should win", cfg.InputPath)
	}
	if cfg.Mode != "deduped" || cfg.Format != "html" || cfg.Normalize != "nfd" || !cfg.Verbose {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestApplyEnvToConfig_FalseyVerbose(t *testing.T) {
	t.Setenv(EnvVerbose, "off")
	var cfg Config
	ApplyEnvToConfig(&cfg)
	if cfg.Verbose {
		t.Fatalf("VERBOSE=off should leave Verbose false")
	}
}

func TestLoadEnvFiles_NothingToLoad(t *testing.T) {
	if err := LoadEnvFiles("", filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
}
