package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/vowelscan/internal/source"
	"github.com/hyperifyio/vowelscan/internal/vowels"
)

// App scans one configured input file for vowel words.
type App struct {
	cfg  Config
	mode vowels.Mode
}

// Result is the outcome of a single scan.
type Result struct {
	Mode  vowels.Mode
	Words []string
}

// New validates cfg and returns an App ready to run.
func New(cfg Config) (*App, error) {
	ApplyDefaults(&cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	mode, err := vowels.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, mode: mode}, nil
}

// Run loads the input, scans it and writes the words to out using Go's
// default slice formatting, e.g. "[a io]".
func (a *App) Run(ctx context.Context, out io.Writer) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	log.Debug().
		Str("input", a.cfg.InputPath).
		Str("format", a.cfg.Format).
		Str("normalize", a.cfg.Normalize).
		Stringer("mode", a.mode).
		Msg("loading input")

	text, err := source.Load(a.cfg.InputPath, sourceOptions(a.cfg))
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Mode: a.mode, Words: vowels.Extract(text, a.mode)}
	log.Debug().Int("chars", len(text)).Int("words", len(res.Words)).Msg("scan complete")

	if _, err := fmt.Fprintln(out, res.Words); err != nil {
		return res, fmt.Errorf("write result: %w", err)
	}
	return res, nil
}
