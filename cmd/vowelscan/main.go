package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/vowelscan/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	f, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if f.version {
		fmt.Println(app.VersionString())
		return
	}

	cfg, err := buildConfig(f)
	if err != nil {
		log.Error().Err(err).Msg("load config")
		os.Exit(1)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

type cliFlags struct {
	inputPath  string
	mode       string
	dedupe     bool
	format     string
	normalize  string
	configPath string
	envFile    string
	verbose    bool
	version    bool

	// set records flags given explicitly on the command line.
	set map[string]bool
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("vowelscan", flag.ContinueOnError)
	fs.StringVar(&f.inputPath, "input", "", "Path to the UTF-8 text file to scan (prompted for when unset)")
	fs.StringVar(&f.mode, "mode", "", "Result mode: raw (ordered, as found) or deduped (lowercased, unique); wins over -dedupe")
	fs.BoolVar(&f.dedupe, "dedupe", false, "Shorthand for -mode deduped")
	fs.StringVar(&f.format, "format", "", "Input format: text or html")
	fs.StringVar(&f.normalize, "normalize", "", "Unicode normalization before scanning: none, nfc or nfd")
	fs.StringVar(&f.configPath, "config", os.Getenv("VOWELSCAN_CONFIG"), "Path to a YAML or JSON config file")
	fs.StringVar(&f.envFile, "env", ".env", "Path to a dotenv file; missing files are ignored")
	fs.BoolVar(&f.verbose, "v", false, "Verbose logging; -v=false overrides VERBOSE")
	fs.BoolVar(&f.version, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	f.set = map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if f.inputPath == "" && fs.NArg() > 0 {
		f.inputPath = fs.Arg(0)
	}
	if f.dedupe {
		if f.mode == "" {
			f.mode = "deduped"
		} else {
			log.Warn().Str("mode", f.mode).Msg("-dedupe ignored because -mode is set")
		}
	}
	return f, nil
}

// buildConfig turns parsed flags into a Config, layering environment, the
// config file and defaults underneath them.
func buildConfig(f cliFlags) (app.Config, error) {
	cfg := app.Config{
		InputPath: f.inputPath,
		Mode:      f.mode,
		Format:    f.format,
		Normalize: f.normalize,
		Verbose:   f.verbose,
	}
	if err := loadConfig(&cfg, f.envFile, f.configPath); err != nil {
		return cfg, err
	}
	if f.set["v"] {
		cfg.Verbose = f.verbose
	}
	return cfg, nil
}

// loadConfig layers settings: flags already in cfg, then environment
// (after dotenv files), then the config file, then defaults.
func loadConfig(cfg *app.Config, envFile, configPath string) error {
	if err := app.LoadEnvFiles(envFile); err != nil {
		return fmt.Errorf("env file: %w", err)
	}
	app.ApplyEnvToConfig(cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("config file %s: %w", configPath, err)
		}
		app.ApplyFileConfig(cfg, fc)
	}
	app.ApplyDefaults(cfg)
	return nil
}

// run prompts on promptOut for the input path when none is configured, then
// scans the file and prints the result to out.
func run(ctx context.Context, cfg app.Config, in io.Reader, out, promptOut io.Writer) error {
	if cfg.InputPath == "" {
		p, err := app.PromptPath(in, promptOut)
		if err != nil {
			return err
		}
		cfg.InputPath = p
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	res, err := a.Run(ctx, out)
	if err != nil {
		return err
	}
	log.Debug().Int("words", len(res.Words)).Stringer("mode", res.Mode).Msg("done")
	return nil
}
