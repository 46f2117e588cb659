package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdtopdf "github.com/floflo0/mdtopdf"
	"github.com/floflo0/mdtopdf/internal/config"
	"github.com/floflo0/mdtopdf/internal/fileutil"
)

// Sentinel errors for argument resolution and validation.
var (
	ErrMissingArgument  = errors.New("expected one argument")
	ErrDuplicateFlag    = errors.New("may only be given once")
	ErrUnknownArgument  = errors.New("unrecognized argument")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrMissingInput     = errors.New("the following arguments are required: INPUT_FILE")
	ErrNotFound         = errors.New("No such file or directory")
	ErrIsDirectory      = errors.New("Is a directory")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input mdtopdf.Input) error
}

// resolvedConfig is the validated result of scanning the argument tokens.
// It is constructed once per invocation and never mutated afterwards.
type resolvedConfig struct {
	inputPath            string
	outputPath           string
	suppressStyling      bool
	colorscheme          string
	helpRequested        bool
	versionRequested     bool
	listSchemesRequested bool
}

// resolveArgs scans the raw argument tokens (excluding the program name)
// left to right and produces a resolvedConfig. Defaults seed the styling
// fields before scanning; flags always win.
//
// Help, version, and list-colorschemes short-circuit all file validation,
// in that priority order. Later duplicates of -o and -c are errors, not
// overwrites.
func resolveArgs(tokens []string, defaults *config.Config) (*resolvedConfig, error) {
	if defaults == nil {
		defaults = config.DefaultConfig()
	}

	cfg := &resolvedConfig{
		suppressStyling: defaults.NoCSS,
		colorscheme:     defaults.Colorscheme,
	}
	if cfg.colorscheme == "" {
		cfg.colorscheme = mdtopdf.DefaultColorscheme
	}

	var outputSet, colorschemeSet bool

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "-h", "--help":
			cfg.helpRequested = true

		case "-v", "--version":
			cfg.versionRequested = true

		case "-o", "--output":
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("argument -o/--output: %w", ErrMissingArgument)
			}
			if outputSet {
				return nil, fmt.Errorf("argument -o/--output: %w", ErrDuplicateFlag)
			}
			i++
			cfg.outputPath = tokens[i]
			outputSet = true

		case "--no-css":
			cfg.suppressStyling = true

		case "-c", "--colorscheme":
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("argument -c/--colorscheme: %w", ErrMissingArgument)
			}
			if colorschemeSet {
				return nil, fmt.Errorf("argument -c/--colorscheme: %w", ErrDuplicateFlag)
			}
			i++
			if !mdtopdf.IsColorscheme(tokens[i]) {
				return nil, fmt.Errorf("argument -c/--colorscheme: %w: %q", mdtopdf.ErrUnknownColorscheme, tokens[i])
			}
			cfg.colorscheme = tokens[i]
			colorschemeSet = true

		case "--list-colorschemes":
			cfg.listSchemesRequested = true

		default:
			if strings.HasPrefix(tok, "-") {
				return nil, fmt.Errorf("%w: %q", ErrUnknownArgument, tok)
			}
			if cfg.inputPath != "" {
				return nil, fmt.Errorf("%w: %q", ErrTooManyArguments, tok)
			}
			cfg.inputPath = tok
		}
	}

	// Short-circuit flags win over all file validation.
	if cfg.helpRequested || cfg.versionRequested || cfg.listSchemesRequested {
		return cfg, nil
	}

	if cfg.inputPath == "" {
		return nil, ErrMissingInput
	}

	if cfg.outputPath == "" {
		cfg.outputPath = derivePDFPath(cfg.inputPath)
	}

	if fileutil.IsDir(cfg.inputPath) {
		return nil, fmt.Errorf("can't open %q: %w", cfg.inputPath, ErrIsDirectory)
	}
	if !fileutil.Exists(cfg.inputPath) {
		return nil, fmt.Errorf("can't open %q: %w", cfg.inputPath, ErrNotFound)
	}
	if fileutil.IsDir(cfg.outputPath) {
		return nil, fmt.Errorf("can't save %q: %w", cfg.outputPath, ErrIsDirectory)
	}

	return cfg, nil
}

// derivePDFPath derives the output path from the input path: a trailing
// markdown extension is stripped (case-sensitive) and .pdf is appended.
func derivePDFPath(inputPath string) string {
	for _, ext := range []string{".md", ".markdown"} {
		if strings.HasSuffix(inputPath, ext) {
			return strings.TrimSuffix(inputPath, ext) + ".pdf"
		}
	}
	return inputPath + ".pdf"
}

// progName returns the base name of the invoked program for diagnostics.
func progName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "mdtopdf"
	}
	return filepath.Base(args[0])
}

// run resolves arguments, handles short-circuit flags, and delegates the
// conversion to the service built from deps.
func run(args []string, deps *Dependencies) error {
	prog := progName(args)

	defaults, err := deps.LoadConfig("")
	if err != nil {
		return err
	}

	var tokens []string
	if len(args) > 1 {
		tokens = args[1:]
	}

	cfg, err := resolveArgs(tokens, defaults)
	if err != nil {
		return err
	}

	// Fixed priority order: help, then version, then list.
	switch {
	case cfg.helpRequested:
		printUsage(deps.Stdout, prog)
		return nil
	case cfg.versionRequested:
		fmt.Fprintf(deps.Stdout, "%s %s\n", prog, Version)
		return nil
	case cfg.listSchemesRequested:
		fmt.Fprintln(deps.Stdout, strings.Join(mdtopdf.Colorschemes(), "\n"))
		return nil
	}

	// A colorscheme given on the command line was validated during the
	// scan; one seeded from the config file is only checked here, once it
	// is certain to be used.
	if err := mdtopdf.ValidateColorscheme(cfg.colorscheme); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	content, err := os.ReadFile(cfg.inputPath) // #nosec G304 -- path validated by resolveArgs
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	service := deps.NewService(mdtopdf.WithBrowserCandidates(defaults.Browsers))

	return service.Convert(context.Background(), mdtopdf.Input{
		Markdown:        string(content),
		OutputPath:      cfg.outputPath,
		SuppressStyling: cfg.suppressStyling,
		Colorscheme:     cfg.colorscheme,
	})
}
