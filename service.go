package mdtopdf

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/floflo0/mdtopdf/internal/fileutil"
)

// Input contains conversion parameters for a single invocation.
type Input struct {
	Markdown        string // Markdown content
	OutputPath      string // Destination PDF path (required)
	SuppressStyling bool   // Skip stylesheet link and syntax highlighting
	Colorscheme     string // Chroma style for code blocks ("" = default)
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	candidates []string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdtopdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithBrowserCandidates overrides the preference-ordered list of browser
// binary names probed on PATH.
func WithBrowserCandidates(names []string) Option {
	return func(s *Service) {
		if len(names) > 0 {
			s.cfg.candidates = names
		}
	}
}

// Service orchestrates the markdown-to-PDF pipeline.
type Service struct {
	cfg serviceConfig

	// Test seams. When nil, Convert builds the production implementations:
	// a goldmark converter for the input's styling options and a rod
	// printer driving a browser located fresh on PATH.
	htmlConverter htmlConverter
	printer       pdfPrinter
	lookPath      func(string) (string, error)
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:    defaultTimeout,
			candidates: defaultBrowserCandidates,
		},
		lookPath: exec.LookPath,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline: render the markdown to HTML, wrap it in
// a document shell, write it to a uniquely named temporary file, and print
// that file to Input.OutputPath with a headless browser. The temporary
// file is removed on both success and failure.
//
// The browser executable is located on PATH for every call; results are
// never cached across conversions.
func (s *Service) Convert(ctx context.Context, input Input) error {
	colorscheme := input.Colorscheme
	if colorscheme == "" {
		colorscheme = DefaultColorscheme
	}
	if err := ValidateColorscheme(colorscheme); err != nil {
		return err
	}

	converter := s.htmlConverter
	if converter == nil {
		converter = newGoldmarkConverter(renderOptions{
			suppressStyling: input.SuppressStyling,
			colorscheme:     colorscheme,
		})
	}

	fragment, err := converter.ToHTML(ctx, input.Markdown)
	if err != nil {
		return fmt.Errorf("converting to HTML: %w", err)
	}

	htmlDoc := buildDocument(fragment, docOptions{
		suppressStyling: input.SuppressStyling,
		colorscheme:     colorscheme,
	})

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlDoc, "html")
	if err != nil {
		return fmt.Errorf("writing temp HTML: %w", err)
	}
	defer cleanup()

	printer := s.printer
	if printer == nil {
		bin, err := locateBrowser(s.cfg.candidates, s.lookPath)
		if err != nil {
			return err
		}
		printer = newRodPrinter(bin, s.cfg.timeout)
	}

	if err := printer.PrintToPDF(ctx, tmpPath, input.OutputPath); err != nil {
		return fmt.Errorf("converting to PDF: %w", err)
	}

	return nil
}
