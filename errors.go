package mdtopdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownColorscheme = errors.New("unknown colorscheme")
	ErrHTMLConversion     = errors.New("HTML conversion failed")
	ErrPDFGeneration      = errors.New("PDF generation failed")
	ErrBrowserConnect     = errors.New("failed to connect to browser")
	ErrPageCreate         = errors.New("failed to create browser page")
	ErrPageLoad           = errors.New("failed to load page")

	// ErrExecutableNotFound is returned when no browser candidate
	// resolves on the executable search path.
	ErrExecutableNotFound = errors.New("could not find any chromium executable")
)
