// Package mdtopdf converts Markdown documents to PDF using a headless
// Chromium browser found on the system.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := mdtopdf.New()
//	err := svc.Convert(ctx, mdtopdf.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    OutputPath: "hello.pdf",
//	})
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  2. Wrapping the fragment in a minimal HTML document shell
//  3. PDF rendering via a headless browser located on PATH (go-rod)
//
// The intermediate HTML is written to a uniquely named temporary file
// which is removed on both success and failure.
//
// # Colorschemes
//
// Code blocks are highlighted with a chroma style. Colorschemes lists the
// available names; the default is github-dark. Styling can be disabled
// entirely with Input.SuppressStyling, in which case no stylesheet is
// linked and code blocks are left unhighlighted.
//
// # Browser Requirements
//
// PDF generation requires a Chromium-based browser on PATH. The browser is
// located fresh on every conversion so that PATH changes between calls are
// observed. Set ROD_NO_SANDBOX=1 when running in Docker or CI.
package mdtopdf
