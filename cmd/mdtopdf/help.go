package main

import (
	"fmt"
	"io"
)

// printUsage prints the CLI usage message.
func printUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS] [INPUT_FILE]\n", prog)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to pdf using a headless chromium browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  INPUT_FILE                The markdown file to convert")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help                Print this help message and exit")
	fmt.Fprintln(w, "  -v, --version             Print the version number and exit")
	fmt.Fprintln(w, "  -o, --output <file>       Where to save the pdf (default: INPUT_FILE with .pdf)")
	fmt.Fprintln(w, "  -c, --colorscheme <name>  Colorscheme used to color code blocks (default: github-dark)")
	fmt.Fprintln(w, "      --no-css              Use the default appearance of the browser")
	fmt.Fprintln(w, "      --list-colorschemes   List all the available colorschemes and exit")
}
