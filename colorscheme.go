package mdtopdf

import (
	"fmt"
	"slices"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultColorscheme is used when no colorscheme is specified.
const DefaultColorscheme = "github-dark"

// Colorschemes returns the sorted names of all known colorschemes.
// The set is backed by the chroma style registry.
func Colorschemes() []string {
	return styles.Names()
}

// IsColorscheme reports whether name belongs to the known colorscheme set.
func IsColorscheme(name string) bool {
	return slices.Contains(styles.Names(), name)
}

// ValidateColorscheme returns ErrUnknownColorscheme if name is not a known
// colorscheme.
func ValidateColorscheme(name string) error {
	if !IsColorscheme(name) {
		return fmt.Errorf("%w: %q", ErrUnknownColorscheme, name)
	}
	return nil
}

// schemeColors returns the page background and foreground colors of a
// colorscheme as CSS hex strings. Empty strings mean the scheme does not
// define the corresponding color.
func schemeColors(name string) (background, foreground string) {
	entry := styles.Get(name).Get(chroma.Background)
	if entry.Background.IsSet() {
		background = entry.Background.String()
	}
	if entry.Colour.IsSet() {
		foreground = entry.Colour.String()
	}
	return background, foreground
}
