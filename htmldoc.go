package mdtopdf

import "strings"

// stylesheetURL is the GitHub markdown stylesheet linked into the document
// shell when styling is enabled.
const stylesheetURL = "https://cdnjs.cloudflare.com/ajax/libs/github-markdown-css/5.1.0/github-markdown-light.css"

// docOptions configure the HTML document shell.
type docOptions struct {
	suppressStyling bool
	colorscheme     string
}

// buildDocument wraps an HTML fragment in a minimal HTML5 document shell:
// doctype, charset meta, optional stylesheet link, optional inline style
// block carrying the colorscheme background and foreground colors, and a
// body with the markdown-body class.
func buildDocument(body string, opts docOptions) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n")
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	if !opts.suppressStyling {
		b.WriteString(`<link rel="stylesheet" href="` + stylesheetURL + "\">\n")
		if css := schemeStyleBlock(opts.colorscheme); css != "" {
			b.WriteString(css)
		}
	}
	b.WriteString("</head>\n")
	b.WriteString("<body class=\"markdown-body\">\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	return b.String()
}

// schemeStyleBlock returns an inline <style> element carrying the
// colorscheme page colors, or "" when the scheme defines none.
func schemeStyleBlock(colorscheme string) string {
	background, foreground := schemeColors(colorscheme)
	if background == "" && foreground == "" {
		return ""
	}

	var rules []string
	if background != "" {
		rules = append(rules, "background-color: "+background+";")
	}
	if foreground != "" {
		rules = append(rules, "color: "+foreground+";")
	}
	return "<style>\nbody.markdown-body {\n" + indentRules(rules) + "}\n</style>\n"
}

func indentRules(rules []string) string {
	var b strings.Builder
	for _, r := range rules {
		b.WriteString("  " + r + "\n")
	}
	return b.String()
}
