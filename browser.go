package mdtopdf

import "os/exec"

// defaultBrowserCandidates is the preference-ordered list of browser binary
// names probed on PATH.
var defaultBrowserCandidates = []string{
	"chromium",
	"chromium-browser",
	"google-chrome-stable",
	"google-chrome",
	"chrome",
	"brave-browser",
}

// locateBrowser returns the path of the first candidate resolvable on the
// current executable search path, or ErrExecutableNotFound if none resolve.
//
// The search path is consulted fresh on every call. Callers must not cache
// the result across invocations: the environment can change between calls
// within the same process lifetime, and that change must be observed.
func locateBrowser(candidates []string, lookPath func(string) (string, error)) (string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrExecutableNotFound
}
