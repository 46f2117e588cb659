package mdtopdf

import (
	"errors"
	"testing"
)

// fakeLookPath resolves only the names in found.
func fakeLookPath(found map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := found[name]; ok {
			return path, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestLocateBrowser(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		found      map[string]string
		want       string
		wantErr    bool
	}{
		{
			name:       "first candidate wins",
			candidates: []string{"chromium", "google-chrome"},
			found:      map[string]string{"chromium": "/usr/bin/chromium", "google-chrome": "/usr/bin/google-chrome"},
			want:       "/usr/bin/chromium",
		},
		{
			name:       "falls through to later candidate",
			candidates: []string{"chromium", "google-chrome"},
			found:      map[string]string{"google-chrome": "/usr/bin/google-chrome"},
			want:       "/usr/bin/google-chrome",
		},
		{
			name:       "none resolve",
			candidates: []string{"chromium", "google-chrome"},
			found:      map[string]string{},
			wantErr:    true,
		},
		{
			name:       "empty candidate list",
			candidates: nil,
			found:      map[string]string{"chromium": "/usr/bin/chromium"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locateBrowser(tt.candidates, fakeLookPath(tt.found))

			if tt.wantErr {
				if !errors.Is(err, ErrExecutableNotFound) {
					t.Fatalf("expected ErrExecutableNotFound, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("locateBrowser() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The search path must be consulted fresh on every call: environment
// changes between calls within the same process have to be observed.
func TestLocateBrowserNoCaching(t *testing.T) {
	found := map[string]string{}
	lookPath := fakeLookPath(found)
	candidates := []string{"chromium"}

	if _, err := locateBrowser(candidates, lookPath); !errors.Is(err, ErrExecutableNotFound) {
		t.Fatalf("expected ErrExecutableNotFound, got %v", err)
	}

	found["chromium"] = "/usr/bin/chromium"

	got, err := locateBrowser(candidates, lookPath)
	if err != nil {
		t.Fatalf("expected lookup to observe environment change, got error: %v", err)
	}
	if got != "/usr/bin/chromium" {
		t.Errorf("locateBrowser() = %q, want /usr/bin/chromium", got)
	}

	delete(found, "chromium")

	if _, err := locateBrowser(candidates, lookPath); !errors.Is(err, ErrExecutableNotFound) {
		t.Fatalf("expected removal to be observed, got %v", err)
	}
}
