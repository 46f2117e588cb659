package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	path, cleanup, err := WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q should end in .html", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("content = %q, want %q", data, "<html></html>")
	}
}

func TestWriteTempFileUniqueNames(t *testing.T) {
	first, cleanupFirst, err := WriteTempFile("a", "html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanupFirst()

	second, cleanupSecond, err := WriteTempFile("b", "html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanupSecond()

	if first == second {
		t.Errorf("expected unique temp file names, both were %q", first)
	}
}

func TestWriteTempFileCleanup(t *testing.T) {
	path, cleanup, err := WriteTempFile("content", "html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed", path)
	}

	// Cleanup is safe to call twice.
	cleanup()
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid", "html", nil},
		{"empty", "", ErrExtensionEmpty},
		{"slash", "a/b", ErrExtensionPathTraversal},
		{"backslash", `a\b`, ErrExtensionPathTraversal},
		{"null byte", "a\x00b", ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		wantExists bool
		wantIsDir  bool
		wantIsFile bool
	}{
		{"directory", dir, true, true, false},
		{"regular file", file, true, false, true},
		{"missing", filepath.Join(dir, "missing"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exists(tt.path); got != tt.wantExists {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.wantExists)
			}
			if got := IsDir(tt.path); got != tt.wantIsDir {
				t.Errorf("IsDir(%q) = %v, want %v", tt.path, got, tt.wantIsDir)
			}
			if got := FileExists(tt.path); got != tt.wantIsFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantIsFile)
			}
		})
	}
}
