package main

import (
	"io"
	"os"

	mdtopdf "github.com/floflo0/mdtopdf"
	"github.com/floflo0/mdtopdf/internal/config"
)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Stdout     io.Writer
	Stderr     io.Writer
	NewService func(opts ...mdtopdf.Option) Converter
	LoadConfig func(path string) (*config.Config, error)
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewService: func(opts ...mdtopdf.Option) Converter {
			return mdtopdf.New(opts...)
		},
		LoadConfig: config.Load,
	}
}
