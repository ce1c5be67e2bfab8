// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"aligner/internal/cli"
)

// File mirrors the subset of options a defaults file may supply. Pointers
// distinguish "absent" from zero values.
type File struct {
	Mode        string `yaml:"mode,omitempty"`
	NumBest     *int   `yaml:"num_best,omitempty"`
	MaxDistance *int   `yaml:"max_distance,omitempty"`
	Format      string `yaml:"format,omitempty"`
	Width       *int   `yaml:"width,omitempty"`
	Output      string `yaml:"output,omitempty"`
}

// Load reads and strictly decodes a YAML defaults file; unknown keys are
// config errors, not typos to ignore.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &f, nil
}

// Apply fills opts fields whose flags the user did not set explicitly;
// changed reports whether a flag was set on the command line.
func (f *File) Apply(opts *cli.Options, changed func(name string) bool) {
	if f.Mode != "" && !changed("mode") {
		opts.Mode = f.Mode
	}
	if f.NumBest != nil && !changed("num-best") {
		opts.NumBest = *f.NumBest
	}
	if f.MaxDistance != nil && !changed("max-distance") {
		opts.MaxDistance = *f.MaxDistance
	}
	if f.Format != "" && !changed("format") {
		opts.Format = f.Format
	}
	if f.Width != nil && !changed("width") {
		opts.Width = *f.Width
	}
	if f.Output != "" && !changed("output") {
		opts.Output = f.Output
	}
}
