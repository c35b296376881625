// seehuhn.de/go/funcgraph - plot the graphs of real functions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads plot descriptions from TOML or YAML files.
//
// A file lists the expressions to plot together with the options of the
// command line tool:
//
//	size = 400
//	graduation = 8
//	output = "trig"
//
//	[[function]]
//	expr = "sin(x)"
//	color = "#1c61ed"
//
//	[[function]]
//	expr = "cos(x)"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/funcgraph"
	"seehuhn.de/go/funcgraph/output"
)

// Default values for settings missing from a file.
const (
	DefaultGraduation = 10
	DefaultOutput     = "graph"
)

// File is the contents of a plot description file.
type File struct {
	Size   int `toml:"size" yaml:"size"`
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	Graduation    *int  `toml:"graduation" yaml:"graduation"`
	Animated      bool  `toml:"animated" yaml:"animated"`
	BoundsChecked *bool `toml:"bounds_checked" yaml:"bounds_checked"`
	Legend        bool  `toml:"legend" yaml:"legend"`

	FrameStride int `toml:"frame_stride" yaml:"frame_stride"`
	FrameDelay  int `toml:"frame_delay" yaml:"frame_delay"` // milliseconds
	Loop        int `toml:"loop" yaml:"loop"`

	Output string `toml:"output" yaml:"output"`
	Format string `toml:"format" yaml:"format"`
	Scale  int    `toml:"scale" yaml:"scale"`

	Functions []Function `toml:"function" yaml:"function"`
}

// Function is one expression in a plot description.
type Function struct {
	Expr  string `toml:"expr" yaml:"expr"`
	Color string `toml:"color" yaml:"color"`
}

// Load reads a plot description.  The file format is chosen by the
// extension: .toml, or .yaml and .yml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a plot description.  Ext is the file name extension which
// selects the syntax.  Unknown keys are errors.
func Parse(data []byte, ext string) (*File, error) {
	f := &File{}
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config file type %q", ext)
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) check() error {
	switch {
	case f.Size < 0 || f.Width < 0 || f.Height < 0:
		return fmt.Errorf("negative canvas size")
	case f.Graduation != nil && *f.Graduation < 0:
		return fmt.Errorf("negative graduation %d", *f.Graduation)
	case f.FrameStride < 0:
		return fmt.Errorf("negative frame stride %d", f.FrameStride)
	case f.FrameDelay < 0:
		return fmt.Errorf("negative frame delay %d", f.FrameDelay)
	case f.Scale < 0:
		return fmt.Errorf("negative scale %d", f.Scale)
	}
	opt := f.Options()
	if err := output.CheckScale(opt.Width, opt.Height, f.Scale); err != nil {
		return err
	}
	for i, fn := range f.Functions {
		if strings.TrimSpace(fn.Expr) == "" {
			return fmt.Errorf("function %d: missing expression", i+1)
		}
		if fn.Color != "" {
			if _, err := funcgraph.ParseColor(fn.Color); err != nil {
				return fmt.Errorf("function %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// Options returns the plot options described by the file.  Missing
// values are replaced by defaults: a canvas of funcgraph.DefaultSize,
// DefaultGraduation, and bounds checking enabled.  The bounds_checked key
// maps onto the inverse option, funcgraph.Options.Unbounded.
func (f *File) Options() *funcgraph.Options {
	size := f.Size
	if size == 0 {
		size = funcgraph.DefaultSize
	}
	opt := &funcgraph.Options{
		Width:       size,
		Height:      size,
		Graduation:  DefaultGraduation,
		Animated:    f.Animated,
		Legend:      f.Legend,
		FrameStride: f.FrameStride,
		FrameDelay:  time.Duration(f.FrameDelay) * time.Millisecond,
		Loop:        f.Loop,
	}
	if f.Width > 0 {
		opt.Width = f.Width
	}
	if f.Height > 0 {
		opt.Height = f.Height
	}
	if f.Graduation != nil {
		opt.Graduation = *f.Graduation
	}
	if f.BoundsChecked != nil {
		opt.Unbounded = !*f.BoundsChecked
	}
	return opt
}

// Expressions returns the functions listed in the file.
func (f *File) Expressions() (funcgraph.Colored, error) {
	res := make(funcgraph.Colored, len(f.Functions))
	for i, fn := range f.Functions {
		res[i].Expr = fn.Expr
		if fn.Color == "" {
			continue
		}
		c, err := funcgraph.ParseColor(fn.Color)
		if err != nil {
			return nil, fmt.Errorf("function %d: %w", i+1, err)
		}
		res[i].Color = c
	}
	return res, nil
}

// Destination returns the output file described by the file.
func (f *File) Destination() (*output.File, error) {
	format, err := output.ParseFormat(f.Format)
	if err != nil {
		return nil, err
	}
	name := f.Output
	if name == "" {
		name = DefaultOutput
	}
	return &output.File{Path: name, Format: format, Scale: f.Scale}, nil
}
