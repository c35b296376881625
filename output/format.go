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

// Package output stores plots in image files or in memory.
//
// Static plots can be written as PNG, GIF, BMP, TIFF or PDF.  Animated
// plots can only be written as GIF.  The PDF output is a vector image,
// built from the display list of the plot.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output file format.
type Format int

// The supported formats.  The zero value selects PNG for static plots and
// GIF for animations.
const (
	Auto Format = iota
	PNG
	GIF
	BMP
	TIFF
	PDF
)

var formatNames = map[Format]string{
	PNG:  "png",
	GIF:  "gif",
	BMP:  "bmp",
	TIFF: "tiff",
	PDF:  "pdf",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	if f == Auto {
		return "auto"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file name extension for f, including the dot.
func (f Format) Extension() string {
	if name, ok := formatNames[f]; ok {
		return "." + name
	}
	return ""
}

// ParseFormat converts a format name, like "png" or "PDF", to a Format.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	switch s {
	case "", "auto":
		return Auto, nil
	case "tif":
		return TIFF, nil
	}
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return Auto, fmt.Errorf("unknown output format %q", s)
}

// FormatFor returns the format implied by the extension of a file name.
// The second return value is false if the extension is missing or
// unknown.
func FormatFor(name string) (Format, bool) {
	ext := filepath.Ext(name)
	if ext == "" {
		return Auto, false
	}
	f, err := ParseFormat(ext)
	if err != nil || f == Auto {
		return Auto, false
	}
	return f, true
}

// ErrAnimation is returned when an animated plot is written in a format
// other than GIF.
var ErrAnimation = errors.New("animations can only be stored as GIF")

// resolve replaces Auto by the default format for the result.
func resolve(f Format, animated bool) Format {
	if f != Auto {
		return f
	}
	if animated {
		return GIF
	}
	return PNG
}
