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

package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"seehuhn.de/go/funcgraph"
)

// Stdout is the file name which selects standard output.
const Stdout = "-"

// ErrTerminal is returned when image data would be written to a terminal.
var ErrTerminal = errors.New("refusing to write image data to a terminal")

// File writes plots to a file.
type File struct {
	// Path is the name of the output file.  If the name has no extension,
	// the extension of the format is appended.  The name "-" selects
	// standard output.
	Path string

	// Format is the file format.  If this is Auto, the format is taken
	// from the file name extension, if present.
	Format Format

	Scale int
}

// Name returns the file name and format used to store r.
func (f *File) Name(r *funcgraph.Result) (string, Format) {
	format := f.Format
	if format == Auto {
		if ext, ok := FormatFor(f.Path); ok {
			format = ext
		}
	}
	format = resolve(format, r.Animation != nil)

	name := f.Path
	if name != Stdout && filepath.Ext(name) == "" {
		name += format.Extension()
	}
	return name, format
}

// Encode implements the [funcgraph.Encoder] interface.
func (f *File) Encode(r *funcgraph.Result) (err error) {
	name, format := f.Name(r)

	if name == Stdout {
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return ErrTerminal
		}
		w := &Writer{W: os.Stdout, Format: format, Scale: f.Scale}
		return w.Encode(r)
	}

	if format == PDF {
		return writePDF(name, r, f.Scale)
	}

	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	w := &Writer{W: fd, Format: format, Scale: f.Scale}
	return w.Encode(r)
}

// Buffer keeps the encoded plot in memory.
type Buffer struct {
	bytes.Buffer

	Format Format
	Scale  int
}

// Encode implements the [funcgraph.Encoder] interface.  The previous
// contents of the buffer are discarded.
func (b *Buffer) Encode(r *funcgraph.Result) error {
	b.Reset()
	w := &Writer{W: &b.Buffer, Format: b.Format, Scale: b.Scale}
	return w.Encode(r)
}
