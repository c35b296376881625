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

// Command genpdf generates reference images for the plot tests.
// It stores every static test case as a PDF file and renders the PDF to
// PNG using Ghostscript, for visual comparison with the raster output.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/funcgraph"
	"seehuhn.de/go/funcgraph/output"
	"seehuhn.de/go/funcgraph/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// generatePDF plots tc and stores the display list as a PDF file.
// Animated test cases are stored as their final frame.
func generatePDF(tc testcases.TestCase, pdfPath string) error {
	curves := make(funcgraph.Colored, len(tc.Curves))
	for i, cv := range tc.Curves {
		curves[i].Expr = cv.Expr
		if cv.Color == "" {
			continue
		}
		col, err := funcgraph.ParseColor(cv.Color)
		if err != nil {
			return err
		}
		curves[i].Color = col
	}
	res, err := funcgraph.Plot(curves, &funcgraph.Options{
		Width:      tc.Width,
		Height:     tc.Height,
		Graduation: tc.Graduation,
		Unbounded:  tc.Unbounded,
	})
	if err != nil {
		return err
	}
	return res.Save(&output.File{Path: pdfPath, Format: output.PDF})
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, like the canvas
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
