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

// Command export renders every test case into the gallery directory and
// writes a JSON summary of the scenarios.  Run from the module root
// directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/funcgraph"
	"seehuhn.de/go/funcgraph/output"
	"seehuhn.de/go/funcgraph/testcases"
)

const galleryDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(galleryDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := export(name, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string      `json:"name"`
	File       string      `json:"file"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Graduation int         `json:"graduation"`
	Animated   bool        `json:"animated,omitempty"`
	Frames     int         `json:"frames,omitempty"`
	Unbounded  bool        `json:"unbounded,omitempty"`
	Curves     []jsonCurve `json:"curves"`
}

type jsonCurve struct {
	Expr       string `json:"expr"`
	Color      string `json:"color"`
	Drawn      int    `json:"drawn"`
	Failed     int    `json:"failed,omitempty"`
	OutOfRange int    `json:"out_of_range,omitempty"`
	Clipped    int    `json:"clipped,omitempty"`
	Gaps       int    `json:"gaps,omitempty"`
	Jumps      int    `json:"jumps,omitempty"`
	Errors     int    `json:"errors,omitempty"`
}

func export(name string, tc testcases.TestCase) (jsonTestCase, error) {
	exprs, opt, err := plotArgs(tc)
	if err != nil {
		return jsonTestCase{}, err
	}
	res, err := funcgraph.Plot(exprs, opt)
	if err != nil {
		return jsonTestCase{}, err
	}
	dst := &output.File{Path: filepath.Join(galleryDir, name)}
	if err := res.Save(dst); err != nil {
		return jsonTestCase{}, err
	}
	fileName, _ := dst.Name(res)

	jtc := jsonTestCase{
		Name:       name,
		File:       filepath.Base(fileName),
		Width:      tc.Width,
		Height:     tc.Height,
		Graduation: tc.Graduation,
		Animated:   tc.Animated,
		Unbounded:  tc.Unbounded,
	}
	if res.Animation != nil {
		jtc.Frames = len(res.Animation.Frames)
	}
	for _, cs := range res.Curves {
		jtc.Curves = append(jtc.Curves, jsonCurve{
			Expr:    cs.Expr,
			Color:   funcgraph.FormatColor(cs.Color),
			Drawn:      cs.Drawn,
			Failed:     cs.Failed,
			OutOfRange: cs.OutOfRange,
			Clipped:    cs.Clipped,
			Gaps:       cs.Gaps,
			Jumps:      cs.Jumps,
			Errors:     cs.Errors,
		})
	}
	return jtc, nil
}

func plotArgs(tc testcases.TestCase) (funcgraph.Colored, *funcgraph.Options, error) {
	curves := make(funcgraph.Colored, len(tc.Curves))
	for i, cv := range tc.Curves {
		curves[i].Expr = cv.Expr
		if cv.Color == "" {
			continue
		}
		col, err := funcgraph.ParseColor(cv.Color)
		if err != nil {
			return nil, nil, err
		}
		curves[i].Color = col
	}
	opt := &funcgraph.Options{
		Width:      tc.Width,
		Height:     tc.Height,
		Graduation: tc.Graduation,
		Animated:   tc.Animated,
		Unbounded:  tc.Unbounded,
		Legend:     tc.Legend,
	}
	return curves, opt, nil
}
