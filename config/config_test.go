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

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/funcgraph"
	"seehuhn.de/go/funcgraph/output"
)

func TestLoadTOML(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "trig.toml"))
	require.NoError(t, err)

	opt := f.Options()
	assert.Equal(t, 400, opt.Width)
	assert.Equal(t, 400, opt.Height)
	assert.Equal(t, 8, opt.Graduation)
	assert.True(t, opt.Legend)
	assert.False(t, opt.Unbounded)
	assert.False(t, opt.Animated)

	exprs, err := f.Expressions()
	require.NoError(t, err)
	require.Len(t, exprs, 3)
	assert.Equal(t, "sin(x)", exprs[0].Expr)
	assert.Equal(t, color.RGBA{0x1c, 0x61, 0xed, 0xff}, exprs[0].Color)
	assert.Nil(t, exprs[1].Color)
	assert.Equal(t, color.RGBA{0xff, 0x88, 0x11, 0xff}, exprs[2].Color)

	dst, err := f.Destination()
	require.NoError(t, err)
	assert.Equal(t, "trig", dst.Path)
	assert.Equal(t, output.PNG, dst.Format)
	assert.Equal(t, 2, dst.Scale)
}

func TestLoadYAML(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "animated.yaml"))
	require.NoError(t, err)

	opt := f.Options()
	assert.Equal(t, 300, opt.Width)
	assert.Equal(t, 200, opt.Height)
	assert.Equal(t, 0, opt.Graduation)
	assert.True(t, opt.Animated)
	assert.True(t, opt.Unbounded)
	assert.Equal(t, 3, opt.FrameStride)
	assert.Equal(t, 40*time.Millisecond, opt.FrameDelay)
	assert.Equal(t, -1, opt.Loop)

	exprs, err := f.Expressions()
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	assert.Equal(t, "-x", exprs[1].Expr)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, exprs[1].Color)

	dst, err := f.Destination()
	require.NoError(t, err)
	assert.Equal(t, "anim.gif", dst.Path)
	assert.Equal(t, output.Auto, dst.Format)
}

func TestDefaults(t *testing.T) {
	f, err := Parse([]byte(`[[function]]
expr = "x"
`), ".toml")
	require.NoError(t, err)

	opt := f.Options()
	assert.Equal(t, funcgraph.DefaultSize, opt.Width)
	assert.Equal(t, funcgraph.DefaultSize, opt.Height)
	assert.Equal(t, DefaultGraduation, opt.Graduation)
	assert.False(t, opt.Unbounded)
	assert.Zero(t, opt.FrameStride)
	assert.Zero(t, opt.FrameDelay)

	dst, err := f.Destination()
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, dst.Path)
}

func TestSizeOverride(t *testing.T) {
	f, err := Parse([]byte("size: 100\nheight: 50\n"), ".yml")
	require.NoError(t, err)
	opt := f.Options()
	assert.Equal(t, 100, opt.Width)
	assert.Equal(t, 50, opt.Height)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		ext  string
	}{
		{"unknown key toml", "sizee = 3\n", ".toml"},
		{"unknown key yaml", "sizee: 3\n", ".yaml"},
		{"syntax toml", "size = \n", ".toml"},
		{"syntax yaml", "size: [\n", ".yaml"},
		{"negative size", "size = -1\n", ".toml"},
		{"negative graduation", "graduation: -5\n", ".yaml"},
		{"negative stride", "frame_stride = -1\n", ".toml"},
		{"bad color", "[[function]]\nexpr = \"x\"\ncolor = \"red\"\n", ".toml"},
		{"empty expression", "function:\n  - expr: \"  \"\n", ".yaml"},
		{"scale too large", "size = 5000\nscale = 200\n", ".toml"},
		{"scaled width too large", "width: 2000\nheight: 100\nscale: 9\n", ".yaml"},
		{"unknown extension", "size = 3\n", ".ini"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.ext)
			assert.Error(t, err)
		})
	}
}

func TestBadFormat(t *testing.T) {
	f, err := Parse([]byte("format = \"jpeg\"\n"), ".toml")
	require.NoError(t, err)
	_, err = f.Destination()
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestPlotFromFile makes sure that a loaded description can be plotted.
func TestPlotFromFile(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "trig.toml"))
	require.NoError(t, err)
	exprs, err := f.Expressions()
	require.NoError(t, err)

	res, err := funcgraph.Plot(exprs, f.Options())
	require.NoError(t, err)
	assert.Equal(t, 400, res.Canvas.Rect.Dx())
	require.Len(t, res.Curves, 3)
	assert.Equal(t, color.RGBA{0x1c, 0x61, 0xed, 0xff}, res.Curves[0].Color)
}
