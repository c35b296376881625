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

package funcgraph

import (
	"image"
	"testing"
)

func TestToPixel(t *testing.T) {
	m := NewMapper(500, 500, 0)
	if m.Center != image.Pt(250, 250) || m.Scale != 1 {
		t.Fatalf("unexpected mapper %+v", m)
	}

	cases := []struct {
		x, y   float64
		px, py int
	}{
		{0, 0, 250, 250},
		{1, 1, 251, 249},
		{-250, 0, 0, 250},
		{3.2, 7.7, 253, 242},
		{0.5, 0, 250, 250},  // 250.5 rounds to even
		{1.5, 0, 252, 250},  // 251.5 rounds to even
		{0, -0.5, 250, 250}, // 250.5 rounds to even
		{0, 0.5, 250, 250},  // 249.5 rounds to even
		{0, 300, 250, -50},
	}
	for _, tc := range cases {
		px, py := m.ToPixel(tc.x, tc.y)
		if px != tc.px || py != tc.py {
			t.Errorf("ToPixel(%g, %g) = (%d, %d), want (%d, %d)",
				tc.x, tc.y, px, py, tc.px, tc.py)
		}
		// deterministic
		px2, py2 := m.ToPixel(tc.x, tc.y)
		if px2 != px || py2 != py {
			t.Errorf("ToPixel(%g, %g) is not deterministic", tc.x, tc.y)
		}
	}
}

func TestNewMapperOddSize(t *testing.T) {
	m := NewMapper(501, 77, 0)
	if want := image.Pt(250, 38); m.Center != want {
		t.Errorf("center %v, want %v", m.Center, want)
	}
	if px, py := m.ToPixel(0, 0); px != 250 || py != 38 {
		t.Errorf("origin maps to (%d, %d)", px, py)
	}
}

func TestScaleFor(t *testing.T) {
	cases := []struct {
		center     int
		graduation int
		want       int
	}{
		{250, 0, 1},
		{250, 10, 25},
		{250, 3, 83},
		{250, 1000, 1},
		{5, 2, 2}, // 2.5 rounds to even
		{7, 2, 4}, // 3.5 rounds to even
		{250, -1, 1},
	}
	for _, tc := range cases {
		got := ScaleFor(image.Pt(tc.center, tc.center), tc.graduation)
		if got != tc.want {
			t.Errorf("ScaleFor(%d, %d) = %d, want %d", tc.center, tc.graduation, got, tc.want)
		}
	}
}

func TestDomain(t *testing.T) {
	m := NewMapper(500, 500, 10)
	if got := m.Domain(50); got != 2 {
		t.Errorf("Domain(50) = %g, want 2", got)
	}
	if got := m.Domain(-25); got != -1 {
		t.Errorf("Domain(-25) = %g, want -1", got)
	}

	var zero Mapper
	if got := zero.Domain(7); got != 7 {
		t.Errorf("zero mapper: Domain(7) = %g", got)
	}
}
