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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders p as a stroked outline, using Width and Cap.  Curves are
// flattened to within Flatness.  Every segment is capped on both ends, so
// that round caps also produce round joins.  The emit callback receives
// coverage row by row; its slice argument is only valid during the call.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) error {
	if err := checkRange(p.Coords); err != nil {
		return err
	}

	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]

	d := r.Width / 2
	var current, subpath vec.Vec2
	hasSegment := false // whether the current subpath has a drawn segment
	inSubpath := false
	addPiece := func(a, b vec.Vec2) {
		if r.addSegment(a, b, d) {
			hasSegment = true
		}
	}
	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath && !hasSegment {
				r.addDot(current, d)
			}
			current = p.Coords[idx]
			subpath = current
			idx++
			inSubpath = true
			hasSegment = false
		case path.CmdLineTo:
			end := p.Coords[idx]
			idx++
			addPiece(current, end)
			current = end
		case path.CmdQuadTo:
			end := p.Coords[idx+1]
			r.flattenQuadratic(current, p.Coords[idx], end, addPiece)
			idx += 2
			current = end
		case path.CmdCubeTo:
			end := p.Coords[idx+2]
			r.flattenCubic(current, p.Coords[idx], p.Coords[idx+1], end, addPiece)
			idx += 3
			current = end
		case path.CmdClose:
			addPiece(current, subpath)
			current = subpath
		}
	}
	if inSubpath && !hasSegment {
		r.addDot(current, d)
	}

	r.fillOutlines(emit)
	return nil
}

// StrokeLine strokes the single segment from a to b.
func (r *Rasteriser) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) error {
	p := (&path.Data{}).MoveTo(a).LineTo(b)
	return r.Stroke(p, emit)
}

// addSegment appends the outline polygon of the segment a→b.
// It reports whether anything was added.
func (r *Rasteriser) addSegment(a, b vec.Vec2, d float64) bool {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return false
	}
	T := delta.Mul(1 / length)     // unit tangent
	N := vec.Vec2{X: -T.Y, Y: T.X} // unit normal (90° CCW)

	start := len(r.outline)
	switch r.Cap {
	case graphics.LineCapRound:
		r.outline = append(r.outline, a.Add(N.Mul(d)))
		r.addArc(b, d, N, -math.Pi, true)
		r.addArc(a, d, N.Mul(-1), -math.Pi, true)
	case graphics.LineCapSquare:
		a = a.Sub(T.Mul(d))
		b = b.Add(T.Mul(d))
		fallthrough
	default:
		r.outline = append(r.outline,
			a.Add(N.Mul(d)),
			b.Add(N.Mul(d)),
			b.Sub(N.Mul(d)),
			a.Sub(N.Mul(d)),
		)
	}
	r.outlineOffsets = append(r.outlineOffsets, start)
	return true
}

// addDot handles subpaths without orientation.  Only round caps produce
// output, a disc of diameter Width.
func (r *Rasteriser) addDot(center vec.Vec2, d float64) {
	if r.Cap != graphics.LineCapRound {
		return
	}
	start := len(r.outline)
	r.addArc(center, d, vec.Vec2{X: 1, Y: 0}, -2*math.Pi, true)
	r.outlineOffsets = append(r.outlineOffsets, start)
}

// addArc appends points along a circular arc.
// startDir is the unit vector from center to the start of the arc,
// sweep is the sweep angle in radians (positive = CCW).
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	// A chord spanning the angle θ deviates from the circle by at most
	// radius*(1 - cos(θ/2)).  Keep this below the flatness.
	n := 1
	if radius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/radius)
		if step > 0 && !math.IsNaN(step) {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		}
	} else {
		n = 2
	}

	first := 1
	if includeStart {
		first = 0
	}
	dt := sweep / float64(n)
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// fillOutlines fills all collected outline polygons as one compound path.
// The nonzero winding rule ensures that overlapping regions are painted
// once.
func (r *Rasteriser) fillOutlines(emit func(y, xMin int, coverage []float32)) {
	if len(r.outlineOffsets) == 0 {
		return
	}

	r.edges = r.edges[:0]
	r.bboxFirst = true
	for i, start := range r.outlineOffsets {
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 3 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}

	r.fillEdges(emit)
}
