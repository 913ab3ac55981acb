// seehuhn.de/go/landmarks - face landmark overlays for video frames
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

package landmarks

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// lineSegment is a segment between two pixel positions.
type lineSegment struct {
	x0, y0, x1, y1 int
}

// Stroke draws the path as a chain of StampLine calls, one per segment,
// and returns the number of segments drawn.  Vertices are pixel positions;
// fractional coordinates are truncated towards negative infinity.
//
// Unlike a true stroke, line joins and caps are simply the overlapping
// squares stamped at the vertices.  Zero-length segments are kept and
// produce a single square.  Curves are not flattened: a quadratic or cubic
// segment is drawn as the chord to its end point.
func (r *Rasterizer) Stroke(p path.Path, halfWidth int, c color.RGBA) int {
	r.collectSegments(p)
	for _, s := range r.segs {
		r.StampLine(s.x0, s.y0, s.x1, s.y1, halfWidth, c)
	}
	return len(r.segs)
}

// collectSegments walks the path and stores its pixel segments in r.segs.
// Commands before the first MoveTo are skipped.
func (r *Rasterizer) collectSegments(p path.Path) {
	r.segs = r.segs[:0]

	var current, subpathStart vec.Vec2
	inSubpath := false

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpathStart = current
			inSubpath = true

		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			end := pts[len(pts)-1]
			r.addSegment(current, end)
			current = end

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if current != subpathStart {
				r.addSegment(current, subpathStart)
			}
			current = subpathStart
			inSubpath = false
		}
	}
}

// addSegment appends the segment from a to b to r.segs.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	r.segs = append(r.segs, lineSegment{
		x0: pixel(a.X), y0: pixel(a.Y),
		x1: pixel(b.X), y1: pixel(b.Y),
	})
}

// pixel converts a device coordinate to the index of the pixel containing it.
func pixel(v float64) int {
	return int(math.Floor(v))
}
