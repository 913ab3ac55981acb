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

// Package topology lists which landmarks of a face model are joined by
// polylines when an overlay is drawn.
//
// The tables in this package are plain data.  A different keypoint schema
// can be supported by adding another table, as long as the indices match
// the landmark model which produced the tensor.
package topology

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Group is an ordered list of landmark indices forming one polyline.
// Consecutive pairs of indices are the segments to draw.  A group which
// repeats its first index at the end describes a closed loop.
type Group struct {
	Name    string // lowercase a-z and _ only
	Indices []int
}

// Segments returns the number of line segments in the group.
func (g Group) Segments() int {
	if len(g.Indices) < 2 {
		return 0
	}
	return len(g.Indices) - 1
}

// Closed reports whether the polyline ends where it starts.
func (g Group) Closed() bool {
	n := len(g.Indices)
	return n > 2 && g.Indices[0] == g.Indices[n-1]
}

// Path returns the polyline of the group, with vertices taken from pts.
// The caller must make sure that every index of the group is a valid index
// into pts.  Closed groups are emitted as an open chain which revisits the
// first vertex, so that every segment is produced by a LineTo command.
func (g Group) Path(pts []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i, idx := range g.Indices {
			buf[0] = pts[idx]
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
	}
}

// Validate checks that every group has at least two entries and that all
// indices refer to one of n landmarks.
func Validate(groups []Group, n int) error {
	for _, g := range groups {
		if len(g.Indices) < 2 {
			return fmt.Errorf("topology group %q: need at least 2 indices, got %d",
				g.Name, len(g.Indices))
		}
		for _, idx := range g.Indices {
			if idx < 0 || idx >= n {
				return fmt.Errorf("topology group %q: index %d out of range [0, %d)",
					g.Name, idx, n)
			}
		}
	}
	return nil
}
