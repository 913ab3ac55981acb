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
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mapper maps landmark positions from the model's input space to pixel
// coordinates in the output frame.
//
// InputWidth and InputHeight must be positive.
type Mapper struct {
	Width, Height           int
	InputWidth, InputHeight int
}

// NewMapper returns the mapper for the given configuration.
func NewMapper(cfg *Config) Mapper {
	return Mapper{
		Width:       cfg.Width,
		Height:      cfg.Height,
		InputWidth:  cfg.InputWidth,
		InputHeight: cfg.InputHeight,
	}
}

// Map returns the output pixel for the input position p.  The result is
// clamped to the output frame.
//
// Scaled coordinates are truncated towards negative infinity, not rounded.
func (m Mapper) Map(p vec.Vec2) image.Point {
	x := math.Floor(float64(m.Width) * p.X / float64(m.InputWidth))
	y := math.Floor(float64(m.Height) * p.Y / float64(m.InputHeight))
	return image.Point{
		X: clampCoord(x, m.Width),
		Y: clampCoord(y, m.Height),
	}
}

// Bounds returns the output frame in device coordinates.
func (m Mapper) Bounds() rect.Rect {
	return rect.Rect{URx: float64(m.Width), URy: float64(m.Height)}
}

// clampCoord converts v to an int in the range [0, n-1].  NaN maps to 0.
func clampCoord(v float64, n int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float64(n-1) {
		return max(n-1, 0)
	}
	return int(v)
}
