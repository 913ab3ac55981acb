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
	"image/color"

	"seehuhn.de/go/geom/rect"
)

// Rasterizer draws squares and Bresenham lines into a packed RGBA pixel
// buffer.  Pixels are stored row by row, four bytes per pixel, without
// padding between rows.
//
// All drawing is clipped to Clip.  Pixels outside the clip rectangle are
// silently skipped; drawing never fails.
//
// Create one instance and reuse it for multiple frames.  Internal buffers
// grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.  The clip rectangle is always
	// intersected with the frame.
	Clip rect.Rect

	pix    []byte
	width  int
	height int
	stride int

	segs []lineSegment // flattened segments of the current stroke
}

// NewRasterizer returns a Rasterizer which draws into pix.  The slice must
// hold at least width*height*4 bytes.
func NewRasterizer(pix []byte, width, height int) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(pix, width, height)
	return r
}

// Reset points the Rasterizer to a new pixel buffer and resets the clip
// rectangle to the full frame, preserving internal buffer capacity.
func (r *Rasterizer) Reset(pix []byte, width, height int) {
	r.pix = pix[:width*height*4]
	r.width = width
	r.height = height
	r.stride = 4 * width
	r.Clip = rect.Rect{URx: float64(width), URy: float64(height)}
	r.segs = r.segs[:0]
}

// Clear sets all pixels to transparent black.
func (r *Rasterizer) Clear() {
	clear(r.pix)
}

// Bounds returns the frame rectangle.
func (r *Rasterizer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Image returns an image which shares its pixels with the Rasterizer.
func (r *Rasterizer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    r.pix,
		Stride: r.stride,
		Rect:   r.Bounds(),
	}
}

// At returns the color of the pixel (x, y).  Pixels outside the frame
// are transparent.
func (r *Rasterizer) At(x, y int) color.RGBA {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return color.RGBA{}
	}
	i := y*r.stride + 4*x
	return color.RGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}
}

// StampPoint fills the square [cx-radius, cx+radius] × [cy-radius, cy+radius]
// with color c.
func (r *Rasterizer) StampPoint(cx, cy, radius int, c color.RGBA) {
	r.fillRect(cx-radius, cy-radius, cx+radius+1, cy+radius+1, c)
}

// StampLine draws a line from (x0, y0) to (x1, y1) by walking the pixels
// chosen by Bresenham's algorithm and stamping a square of the given
// radius at each of them.  Both end points are included.
func (r *Rasterizer) StampLine(x0, y0, x1, y1, halfWidth int, c color.RGBA) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		r.StampPoint(x0, y0, halfWidth, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			e += dx
			y0 += sy
		}
	}
}

// fillRect sets all pixels in [x0, x1) × [y0, y1) to c, after clipping
// the rectangle to Clip and to the frame.
// This is the only place where pixels are written.
func (r *Rasterizer) fillRect(x0, y0, x1, y1 int, c color.RGBA) {
	xMin, xMax, yMin, yMax := r.clipBounds()
	x0 = max(x0, xMin)
	x1 = min(x1, xMax)
	y0 = max(y0, yMin)
	y1 = min(y1, yMax)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for y := y0; y < y1; y++ {
		row := r.pix[y*r.stride+4*x0 : y*r.stride+4*x1]
		for i := 0; i < len(row); i += 4 {
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

// clipBounds returns the integer clip rectangle, intersected with the frame.
func (r *Rasterizer) clipBounds() (xMin, xMax, yMin, yMax int) {
	xMin = max(int(r.Clip.LLx), 0)
	xMax = min(int(r.Clip.URx), r.width)
	yMin = max(int(r.Clip.LLy), 0)
	yMax = min(int(r.Clip.URy), r.height)
	return xMin, xMax, yMin, yMax
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
