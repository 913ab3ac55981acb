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

// Package testcases defines synthetic landmark tensors for testing and
// demonstrating the overlay decoder.
//
// The landmark sets are generated, not taken from a real model.  They are
// laid out so that all contours and points of the overlay are visible.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// NumLandmarks is the number of landmarks in every test case.
const NumLandmarks = 468

// TestCase defines a single decoding test.
type TestCase struct {
	Name string // lowercase a-z, 0-9 and _ only

	Width, Height           int // output frame size in pixels
	InputWidth, InputHeight int // coordinate space of the landmarks

	Mode string // "face_landmark" or "face_mesh"

	Landmarks []float32 // x, y, z for each of the NumLandmarks landmarks
	Presence  []float32 // nil, or a single presence logit
}

// Tensors returns the input tensors of the test case, in the order
// expected by the decoder.
func (tc TestCase) Tensors() [][]float32 {
	if tc.Presence == nil {
		return [][]float32{tc.Landmarks}
	}
	return [][]float32{tc.Landmarks, tc.Presence}
}

// Position returns the input space position of landmark i.
func (tc TestCase) Position(i int) vec.Vec2 {
	return vec.Vec2{X: float64(tc.Landmarks[3*i]), Y: float64(tc.Landmarks[3*i+1])}
}

// sunflower places the landmarks on a disc, scaled to an ellipse with
// center (cx, cy) and radii rx, ry.  Consecutive indices are spread by the
// golden angle, so that every contour crosses the face.
func sunflower(cx, cy, rx, ry float64) []float32 {
	golden := math.Pi * (3 - math.Sqrt(5))
	res := make([]float32, 3*NumLandmarks)
	for i := range NumLandmarks {
		r := math.Sqrt((float64(i) + 0.5) / NumLandmarks)
		phi := float64(i) * golden
		res[3*i] = float32(cx + rx*r*math.Cos(phi))
		res[3*i+1] = float32(cy + ry*r*math.Sin(phi))
		res[3*i+2] = float32(-20 * r)
	}
	return res
}

// constant places all landmarks at (x, y).
func constant(x, y float64) []float32 {
	res := make([]float32, 3*NumLandmarks)
	for i := range NumLandmarks {
		res[3*i] = float32(x)
		res[3*i+1] = float32(y)
	}
	return res
}

// withPoint returns a copy of lm where landmark i is moved to (x, y).
func withPoint(lm []float32, i int, x, y float64) []float32 {
	res := append([]float32(nil), lm...)
	res[3*i] = float32(x)
	res[3*i+1] = float32(y)
	return res
}

// logit returns a presence tensor holding v.
func logit(v float32) []float32 {
	return []float32{v}
}
