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

// Package landmarks turns the output tensor of a face landmark model into
// an RGBA overlay frame.
//
// The model reports 468 landmarks as interleaved x, y, z values in the
// coordinate space of its input video, optionally followed by a second
// tensor holding the logit of the face presence probability.  A [Decoder]
// maps the landmarks into the output frame, draws the face contours listed
// in package [seehuhn.de/go/landmarks/topology] using Bresenham lines, and
// marks every landmark with a small square.
package landmarks

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/landmarks/topology"
)

// NumLandmarks is the number of landmarks in every frame.
const NumLandmarks = topology.NumFaceMeshLandmarks

// Landmark is one facial keypoint in input video coordinates.
type Landmark struct {
	Pos vec.Vec2
	Z   float64 // depth, not used for drawing
}

// LandmarksFromTensor parses a tensor of 3*NumLandmarks interleaved x, y, z
// values.  The result is stored in buf, which is grown if needed, and
// returned.
func LandmarksFromTensor(data []float32, buf []Landmark) ([]Landmark, error) {
	if len(data) != 3*NumLandmarks {
		return buf[:0], fmt.Errorf("%w: landmark tensor has %d values, want %d",
			ErrUnsupported, len(data), 3*NumLandmarks)
	}

	if cap(buf) < NumLandmarks {
		buf = make([]Landmark, NumLandmarks)
	}
	buf = buf[:NumLandmarks]
	for i := range buf {
		buf[i] = Landmark{
			Pos: vec.Vec2{X: float64(data[3*i]), Y: float64(data[3*i+1])},
			Z:   float64(data[3*i+2]),
		}
	}
	return buf, nil
}

// Presence converts the raw presence logit of the model into a probability.
func Presence(logit float32) float64 {
	return 1 / (1 + math.Exp(-float64(logit)))
}
