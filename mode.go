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

// Mode is the decoding mode.  The only implementations are FaceLandmark
// and FaceMesh.
type Mode interface {
	isMode()
	defaultPointRadius() int

	// String returns the name used in option strings.
	String() string
}

// FaceLandmark draws the face contours of the topology table followed by
// a square at every landmark.
type FaceLandmark struct{}

func (FaceLandmark) isMode()                 {}
func (FaceLandmark) defaultPointRadius() int { return 2 }
func (FaceLandmark) String() string          { return "face_landmark" }

// FaceMesh draws a square at every landmark, without contour lines.
type FaceMesh struct{}

func (FaceMesh) isMode()                 {}
func (FaceMesh) defaultPointRadius() int { return 3 }
func (FaceMesh) String() string          { return "face_mesh" }

// supportedMode reports whether m is one of the modes implemented by the
// decoder.  Nil counts as FaceLandmark.
func supportedMode(m Mode) bool {
	switch m.(type) {
	case nil, FaceLandmark, FaceMesh:
		return true
	}
	return false
}

// ModeByName returns the mode with the given name.
func ModeByName(name string) (Mode, bool) {
	switch name {
	case "face_landmark", "":
		return FaceLandmark{}, true
	case "face_mesh":
		return FaceMesh{}, true
	}
	return nil, false
}
