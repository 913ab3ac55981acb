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

package testcases

var faceCases = []TestCase{
	{
		Name:        "downscale",
		Width:       256,
		Height:      256,
		InputWidth:  640,
		InputHeight: 480,
		Mode:        "face_landmark",
		Landmarks:   sunflower(320, 240, 200, 220),
	},
	{
		Name:        "upscale",
		Width:       1280,
		Height:      720,
		InputWidth:  192,
		InputHeight: 192,
		Mode:        "face_landmark",
		Landmarks:   sunflower(96, 96, 70, 80),
		Presence:    logit(4),
	},
	{
		Name:        "identity",
		Width:       192,
		Height:      192,
		InputWidth:  192,
		InputHeight: 192,
		Mode:        "face_landmark",
		Landmarks:   sunflower(96, 96, 60, 60),
	},
}

var clampCases = []TestCase{
	{
		Name:        "corners",
		Width:       256,
		Height:      256,
		InputWidth:  640,
		InputHeight: 480,
		Mode:        "face_landmark",
		Landmarks:   withPoint(constant(0, 0), 10, 640, 480),
	},
	{
		Name:        "outside",
		Width:       64,
		Height:      48,
		InputWidth:  192,
		InputHeight: 192,
		Mode:        "face_landmark",
		Landmarks:   sunflower(96, 96, 400, 400),
	},
}

var presenceCases = []TestCase{
	{
		Name:        "absent",
		Width:       128,
		Height:      128,
		InputWidth:  192,
		InputHeight: 192,
		Mode:        "face_landmark",
		Landmarks:   sunflower(96, 96, 60, 60),
		Presence:    logit(-10),
	},
	{
		Name:        "borderline",
		Width:       128,
		Height:      128,
		InputWidth:  192,
		InputHeight: 192,
		Mode:        "face_landmark",
		Landmarks:   sunflower(96, 96, 60, 60),
		Presence:    logit(0),
	},
}

var meshCases = []TestCase{
	{
		Name:        "points",
		Width:       320,
		Height:      240,
		InputWidth:  192,
		InputHeight: 192,
		Mode:        "face_mesh",
		Landmarks:   sunflower(96, 96, 70, 80),
		Presence:    logit(2),
	},
}
