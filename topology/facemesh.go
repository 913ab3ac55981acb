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

package topology

// NumFaceMeshLandmarks is the number of landmarks produced by the
// MediaPipe face mesh model.
const NumFaceMeshLandmarks = 468

// FaceLandmark contains the contours drawn for the MediaPipe face mesh,
// in drawing order.
var FaceLandmark = []Group{
	silhouette,
	lipsUpperOuter,
	lipsLowerOuter,
	lipsUpperInner,
	lipsLowerInner,
	rightEyeUpper,
	rightEyeLower,
	rightEyebrowUpper,
	rightEyebrowLower,
	leftEyeUpper,
	leftEyeLower,
	leftEyebrowUpper,
	leftEyebrowLower,
}

var silhouette = Group{
	Name: "silhouette",
	Indices: []int{
		10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288,
		397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150, 136,
		172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109, 10,
	},
}

var lipsUpperOuter = Group{
	Name:    "lips_upper_outer",
	Indices: []int{61, 185, 40, 39, 37, 0, 267, 269, 270, 409, 291},
}

var lipsLowerOuter = Group{
	Name:    "lips_lower_outer",
	Indices: []int{146, 91, 181, 84, 17, 314, 405, 321, 375, 291},
}

var lipsUpperInner = Group{
	Name:    "lips_upper_inner",
	Indices: []int{78, 191, 80, 81, 82, 13, 312, 311, 310, 415, 308},
}

var lipsLowerInner = Group{
	Name:    "lips_lower_inner",
	Indices: []int{78, 95, 88, 178, 87, 14, 317, 402, 318, 324, 308},
}

var rightEyeUpper = Group{
	Name:    "right_eye_upper",
	Indices: []int{246, 161, 160, 159, 158, 157, 173},
}

var rightEyeLower = Group{
	Name:    "right_eye_lower",
	Indices: []int{33, 7, 163, 144, 145, 153, 154, 155, 133},
}

var rightEyebrowUpper = Group{
	Name:    "right_eyebrow_upper",
	Indices: []int{70, 63, 105, 66, 107},
}

var rightEyebrowLower = Group{
	Name:    "right_eyebrow_lower",
	Indices: []int{46, 53, 52, 65, 55},
}

var leftEyeUpper = Group{
	Name:    "left_eye_upper",
	Indices: []int{466, 388, 387, 386, 385, 384, 398},
}

var leftEyeLower = Group{
	Name:    "left_eye_lower",
	Indices: []int{263, 249, 390, 373, 374, 380, 381, 382, 362},
}

var leftEyebrowUpper = Group{
	Name:    "left_eyebrow_upper",
	Indices: []int{300, 293, 334, 296, 336},
}

var leftEyebrowLower = Group{
	Name:    "left_eyebrow_lower",
	Indices: []int{276, 283, 282, 295, 285},
}
