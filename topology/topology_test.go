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

import (
	"regexp"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestFaceLandmarkTable(t *testing.T) {
	if err := Validate(FaceLandmark, NumFaceMeshLandmarks); err != nil {
		t.Fatal(err)
	}

	// lengths of the contours in the MediaPipe face mesh
	wantLen := map[string]int{
		"silhouette":          37,
		"lips_upper_outer":    11,
		"lips_lower_outer":    10,
		"lips_upper_inner":    11,
		"lips_lower_inner":    11,
		"right_eye_upper":     7,
		"right_eye_lower":     9,
		"right_eyebrow_upper": 5,
		"right_eyebrow_lower": 5,
		"left_eye_upper":      7,
		"left_eye_lower":      9,
		"left_eyebrow_upper":  5,
		"left_eyebrow_lower":  5,
	}
	if len(FaceLandmark) != len(wantLen) {
		t.Fatalf("expected %d groups, got %d", len(wantLen), len(FaceLandmark))
	}

	validName := regexp.MustCompile(`^[a-z_]+$`)
	seen := make(map[string]bool)
	for _, g := range FaceLandmark {
		if !validName.MatchString(g.Name) {
			t.Errorf("invalid group name %q", g.Name)
		}
		if seen[g.Name] {
			t.Errorf("duplicate group name %q", g.Name)
		}
		seen[g.Name] = true

		if got := len(g.Indices); got != wantLen[g.Name] {
			t.Errorf("%s: expected %d indices, got %d", g.Name, wantLen[g.Name], got)
		}
	}

	if got := TotalSegments(FaceLandmark); got != 132-13 {
		t.Errorf("expected %d segments, got %d", 132-13, got)
	}
}

func TestClosed(t *testing.T) {
	g, ok := ByName("silhouette")
	if !ok {
		t.Fatal("silhouette not found")
	}
	if !g.Closed() {
		t.Error("silhouette should be closed")
	}

	g, ok = ByName("left_eyebrow_upper")
	if !ok {
		t.Fatal("left_eyebrow_upper not found")
	}
	if g.Closed() {
		t.Error("left_eyebrow_upper should be open")
	}

	if _, ok := ByName("nose"); ok {
		t.Error("unexpected group \"nose\"")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		groups []Group
		ok     bool
	}{
		{"valid", []Group{{Name: "a", Indices: []int{0, 1, 2}}}, true},
		{"short", []Group{{Name: "a", Indices: []int{0}}}, false},
		{"negative", []Group{{Name: "a", Indices: []int{0, -1}}}, false},
		{"too_large", []Group{{Name: "a", Indices: []int{0, 3}}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(c.groups, 3)
			if (err == nil) != c.ok {
				t.Errorf("Validate: ok=%t, got error %v", c.ok, err)
			}
		})
	}
}

func TestGroupPath(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	g := Group{Name: "loop", Indices: []int{0, 1, 2, 0}}

	var cmds []path.Command
	var got []vec.Vec2
	for cmd, v := range g.Path(pts) {
		cmds = append(cmds, cmd)
		got = append(got, v[0])
	}

	if len(cmds) != 4 {
		t.Fatalf("expected 4 commands, got %d", len(cmds))
	}
	if cmds[0] != path.CmdMoveTo {
		t.Errorf("first command: expected MoveTo, got %v", cmds[0])
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i] != path.CmdLineTo {
			t.Errorf("command %d: expected LineTo, got %v", i, cmds[i])
		}
	}
	if got[3] != pts[0] {
		t.Errorf("last vertex: expected %v, got %v", pts[0], got[3])
	}
}
