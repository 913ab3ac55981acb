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
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 640, 480
		cfg.InputWidth, cfg.InputHeight = 192, 192
		return cfg
	}

	cases := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero_output", func(c *Config) { c.Width, c.Height = 0, 0 }, true},
		{"negative_width", func(c *Config) { c.Width = -1 }, false},
		{"negative_height", func(c *Config) { c.Height = -5 }, false},
		{"zero_input_width", func(c *Config) { c.InputWidth = 0 }, false},
		{"negative_input_height", func(c *Config) { c.InputHeight = -192 }, false},
		{"threshold_zero", func(c *Config) { c.Threshold = 0 }, true},
		{"threshold_one", func(c *Config) { c.Threshold = 1 }, true},
		{"threshold_above", func(c *Config) { c.Threshold = 1.01 }, false},
		{"threshold_below", func(c *Config) { c.Threshold = -0.1 }, false},
		{"threshold_nan", func(c *Config) { c.Threshold = math.NaN() }, false},
		{"radius_zero", func(c *Config) { c.PointRadius = 0 }, true},
		{"radius_negative", func(c *Config) { c.PointRadius = -1 }, false},
		{"line_negative", func(c *Config) { c.LineHalfWidth = -1 }, false},
		{"nil_mode", func(c *Config) { c.Mode = nil }, true},
		{"mesh_mode", func(c *Config) { c.Mode = FaceMesh{} }, true},
		{"pointer_mode", func(c *Config) { c.Mode = &FaceMesh{} }, false},
		{"pointer_landmark_mode", func(c *Config) { c.Mode = &FaceLandmark{} }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := valid()
			c.modify(&cfg)
			err := cfg.Validate()
			if c.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(256, 256, 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cfg.Mode.(FaceLandmark); !ok {
		t.Errorf("expected FaceLandmark mode, got %v", cfg.Mode)
	}
	if cfg.PointRadius != 2 || cfg.LineHalfWidth != 1 {
		t.Errorf("unexpected style: radius %d, line %d", cfg.PointRadius, cfg.LineHalfWidth)
	}
	if cfg.Threshold != DefaultThreshold {
		t.Errorf("expected threshold %g, got %g", DefaultThreshold, cfg.Threshold)
	}
	if got := cfg.FrameSize(); got != 256*256*4 {
		t.Errorf("expected frame size %d, got %d", 256*256*4, got)
	}

	if _, err := NewConfig(256, 256, 0, 480); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSetMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetMode(FaceMesh{})
	if cfg.PointRadius != 3 {
		t.Errorf("face_mesh: expected radius 3, got %d", cfg.PointRadius)
	}
	cfg.SetMode(nil)
	if _, ok := cfg.Mode.(FaceLandmark); !ok || cfg.PointRadius != 2 {
		t.Errorf("nil mode: got %v with radius %d", cfg.Mode, cfg.PointRadius)
	}
}

func TestModeByName(t *testing.T) {
	cases := []struct {
		name string
		want Mode
	}{
		{"", FaceLandmark{}},
		{"face_landmark", FaceLandmark{}},
		{"face_mesh", FaceMesh{}},
	}
	for _, c := range cases {
		m, ok := ModeByName(c.name)
		if !ok || m != c.want {
			t.Errorf("ModeByName(%q) = %v, %t", c.name, m, ok)
		}
	}
	for _, name := range []string{"hand_pose", "Face_Landmark", "face-mesh"} {
		if _, ok := ModeByName(name); ok {
			t.Errorf("ModeByName(%q) succeeded", name)
		}
	}
	if s := (FaceMesh{}).String(); s != "face_mesh" {
		t.Errorf("unexpected mode name %q", s)
	}
}
