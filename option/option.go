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

// Package option converts the string options of a media pipeline element
// into a [landmarks.Config].
//
// Malformed options never abort configuration.  They are logged through
// [landmarks.Logger], ignored, and the previous value is kept.
package option

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/landmarks"
)

// maxRank is the largest number of dimensions accepted in a dimension
// string.
const maxRank = 8

// Options holds the option strings of a decoder.  Empty strings leave the
// corresponding setting unchanged.
type Options struct {
	Mode       string // option 1: "face_landmark" or "face_mesh"
	OutputSize string // option 2: output video size, WIDTH:HEIGHT
	InputSize  string // option 3: input video size, WIDTH:HEIGHT
	Threshold  string // option 4: minimum presence probability
}

// Set stores the value of the n-th option, counting from 1.  Unknown
// option numbers are logged and ignored; Set reports whether the option
// number was recognised.
func (o *Options) Set(n int, value string) bool {
	switch n {
	case 1:
		o.Mode = value
	case 2:
		o.OutputSize = value
	case 3:
		o.InputSize = value
	case 4:
		o.Threshold = value
	default:
		landmarks.Logger().Info("option ignored", "option", n)
		return false
	}
	return true
}

// Apply updates cfg with all valid options.  Invalid options are logged
// and leave the corresponding fields of cfg unchanged.
func (o *Options) Apply(cfg *landmarks.Config) {
	log := landmarks.Logger()

	if o.Mode != "" {
		if m, ok := landmarks.ModeByName(o.Mode); ok {
			cfg.SetMode(m)
		} else {
			log.Error("unknown decoding mode, option ignored", "mode", o.Mode)
		}
	}

	if w, h, ok := parseSize(o.OutputSize, "output video dimension"); ok {
		cfg.Width, cfg.Height = w, h
	}
	if w, h, ok := parseSize(o.InputSize, "input video dimension"); ok {
		cfg.InputWidth, cfg.InputHeight = w, h
	}

	if o.Threshold != "" {
		t, err := strconv.ParseFloat(strings.TrimSpace(o.Threshold), 64)
		if err != nil || !(t >= 0 && t <= 1) {
			log.Error("threshold must be a number in [0, 1], option ignored",
				"value", o.Threshold)
		} else {
			cfg.Threshold = t
		}
	}
}

// Config returns the configuration described by the options, starting
// from [landmarks.DefaultConfig].  An error is returned if the resulting
// configuration cannot be used, for example because the input size was
// never given.
func (o *Options) Config() (*landmarks.Config, error) {
	cfg := landmarks.DefaultConfig()
	o.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parseSize parses a WIDTH:HEIGHT string.  ok is false if s is empty or
// not acceptable; in the latter case the problem is logged.
func parseSize(s, what string) (w, h int, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	log := landmarks.Logger()

	dims, err := ParseDimension(s)
	if err != nil || len(dims) < 2 {
		log.Error(what+" must be WIDTH:HEIGHT, option ignored", "value", s, "err", err)
		return 0, 0, false
	}
	if len(dims) > 2 {
		log.Warn(what+" must be WIDTH:HEIGHT, extra elements ignored", "value", s)
	}
	return dims[0], dims[1], true
}

// ParseDimension parses a colon-separated list of non-negative integers,
// like "640:480".  Elements after the eighth are ignored.
func ParseDimension(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty dimension")
	}

	parts := strings.Split(s, ":")
	if len(parts) > maxRank {
		parts = parts[:maxRank]
	}
	dims := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 31)
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", p, err)
		}
		dims = append(dims, int(v))
	}
	return dims, nil
}
