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
	"fmt"
	"strings"
)

// Framerate is a frame rate given as a fraction.  The zero value means
// that the rate is unknown.
type Framerate struct {
	Num, Den int
}

// Format describes the frames produced by a decoder.
type Format struct {
	PixelFormat string
	Width       int
	Height      int
	Framerate   Framerate
}

// OutputFormat returns the format of the frames produced for cfg.  The
// frame rate is passed through from the input stream unchanged.
func OutputFormat(cfg *Config, rate Framerate) Format {
	return Format{
		PixelFormat: "RGBA",
		Width:       cfg.Width,
		Height:      cfg.Height,
		Framerate:   rate,
	}
}

// String returns the format as a media type description, for example
// "video/x-raw, format = RGBA, width = 640, height = 480, framerate = 30/1".
func (f Format) String() string {
	s := fmt.Sprintf("video/x-raw, format = %s, width = %d, height = %d",
		f.PixelFormat, f.Width, f.Height)
	if f.Framerate.Den > 0 {
		s += fmt.Sprintf(", framerate = %d/%d", f.Framerate.Num, f.Framerate.Den)
	}
	return s
}

// TensorInfo describes the type and shape of one input tensor.  Dims lists
// the extent of every dimension, innermost first; missing trailing
// dimensions are treated as 1.
type TensorInfo struct {
	Type string // element type, for example "float32"
	Dims []int
}

func (ti TensorInfo) dim(i int) int {
	if i < len(ti.Dims) {
		return ti.Dims[i]
	}
	return 1
}

func (ti TensorInfo) String() string {
	parts := make([]string, 4)
	for i := range parts {
		parts[i] = fmt.Sprint(ti.dim(i))
	}
	return ti.Type + "[" + strings.Join(parts, ":") + "]"
}

// CheckTensorInfo verifies that the input tensors of a stream match what
// mode expects: a landmark tensor of shape 1404:1:1:1 followed by a
// presence tensor of shape 1:1:1:1, all with the same element type.
// Additional tensors are accepted but logged, since they are never read.
//
// FaceMesh streams only need the landmark tensor.
func CheckTensorInfo(mode Mode, infos []TensorInfo) error {
	var limit int
	switch mode.(type) {
	case FaceLandmark:
		limit = 2
	case FaceMesh:
		limit = 1
	default:
		return fmt.Errorf("%w: mode %T", ErrUnsupported, mode)
	}

	if len(infos) < limit {
		return fmt.Errorf("%w: %s needs %d tensors, got %d",
			ErrUnsupported, mode, limit, len(infos))
	}
	if len(infos) > limit {
		Logger().Warn("surplus input tensors are ignored",
			"mode", mode.String(), "limit", limit, "got", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i].Type != infos[i-1].Type {
			return fmt.Errorf("%w: tensor %d has type %s, tensor %d has type %s",
				ErrUnsupported, i-1, infos[i-1].Type, i, infos[i].Type)
		}
	}

	if infos[0].dim(0) != 3*NumLandmarks {
		return fmt.Errorf("%w: landmark tensor %s, want %d values",
			ErrUnsupported, infos[0], 3*NumLandmarks)
	}
	for i := 1; i < 4; i++ {
		if infos[0].dim(i) != 1 {
			return fmt.Errorf("%w: landmark tensor %s is not one-dimensional",
				ErrUnsupported, infos[0])
		}
	}
	if limit > 1 {
		for i := range 4 {
			if infos[1].dim(i) != 1 {
				return fmt.Errorf("%w: presence tensor %s is not a scalar",
					ErrUnsupported, infos[1])
			}
		}
	}
	return nil
}
