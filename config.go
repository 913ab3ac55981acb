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
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/landmarks/topology"
)

var (
	// ErrInvalidConfig is returned when a Config cannot be used for decoding.
	ErrInvalidConfig = errors.New("invalid decoder configuration")

	// ErrUnsupported is returned by Decode when the supplied tensors do not
	// match the decoding mode.  Nothing is drawn in this case.
	ErrUnsupported = errors.New("unsupported tensor configuration")

	// ErrMapping is returned by Decode when the output memory cannot be
	// mapped for writing.
	ErrMapping = errors.New("cannot map output memory")
)

// Config describes the geometry and the visual style of the overlay.
//
// A Config is copied by NewDecoder; changing it afterwards has no effect on
// existing decoders.
type Config struct {
	// Width and Height give the size of the output frame in pixels.
	// A zero size is allowed and results in an empty frame.
	Width, Height int

	// InputWidth and InputHeight give the size of the coordinate space
	// in which the model reports landmark positions.  Both must be
	// positive.
	InputWidth, InputHeight int

	// Threshold is the minimum face presence probability, in [0, 1],
	// required for anything to be drawn.
	Threshold float64

	// PointRadius is the half side length of the square drawn at every
	// landmark.  Zero draws single pixels.
	PointRadius int

	// LineHalfWidth is the radius of the square stamped at every pixel
	// visited by a contour line.
	LineHalfWidth int

	PointColor color.RGBA
	LineColor  color.RGBA

	// Mode selects what is drawn.  Nil means FaceLandmark.
	Mode Mode

	// Groups lists the contours drawn in FaceLandmark mode.  Nil means
	// [topology.FaceLandmark].
	Groups []topology.Group
}

// Default values for the visual style.
const (
	// DefaultThreshold is the default minimum presence probability.
	DefaultThreshold = 0.5

	defaultLineHalfWidth = 1
)

// Default colors.  Points are opaque red, lines opaque blue.
var (
	DefaultPointColor = color.RGBA{R: 0xFF, A: 0xFF}
	DefaultLineColor  = color.RGBA{B: 0xFF, A: 0xFF}
)

// DefaultConfig returns a configuration with the FaceLandmark mode and
// default values for the visual style.  All dimensions are zero and must
// be set before the configuration can be used.
func DefaultConfig() Config {
	mode := FaceLandmark{}
	return Config{
		Threshold:     DefaultThreshold,
		PointRadius:   mode.defaultPointRadius(),
		LineHalfWidth: defaultLineHalfWidth,
		PointColor:    DefaultPointColor,
		LineColor:     DefaultLineColor,
		Mode:          mode,
	}
}

// NewConfig returns a configuration for the given output and input
// dimensions, using the FaceLandmark mode and default values for the
// visual style.
func NewConfig(width, height, inputWidth, inputHeight int) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = width, height
	cfg.InputWidth, cfg.InputHeight = inputWidth, inputHeight
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetMode changes the decoding mode and resets the point radius to the
// default for that mode.
func (c *Config) SetMode(m Mode) {
	if m == nil {
		m = FaceLandmark{}
	}
	c.Mode = m
	c.PointRadius = m.defaultPointRadius()
}

// Validate checks that the configuration can be used for decoding.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: output size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.InputWidth <= 0 || c.InputHeight <= 0 {
		return fmt.Errorf("%w: input size %dx%d", ErrInvalidConfig, c.InputWidth, c.InputHeight)
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold %g not in [0, 1]", ErrInvalidConfig, c.Threshold)
	}
	if c.PointRadius < 0 || c.LineHalfWidth < 0 {
		return fmt.Errorf("%w: negative point radius or line width", ErrInvalidConfig)
	}
	if !supportedMode(c.Mode) {
		return fmt.Errorf("%w: unsupported mode %T", ErrInvalidConfig, c.Mode)
	}
	return nil
}

// FrameSize returns the number of bytes in one output frame.
func (c *Config) FrameSize() int {
	return c.Width * c.Height * 4
}
