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
	"image"
	"log/slog"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/landmarks/topology"
)

// Decoder renders landmark tensors into RGBA overlay frames.
//
// A Decoder keeps scratch buffers between calls and is not safe for
// concurrent use.  Separate decoders are independent.
type Decoder struct {
	cfg    Config
	mapper Mapper
	groups []topology.Group
	alloc  Allocator

	raster    *Rasterizer
	landmarks []Landmark
	points    []image.Point
	vertices  []vec.Vec2

	stats Stats
}

// Stats describes what the most recent call to Decode has drawn.
type Stats struct {
	// Presence is the face presence probability, or -1 if no presence
	// tensor was supplied.
	Presence float64

	// Drawn is false if the frame was left empty because the presence
	// probability was below the threshold.
	Drawn bool

	Segments int // number of contour segments drawn
	Points   int // number of landmark squares drawn
}

// NewDecoder returns a decoder for the given configuration.  The
// configuration is copied.
func NewDecoder(cfg *Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Decoder{
		cfg:    *cfg,
		mapper: NewMapper(cfg),
		groups: cfg.Groups,
		alloc:  HeapAllocator{},
		raster: &Rasterizer{},
	}
	if d.cfg.Mode == nil {
		d.cfg.Mode = FaceLandmark{}
	}
	if d.groups == nil {
		d.groups = topology.FaceLandmark
	}
	if err := topology.Validate(d.groups, NumLandmarks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return d, nil
}

// SetAllocator sets the allocator used for output buffers which arrive
// without memory.  The default allocates from the Go heap.
func (d *Decoder) SetAllocator(a Allocator) {
	if a == nil {
		a = HeapAllocator{}
	}
	d.alloc = a
}

// Config returns a copy of the decoder configuration.
func (d *Decoder) Config() Config {
	return d.cfg
}

// Stats returns information about the most recent call to Decode.
func (d *Decoder) Stats() Stats {
	return d.stats
}

// decodeState is a step of a Decode call.
type decodeState int

const (
	stateAwaitingBuffer decodeState = iota
	stateBufferReady
	statePointsTransformed
	stateComposited
	stateDone
	stateFailed
)

func (s decodeState) String() string {
	switch s {
	case stateAwaitingBuffer:
		return "awaiting_buffer"
	case stateBufferReady:
		return "buffer_ready"
	case statePointsTransformed:
		return "points_transformed"
	case stateComposited:
		return "composited"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	}
	return fmt.Sprintf("decodeState(%d)", int(s))
}

// Decode renders one frame into out.
//
// tensors[0] must hold 3*NumLandmarks values (x, y, z for every
// landmark).  The optional tensors[1] must hold a single value, the logit
// of the face presence probability; if the probability is below the
// configured threshold, the frame is left transparent.
//
// If out has no memory, a new memory block is allocated and attached.
// Otherwise the memory of out is resized to the frame size if needed and
// overwritten in place.
//
// Tensors which do not fit the decoding mode, and a nil out, cause an
// error wrapping ErrUnsupported, before out is touched.  If the output
// memory cannot be mapped, the returned error wraps ErrMapping and out is
// left unchanged.
func (d *Decoder) Decode(tensors [][]float32, out *Buffer) error {
	log := Logger()
	state := stateAwaitingBuffer
	d.stats = Stats{Presence: -1}

	fail := func(err error) error {
		log.Error("decode failed", "state", state, "err", err)
		state = stateFailed
		return err
	}

	if out == nil {
		return fail(fmt.Errorf("%w: no output buffer", ErrUnsupported))
	}
	var drawLines bool
	switch d.cfg.Mode.(type) {
	case FaceLandmark:
		drawLines = true
	case FaceMesh:
		drawLines = false
	default:
		return fail(fmt.Errorf("%w: mode %T", ErrUnsupported, d.cfg.Mode))
	}

	landmarkData, logit, hasPresence, err := splitTensors(tensors)
	if err != nil {
		return fail(err)
	}
	d.landmarks, err = LandmarksFromTensor(landmarkData, d.landmarks)
	if err != nil {
		return fail(err)
	}

	size := d.cfg.FrameSize()
	fm, err := acquireFrame(out, size, d.alloc)
	if err != nil {
		return fail(fmt.Errorf("decode: %w", err))
	}
	clear(fm.pix)
	state = d.advance(log, state, stateBufferReady)

	r := d.raster
	r.Reset(fm.pix, d.cfg.Width, d.cfg.Height)

	draw := true
	if hasPresence {
		d.stats.Presence = Presence(logit)
		draw = d.stats.Presence >= d.cfg.Threshold
	}

	if draw {
		d.transform()
		state = d.advance(log, state, statePointsTransformed)

		if drawLines {
			d.drawContours(r)
		}
		d.drawPoints(r)
		d.stats.Drawn = true
	} else {
		log.Debug("face not present", "presence", d.stats.Presence, "threshold", d.cfg.Threshold)
	}
	state = d.advance(log, state, stateComposited)

	r.Reset(nil, 0, 0)
	fm.release()
	d.advance(log, state, stateDone)
	return nil
}

func (d *Decoder) advance(log *slog.Logger, from, to decodeState) decodeState {
	log.Debug("decode", "from", from, "to", to)
	return to
}

// transform maps all landmarks into the output frame, keeping their order.
func (d *Decoder) transform() {
	n := len(d.landmarks)
	if cap(d.points) < n {
		d.points = make([]image.Point, n)
		d.vertices = make([]vec.Vec2, n)
	}
	d.points = d.points[:n]
	d.vertices = d.vertices[:n]
	for i, lm := range d.landmarks {
		p := d.mapper.Map(lm.Pos)
		d.points[i] = p
		d.vertices[i] = vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
	}
}

// drawContours draws the polylines of all topology groups.
func (d *Decoder) drawContours(r *Rasterizer) {
	for _, g := range d.groups {
		d.stats.Segments += r.Stroke(g.Path(d.vertices), d.cfg.LineHalfWidth, d.cfg.LineColor)
	}
}

// drawPoints marks every landmark.  Points are drawn after the contours,
// so that lines never cover them.
func (d *Decoder) drawPoints(r *Rasterizer) {
	for _, p := range d.points {
		r.StampPoint(p.X, p.Y, d.cfg.PointRadius, d.cfg.PointColor)
	}
	d.stats.Points += len(d.points)
}

// splitTensors checks the number and sizes of the input tensors.
func splitTensors(tensors [][]float32) (landmarks []float32, logit float32, hasPresence bool, err error) {
	switch len(tensors) {
	case 1:
		return tensors[0], 0, false, nil
	case 2:
		if len(tensors[1]) != 1 {
			return nil, 0, false, fmt.Errorf("%w: presence tensor has %d values, want 1",
				ErrUnsupported, len(tensors[1]))
		}
		return tensors[0], tensors[1][0], true, nil
	default:
		return nil, 0, false, fmt.Errorf("%w: got %d tensors, want 1 or 2",
			ErrUnsupported, len(tensors))
	}
}
