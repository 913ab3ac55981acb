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

// Package tensor reads and writes landmark tensors in CBOR format.
//
// A frame is stored as a CBOR map
//
//	{"type": "landmarks", "input": [width, height], "tensors": [t0, t1, ...]}
//
// where each tensor is either an RFC 8746 typed array (tag 85, float32
// little endian) or a plain CBOR array of numbers.  The "input" entry is
// optional and gives the coordinate space of the landmark positions.
package tensor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
)

const (
	tagFloat32LE = 85
	messageType  = "landmarks"
)

// Frame is the model output for one video frame.
type Frame struct {
	// InputWidth and InputHeight give the coordinate space of the
	// landmarks.  Zero if unknown.
	InputWidth, InputHeight int

	Tensors [][]float32
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em
}

// Marshal encodes f.  Tensors are written as typed arrays.
func Marshal(f *Frame) ([]byte, error) {
	tensors := make([]any, len(f.Tensors))
	for i, t := range f.Tensors {
		tensors[i] = cbor.Tag{Number: tagFloat32LE, Content: float32ToBytes(t)}
	}
	payload := map[string]any{
		"type":    messageType,
		"tensors": tensors,
	}
	if f.InputWidth > 0 && f.InputHeight > 0 {
		payload["input"] = []int{f.InputWidth, f.InputHeight}
	}
	return encMode.Marshal(payload)
}

// Unmarshal decodes a frame.
func Unmarshal(data []byte) (*Frame, error) {
	var payload map[string]any
	if err := cbor.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("tensor: %w", err)
	}
	return fromPayload(payload)
}

// Write writes the encoding of f to w.
func Write(w io.Writer, f *Frame) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Read reads a single frame from r.  The decoder may read ahead, so use a
// [Reader] for streams of frames.
func Read(r io.Reader) (*Frame, error) {
	return NewReader(r).Read()
}

// Reader reads a sequence of frames.
type Reader struct {
	dec *cbor.Decoder
}

// NewReader returns a Reader which reads frames from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: cbor.NewDecoder(r)}
}

// Read returns the next frame.  At the end of the input, Read returns
// io.EOF.
func (r *Reader) Read() (*Frame, error) {
	var payload map[string]any
	if err := r.dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("tensor: %w", err)
	}
	return fromPayload(payload)
}

func fromPayload(payload map[string]any) (*Frame, error) {
	msgType, _ := payload["type"].(string)
	if msgType != messageType {
		return nil, fmt.Errorf("tensor: unexpected message type %q", msgType)
	}

	f := &Frame{}
	if raw, ok := payload["input"]; ok {
		dims, ok := raw.([]any)
		if !ok || len(dims) != 2 {
			return nil, errors.New("tensor: invalid input dimensions")
		}
		w, err := toInt(dims[0])
		if err != nil {
			return nil, fmt.Errorf("tensor: input width: %w", err)
		}
		h, err := toInt(dims[1])
		if err != nil {
			return nil, fmt.Errorf("tensor: input height: %w", err)
		}
		f.InputWidth, f.InputHeight = w, h
	}

	list, ok := payload["tensors"].([]any)
	if !ok {
		return nil, errors.New("tensor: missing tensors")
	}
	for i, item := range list {
		t, err := decodeTensor(item)
		if err != nil {
			return nil, fmt.Errorf("tensor %d: %w", i, err)
		}
		f.Tensors = append(f.Tensors, t)
	}
	return f, nil
}

func decodeTensor(value any) ([]float32, error) {
	switch v := value.(type) {
	case cbor.Tag:
		if v.Number != tagFloat32LE {
			return nil, fmt.Errorf("unsupported typed array tag %d", v.Number)
		}
		data, ok := v.Content.([]byte)
		if !ok {
			return nil, fmt.Errorf("unsupported typed array content %T", v.Content)
		}
		if len(data)%4 != 0 {
			return nil, fmt.Errorf("typed array length %d is not a multiple of 4", len(data))
		}
		return bytesToFloat32(data), nil
	case []any:
		out := make([]float32, len(v))
		for i, x := range v {
			f, err := toFloat(x)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = float32(f)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported tensor encoding %T", value)
	}
}

func float32ToBytes(data []float32) []byte {
	out := make([]byte, 4*len(data))
	for i, x := range data {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(x))
	}
	return out
}

func bytesToFloat32(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return out
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case uint64:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported int type %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("unsupported float type %T", v)
	}
}
