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

package tensor

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestRoundTrip(t *testing.T) {
	in := &Frame{
		InputWidth:  640,
		InputHeight: 480,
		Tensors: [][]float32{
			{0, 1.5, -2, 640, 480, 0.25},
			{-10},
		},
	}

	data, err := Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	if out.InputWidth != 640 || out.InputHeight != 480 {
		t.Errorf("expected input 640x480, got %dx%d", out.InputWidth, out.InputHeight)
	}
	if len(out.Tensors) != len(in.Tensors) {
		t.Fatalf("expected %d tensors, got %d", len(in.Tensors), len(out.Tensors))
	}
	for i := range in.Tensors {
		if !slices.Equal(in.Tensors[i], out.Tensors[i]) {
			t.Errorf("tensor %d: expected %v, got %v", i, in.Tensors[i], out.Tensors[i])
		}
	}
}

func TestPlainArrays(t *testing.T) {
	data, err := cbor.Marshal(map[string]any{
		"type":    "landmarks",
		"tensors": []any{[]any{1, 2.5, -3}},
	})
	if err != nil {
		t.Fatal(err)
	}

	f, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.InputWidth != 0 || f.InputHeight != 0 {
		t.Errorf("expected unknown input size, got %dx%d", f.InputWidth, f.InputHeight)
	}
	want := []float32{1, 2.5, -3}
	if len(f.Tensors) != 1 || !slices.Equal(f.Tensors[0], want) {
		t.Errorf("expected %v, got %v", want, f.Tensors)
	}
}

func TestInvalid(t *testing.T) {
	cases := map[string]any{
		"wrong_type":  map[string]any{"type": "image", "tensors": []any{}},
		"no_tensors":  map[string]any{"type": "landmarks"},
		"bad_tag":     map[string]any{"type": "landmarks", "tensors": []any{cbor.Tag{Number: 70, Content: []byte{0, 0, 0, 0}}}},
		"odd_length":  map[string]any{"type": "landmarks", "tensors": []any{cbor.Tag{Number: 85, Content: []byte{0, 0, 0}}}},
		"bad_element": map[string]any{"type": "landmarks", "tensors": []any{[]any{"x"}}},
		"bad_input":   map[string]any{"type": "landmarks", "input": []any{640}, "tensors": []any{}},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			data, err := cbor.Marshal(payload)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := Unmarshal(data); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestReader(t *testing.T) {
	buf := &bytes.Buffer{}
	for i := range 3 {
		f := &Frame{Tensors: [][]float32{{float32(i)}}}
		if err := Write(buf, f); err != nil {
			t.Fatal(err)
		}
	}

	r := NewReader(buf)
	for i := range 3 {
		f, err := r.Read()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got := f.Tensors[0][0]; got != float32(i) {
			t.Errorf("frame %d: expected %d, got %g", i, i, got)
		}
	}
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
