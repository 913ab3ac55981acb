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
	"bytes"
	"errors"
	"image"
	"testing"
)

func TestMemoryMap(t *testing.T) {
	m := NewMemory(8)
	pix, err := m.Map()
	if err != nil {
		t.Fatal(err)
	}
	if len(pix) != 8 || !m.Mapped() {
		t.Fatalf("unexpected mapping: %d bytes, mapped=%t", len(pix), m.Mapped())
	}
	if _, err := m.Map(); !errors.Is(err, ErrMapping) {
		t.Errorf("second Map: expected ErrMapping, got %v", err)
	}
	pix[3] = 7
	m.Unmap()
	if m.Mapped() {
		t.Error("still mapped after Unmap")
	}
	if m.Bytes()[3] != 7 {
		t.Error("write through mapping was lost")
	}

	ro := WrapMemory([]byte{1, 2, 3})
	ro.ReadOnly = true
	if _, err := ro.Map(); !errors.Is(err, ErrMapping) {
		t.Errorf("read-only Map: expected ErrMapping, got %v", err)
	}
}

func TestBufferSetSize(t *testing.T) {
	b := &Buffer{}
	b.SetSize(4)
	if b.NumMemory() != 1 || b.Size() != 4 {
		t.Fatalf("empty buffer: got %d blocks, %d bytes", b.NumMemory(), b.Size())
	}

	copy(b.Bytes(), []byte{1, 2, 3, 4})
	b.SetSize(2)
	if !bytes.Equal(b.Bytes(), []byte{1, 2}) {
		t.Errorf("shrink: got %v", b.Bytes())
	}
	b.SetSize(4)
	if b.Size() != 4 {
		t.Errorf("regrow: got %d bytes", b.Size())
	}
	b.SetSize(16)
	if got := b.Bytes(); len(got) != 16 || got[0] != 1 || got[1] != 2 {
		t.Errorf("grow: got %v", got)
	}
}

func TestBufferMerge(t *testing.T) {
	b := &Buffer{}
	b.AppendMemory(WrapMemory([]byte{1, 2}))
	ro := WrapMemory([]byte{3})
	ro.ReadOnly = true
	b.AppendMemory(ro)

	if !bytes.Equal(b.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("unexpected contents %v", b.Bytes())
	}

	m := b.allMemory()
	if b.NumMemory() != 1 || b.Memory(0) != m {
		t.Fatalf("expected a single merged block, got %d", b.NumMemory())
	}
	if !m.ReadOnly {
		t.Error("merged block lost the read-only flag")
	}
	if !bytes.Equal(m.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("unexpected merged contents %v", m.Bytes())
	}
}

func TestAcquireFrameFailure(t *testing.T) {
	alloc := &countingAllocator{}
	out := &Buffer{}
	mem := NewMemory(4)
	if _, err := mem.Map(); err != nil {
		t.Fatal(err)
	}
	out.AppendMemory(mem)

	if _, err := acquireFrame(out, 4, alloc); !errors.Is(err, ErrMapping) {
		t.Errorf("expected ErrMapping, got %v", err)
	}
	if alloc.calls != 0 || out.NumMemory() != 1 {
		t.Error("failed acquire changed the buffer")
	}
}

func TestAcquireFrameReadOnlyKeepsSize(t *testing.T) {
	out := &Buffer{}
	ro := WrapMemory([]byte{1, 2, 3})
	ro.ReadOnly = true
	out.AppendMemory(NewMemory(5))
	out.AppendMemory(ro)

	if _, err := acquireFrame(out, 64, HeapAllocator{}); !errors.Is(err, ErrMapping) {
		t.Fatalf("expected ErrMapping, got %v", err)
	}
	if out.NumMemory() != 2 || out.Size() != 8 || out.Memory(1) != ro {
		t.Errorf("buffer changed: %d blocks, %d bytes", out.NumMemory(), out.Size())
	}
}

func TestWrappedMemoryIsWrittenInPlace(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	out := &Buffer{}
	out.AppendMemory(WrapMemory(img.Pix))

	fm, err := acquireFrame(out, len(img.Pix), HeapAllocator{})
	if err != nil {
		t.Fatal(err)
	}
	r := NewRasterizer(fm.pix, 4, 2)
	r.StampPoint(3, 1, 0, DefaultLineColor)
	fm.release()

	if got := img.RGBAAt(3, 1); got != DefaultLineColor {
		t.Errorf("expected %v, got %v", DefaultLineColor, got)
	}
	if out.NumMemory() != 1 || out.Memory(0).Mapped() {
		t.Error("unexpected buffer state after release")
	}
}
