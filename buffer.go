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

import "fmt"

// Memory is a block of memory which holds (part of) a frame.
// The contents can only be written while the block is mapped.
type Memory struct {
	data   []byte
	mapped bool

	// ReadOnly marks memory which cannot be mapped for writing, for
	// example memory shared with another consumer.
	ReadOnly bool
}

// NewMemory allocates a zero-filled memory block of the given size.
func NewMemory(size int) *Memory {
	return &Memory{data: make([]byte, size)}
}

// WrapMemory returns a memory block which uses data as its storage.
func WrapMemory(data []byte) *Memory {
	return &Memory{data: data}
}

// Size returns the size of the memory block in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// Bytes returns the contents of the memory block.  The slice must not be
// modified.
func (m *Memory) Bytes() []byte {
	return m.data
}

// Map returns a writable view of the memory block.  Every successful call
// must be matched by a call to Unmap.
func (m *Memory) Map() ([]byte, error) {
	if m.ReadOnly {
		return nil, fmt.Errorf("%w: memory is read-only", ErrMapping)
	}
	if m.mapped {
		return nil, fmt.Errorf("%w: memory is already mapped", ErrMapping)
	}
	m.mapped = true
	return m.data, nil
}

// Unmap releases the view returned by Map.
func (m *Memory) Unmap() {
	m.mapped = false
}

// Mapped reports whether the memory block is currently mapped.
func (m *Memory) Mapped() bool {
	return m.mapped
}

// Allocator provides memory for output buffers which arrive empty.
type Allocator interface {
	Alloc(size int) *Memory
}

// HeapAllocator allocates memory from the Go heap.
type HeapAllocator struct{}

// Alloc implements the [Allocator] interface.
func (HeapAllocator) Alloc(size int) *Memory {
	return NewMemory(size)
}

// Buffer is an output frame, consisting of zero or more memory blocks.
// The zero value is an empty buffer.
type Buffer struct {
	mems []*Memory
}

// NewBuffer returns a buffer which holds a single, zero-filled memory
// block of the given size.
func NewBuffer(size int) *Buffer {
	return &Buffer{mems: []*Memory{NewMemory(size)}}
}

// Size returns the total size of all memory blocks in bytes.
func (b *Buffer) Size() int {
	total := 0
	for _, m := range b.mems {
		total += m.Size()
	}
	return total
}

// NumMemory returns the number of memory blocks in the buffer.
func (b *Buffer) NumMemory() int {
	return len(b.mems)
}

// Memory returns the i-th memory block.
func (b *Buffer) Memory(i int) *Memory {
	return b.mems[i]
}

// AppendMemory adds a memory block at the end of the buffer.
func (b *Buffer) AppendMemory(m *Memory) {
	b.mems = append(b.mems, m)
}

// Bytes returns the contents of the buffer.  For buffers with a single
// memory block, the returned slice aliases the block.
func (b *Buffer) Bytes() []byte {
	switch len(b.mems) {
	case 0:
		return nil
	case 1:
		return b.mems[0].data
	}
	out := make([]byte, 0, b.Size())
	for _, m := range b.mems {
		out = append(out, m.data...)
	}
	return out
}

// SetSize changes the size of the buffer to n bytes.  The buffer is merged
// into a single memory block first.  The existing storage is reused if it
// is large enough; otherwise new storage is allocated and the old contents
// are copied.
func (b *Buffer) SetSize(n int) {
	m := b.allMemory()
	if m == nil {
		b.mems = []*Memory{NewMemory(n)}
		return
	}
	if cap(m.data) >= n {
		m.data = m.data[:n]
		return
	}
	data := make([]byte, n)
	copy(data, m.data)
	m.data = data
}

// checkWritable returns an error wrapping ErrMapping if any memory block
// of the buffer cannot be mapped for writing.
func (b *Buffer) checkWritable() error {
	for i, m := range b.mems {
		switch {
		case m.ReadOnly:
			return fmt.Errorf("%w: memory block %d is read-only", ErrMapping, i)
		case m.mapped:
			return fmt.Errorf("%w: memory block %d is already mapped", ErrMapping, i)
		}
	}
	return nil
}

// allMemory merges all memory blocks of the buffer into one and returns
// it.  A buffer with a single block is left unchanged.
func (b *Buffer) allMemory() *Memory {
	switch len(b.mems) {
	case 0:
		return nil
	case 1:
		return b.mems[0]
	}
	merged := &Memory{data: b.Bytes()}
	for _, m := range b.mems {
		merged.ReadOnly = merged.ReadOnly || m.ReadOnly
	}
	b.mems = []*Memory{merged}
	return merged
}

// frameMapping is a writable view of the output memory, obtained from
// acquireFrame.  It must be released exactly once.
type frameMapping struct {
	buf   *Buffer
	mem   *Memory
	pix   []byte
	fresh bool // mem was allocated for this frame and is not yet in buf
}

// acquireFrame prepares out to hold a frame of the given size and maps its
// memory for writing.
//
// Buffers without memory get a newly allocated memory block, which is
// attached to the buffer on release.  Buffers which are too small are
// grown, larger buffers are trimmed.  Either way, the existing storage is
// reused if its capacity suffices.  If the memory cannot be mapped, out is
// left unchanged.
func acquireFrame(out *Buffer, size int, alloc Allocator) (*frameMapping, error) {
	if err := out.checkWritable(); err != nil {
		return nil, err
	}

	fm := &frameMapping{buf: out}
	if out.NumMemory() == 0 {
		fm.mem = alloc.Alloc(size)
		fm.fresh = true
	} else {
		if out.Size() != size {
			out.SetSize(size)
		}
		fm.mem = out.allMemory()
	}

	pix, err := fm.mem.Map()
	if err != nil {
		// A fresh block is simply dropped; it never became part of out.
		fm.mem = nil
		return nil, err
	}
	fm.pix = pix[:size]
	return fm, nil
}

// release unmaps the memory.  Newly allocated memory is appended to the
// buffer.
func (fm *frameMapping) release() {
	fm.mem.Unmap()
	fm.pix = nil
	if fm.fresh {
		fm.buf.AppendMemory(fm.mem)
	}
	fm.mem = nil
}
