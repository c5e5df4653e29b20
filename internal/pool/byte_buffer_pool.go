// Package pool provides pooled byte buffers for assembling armor frames
// without per-call allocations.
package pool

import "sync"

const (
	// FrameBufferDefaultSize is the initial capacity of buffers handed out
	// by GetBuffer. Sized for typical armor frames (header plus a few KiB of
	// compressed payload).
	FrameBufferDefaultSize = 4 * 1024 // 4KiB

	// FrameBufferMaxThreshold caps the capacity of buffers accepted back by
	// PutBuffer. Buffers grown beyond this are dropped so one oversized
	// frame does not pin memory for the life of the pool.
	FrameBufferMaxThreshold = 64 * 1024 // 64KiB
)

// ByteBuffer is a simple append-based byte buffer.
//
// The zero value is not ready for use; obtain instances through
// NewByteBuffer or GetBuffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
//
// The returned slice is valid until the next write or Reset, and must not be
// retained after the buffer is returned to the pool.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written to the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer has capacity for n more bytes, reallocating once
// up front instead of repeatedly during subsequent writes.
func (bb *ByteBuffer) Grow(n int) {
	need := len(bb.B) + n
	if need <= cap(bb.B) {
		return
	}

	grown := make([]byte, len(bb.B), need)
	copy(grown, bb.B)
	bb.B = grown
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) MustWriteByte(c byte) {
	bb.B = append(bb.B, c)
}

var bufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(FrameBufferDefaultSize)
	},
}

// GetBuffer retrieves an empty ByteBuffer from the pool.
//
// The caller must return the buffer with PutBuffer when done, typically
// with defer.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a ByteBuffer to the pool.
//
// Buffers grown beyond FrameBufferMaxThreshold are discarded instead of
// pooled. Passing nil is a no-op.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > FrameBufferMaxThreshold {
		return
	}

	bufferPool.Put(bb)
}
