// Package pool provides pooled byte buffers for the codec's staging
// needs: bulk TAG_Int_Array transfer and whole-document encoding.
package pool

import (
	"io"
	"sync"
)

// Pool sizing. Payload buffers stage one array payload at a time and stay
// small; document buffers hold a fully encoded document.
const (
	PayloadBufferDefaultSize   = 16 * 1024
	PayloadBufferMaxThreshold  = 128 * 1024
	DocumentBufferDefaultSize  = 1024 * 1024
	DocumentBufferMaxThreshold = 8 * 1024 * 1024
)

// ByteBuffer is a reusable byte slice with append-style writing. The
// underlying slice B is exported so staging code can reinterpret it in
// place.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates an empty buffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the written portion of the buffer.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Reset empties the buffer, keeping its allocation.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// MustWrite appends data, growing the buffer as needed.
func (bb *ByteBuffer) MustWrite(data []byte) { bb.B = append(bb.B, data...) }

// Extend lengthens the buffer by n bytes without growing; it reports
// false when the capacity cannot hold them. The new bytes are not zeroed.
func (bb *ByteBuffer) Extend(n int) bool {
	if cap(bb.B)-len(bb.B) < n {
		return false
	}
	bb.B = bb.B[:len(bb.B)+n]

	return true
}

// ExtendOrGrow lengthens the buffer by n bytes, reallocating when the
// capacity is insufficient. The new bytes are not zeroed.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures capacity for n more bytes. Small buffers grow in
// PayloadBufferDefaultSize steps; larger ones grow by a quarter of their
// capacity so repeated appends stay amortized without doubling memory.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	step := PayloadBufferDefaultSize
	if cap(bb.B) > 4*PayloadBufferDefaultSize {
		step = cap(bb.B) / 4
	}
	if step < n {
		step = n
	}

	grown := make([]byte, len(bb.B), len(bb.B)+step)
	copy(grown, bb.B)
	bb.B = grown
}

// Write implements io.Writer so an encoder can target the buffer
// directly. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteTo copies the buffer's contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)

	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool. Buffers that
// grew past maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers have the given
// capacity. maxThreshold of 0 retains buffers of any size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)

	return bb
}

// Put resets bb and returns it to the pool. Nil and oversized buffers are
// dropped.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var (
	payloadPool  = NewByteBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)
	documentPool = NewByteBufferPool(DocumentBufferDefaultSize, DocumentBufferMaxThreshold)
)

// GetPayloadBuffer returns a buffer for staging one array payload.
func GetPayloadBuffer() *ByteBuffer { return payloadPool.Get() }

// PutPayloadBuffer returns a payload staging buffer to its pool.
func PutPayloadBuffer(bb *ByteBuffer) { payloadPool.Put(bb) }

// GetDocumentBuffer returns a buffer sized for a whole encoded document.
func GetDocumentBuffer() *ByteBuffer { return documentPool.Get() }

// PutDocumentBuffer returns a document buffer to its pool.
func PutDocumentBuffer(bb *ByteBuffer) { documentPool.Put(bb) }
