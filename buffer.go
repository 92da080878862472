package rixio

import "fmt"

// Buffer is an owning, resizable container of raw bytes. The zero value is
// an empty buffer ready to use.
//
// Content carries no implied encoding: text helpers reinterpret the bytes
// as-is and never validate UTF-8. A Buffer has exactly one owner at a time;
// concurrent mutation without external synchronization is a data race.
type Buffer struct {
	data []byte
}

// NewBuffer returns a buffer of the given length, zero-filled.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// NewBufferBytes returns a buffer owning a copy of p.
func NewBufferBytes(p []byte) *Buffer {
	b := &Buffer{}
	b.Set(p)
	return b
}

// NewBufferString returns a buffer holding the raw bytes of s.
func NewBufferString(s string) *Buffer {
	b := &Buffer{}
	b.SetString(s)
	return b
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Empty reports whether the buffer holds no bytes.
func (b *Buffer) Empty() bool { return len(b.data) == 0 }

// Cap returns the buffer's current capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Bytes returns the buffer's content as a slice aliasing the internal
// storage. No copy is made; mutating the slice mutates the buffer, and the
// slice is invalidated by any operation that resizes the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

// String returns an owned copy of the content reinterpreted as text.
// No validation is performed.
func (b *Buffer) String() string { return string(b.data) }

// Set replaces the content with a copy of p.
func (b *Buffer) Set(p []byte) {
	b.data = append(b.data[:0], p...)
}

// SetString replaces the content with the raw bytes of s. No transcoding.
func (b *Buffer) SetString(s string) {
	b.data = append(b.data[:0], s...)
}

// Append grows the content by a copy of p.
func (b *Buffer) Append(p []byte) {
	b.data = append(b.data, p...)
}

// AppendString grows the content by the raw bytes of s.
func (b *Buffer) AppendString(s string) {
	b.data = append(b.data, s...)
}

// Clear empties the buffer. Length becomes zero; capacity is retained.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// Resize sets the length to n, truncating or growing zero-filled.
// A negative n panics; lengths are never negative.
func (b *Buffer) Resize(n int) {
	switch {
	case n <= len(b.data):
		b.data = b.data[:n]
	case n <= cap(b.data):
		old := len(b.data)
		b.data = b.data[:n]
		clear(b.data[old:])
	default:
		grown := make([]byte, n)
		copy(grown, b.data)
		b.data = grown
	}
}

// Byte returns the byte at index i without a range check beyond the slice's
// own; an out-of-range index panics. Callers that need a recoverable error
// should use At.
func (b *Buffer) Byte(i int) byte { return b.data[i] }

// At returns the byte at index i, or ErrOutOfRange if i is outside the
// buffer.
func (b *Buffer) At(i int) (byte, error) {
	if i < 0 || i >= len(b.data) {
		return 0, fmt.Errorf("rixio: index %d of %d-byte buffer: %w", i, len(b.data), ErrOutOfRange)
	}
	return b.data[i], nil
}
