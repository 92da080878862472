package rixio

import (
	"fmt"
	"unsafe"
)

// Typed fixed-layout access. These functions copy the in-memory byte
// representation of a value to or from a Buffer, exactly Sizeof(T) bytes in
// the platform's native byte order. No endianness conversion is ever
// performed.
//
// Precondition for all three: T must be a fixed-layout type — no pointers,
// slices, maps, strings, channels, funcs, or interfaces anywhere in it. For
// such types the byte representation alone determines the value; for
// anything else the copied bytes are meaningless and unsafe to read back.
// Go cannot express this constraint in the type system, so it is a
// documented caller responsibility.
//
// These are package-level functions rather than methods because Go methods
// cannot take type parameters.

// AppendPOD appends the raw bytes of v to the buffer.
func AppendPOD[T any](b *Buffer, v T) {
	b.data = append(b.data, podBytes(&v)...)
}

// ReadPOD copies Sizeof(T) bytes starting at off into a new value.
// It returns ErrOutOfRange if the range [off, off+Sizeof(T)) is not fully
// inside the buffer.
func ReadPOD[T any](b *Buffer, off int) (T, error) {
	var v T
	n := int(unsafe.Sizeof(v))
	if err := b.checkRange(off, n); err != nil {
		return v, err
	}
	copy(podBytes(&v), b.data[off:])
	return v, nil
}

// WritePOD overwrites Sizeof(T) bytes at off with the raw bytes of v.
// Bounds are checked like ReadPOD; the buffer never grows.
func WritePOD[T any](b *Buffer, off int, v T) error {
	n := int(unsafe.Sizeof(v))
	if err := b.checkRange(off, n); err != nil {
		return err
	}
	copy(b.data[off:off+n], podBytes(&v))
	return nil
}

// podBytes views the storage of *v as a byte slice.
func podBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

func (b *Buffer) checkRange(off, n int) error {
	if off < 0 || off > len(b.data) || len(b.data)-off < n {
		return fmt.Errorf("rixio: %d bytes at offset %d of %d-byte buffer: %w",
			n, off, len(b.data), ErrOutOfRange)
	}
	return nil
}
