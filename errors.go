package rixio

import (
	"errors"
	"fmt"
)

// Sentinel errors for the library's failure kinds. All errors returned by
// this package wrap one of these and can be checked with errors.Is().
// Underlying OS errors stay in the chain, so checks such as
// errors.Is(err, fs.ErrNotExist) keep working on open failures.

// ErrOpen is returned when opening the underlying OS file fails
// (missing file in read mode, permissions, invalid path).
var ErrOpen = errors.New("open failed")

// ErrRead is returned when a read operation is attempted on a closed or
// non-readable handle, or when the underlying read fails mid-operation.
var ErrRead = errors.New("read failed")

// ErrWrite is returned when a write operation is attempted on a closed or
// non-writable handle, or when the underlying write fails.
var ErrWrite = errors.New("write failed")

// ErrFlush is returned when flushing an open handle fails. Flushing a
// closed handle is a no-op and never returns this.
var ErrFlush = errors.New("flush failed")

// ErrOutOfRange is returned by checked buffer access when an index or a
// typed read/write range exceeds the buffer bounds. Purely local; no I/O
// is involved.
var ErrOutOfRange = errors.New("out of range")

// ErrClosed is wrapped alongside ErrRead, ErrWrite, or ErrFlush when the
// operation was refused because the handle is closed.
var ErrClosed = errors.New("file not open")

// ErrNotReadable is wrapped alongside ErrRead when the handle's mode does
// not permit reading.
var ErrNotReadable = errors.New("file not open for reading")

// ErrNotWritable is wrapped alongside ErrWrite when the handle's mode does
// not permit writing.
var ErrNotWritable = errors.New("file not open for writing")

// WrapError wraps an error with additional context while preserving the
// ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while
// preserving the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
