package rixio

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
)

// File is a handle bound to a path, an open mode, and a content type. The
// mode is fixed at open time; every read or write call checks it. A File
// owns at most one open backend stream and is not safe for concurrent use.
//
// The handle moves through two states only: open on a successful Open, and
// closed after Close. An open failure never yields a handle, so there is no
// partially-open state.
type File struct {
	path string
	mode Mode
	typ  Type
	file billy.File
}

// Open opens path with the given mode and content type on the native OS
// filesystem. Failures wrap ErrOpen together with the underlying OS error.
func Open(path string, mode Mode, typ Type) (*File, error) {
	return defaultFS.Open(path, mode, typ)
}

// Open opens path on this filesystem with the given mode and content type.
// The returned handle should be released with Close, typically deferred:
//
//	f, err := fsys.Open(path, rixio.ModeRead, rixio.TypeText)
//	if err != nil { ... }
//	defer f.Close()
func (x *FS) Open(path string, mode Mode, typ Type) (*File, error) {
	f, err := x.fs.OpenFile(path, mode.flags(), defaultPerm)
	if err != nil {
		return nil, fmt.Errorf("rixio: open %q (%s, %s): %w: %w", path, mode, typ, ErrOpen, err)
	}
	return &File{
		path: path,
		mode: mode,
		typ:  typ,
		file: f,
	}, nil
}

// IsOpen reports whether the handle currently owns an open stream.
func (f *File) IsOpen() bool { return f.file != nil }

// Path returns the path the handle was opened with.
func (f *File) Path() string { return f.path }

// Mode returns the open mode.
func (f *File) Mode() Mode { return f.mode }

// Type returns the content type.
func (f *File) Type() Type { return f.typ }

// ReadAllText rewinds to the start of the file and reads everything up to
// end-of-stream, returning the content as text. The bytes are not validated
// or transcoded. It fails wrapping ErrRead if the handle is closed, the
// mode does not permit reading, or the underlying read fails.
func (f *File) ReadAllText() (string, error) {
	if err := f.readable(); err != nil {
		return "", fmt.Errorf("rixio: read %q: %w: %w", f.path, ErrRead, err)
	}
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rixio: read %q: rewind: %w: %w", f.path, ErrRead, err)
	}
	data, err := io.ReadAll(f.file)
	if err != nil {
		return "", fmt.Errorf("rixio: read %q: %w: %w", f.path, ErrRead, err)
	}
	return string(data), nil
}

// ReadAllBytes determines the file's size by seeking to the end, rewinds,
// and reads exactly that many bytes into a new Buffer. It fails wrapping
// ErrRead if the handle is closed or not readable, if the size probe yields
// an invalid length, or if fewer bytes than expected are available.
func (f *File) ReadAllBytes() (*Buffer, error) {
	if err := f.readable(); err != nil {
		return nil, fmt.Errorf("rixio: read %q: %w: %w", f.path, ErrRead, err)
	}
	end, err := f.file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("rixio: read %q: size probe: %w: %w", f.path, ErrRead, err)
	}
	if end < 0 {
		return nil, fmt.Errorf("rixio: read %q: invalid size %d: %w", f.path, end, ErrRead)
	}
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rixio: read %q: rewind: %w: %w", f.path, ErrRead, err)
	}
	buf := &Buffer{data: make([]byte, end)}
	if end > 0 {
		if _, err := io.ReadFull(f.file, buf.data); err != nil {
			return nil, fmt.Errorf("rixio: read %q: want %d bytes: %w: %w", f.path, end, ErrRead, err)
		}
	}
	return buf, nil
}

// WriteText writes the raw bytes of text at the current stream position:
// the end for append mode, the start for truncate mode. It fails wrapping
// ErrWrite if the handle is closed, the mode does not permit writing, or
// the underlying write fails or is short.
func (f *File) WriteText(text string) error {
	return f.writeAll([]byte(text))
}

// WriteBytes writes p at the current stream position. Failure semantics
// match WriteText.
func (f *File) WriteBytes(p []byte) error {
	return f.writeAll(p)
}

func (f *File) writeAll(p []byte) error {
	if err := f.writable(); err != nil {
		return fmt.Errorf("rixio: write %q: %w: %w", f.path, ErrWrite, err)
	}
	n, err := f.file.Write(p)
	if err != nil {
		return fmt.Errorf("rixio: write %q: %w: %w", f.path, ErrWrite, err)
	}
	if n != len(p) {
		return fmt.Errorf("rixio: write %q: wrote %d of %d bytes: %w", f.path, n, len(p), ErrWrite)
	}
	return nil
}

// Flush forces buffered writes out to the backend. On a closed handle it
// is a no-op returning nil. On an open handle it syncs when the backend
// stream supports it (OS files do; the in-memory backend has nothing to
// sync) and fails wrapping ErrFlush if the sync reports an error.
func (f *File) Flush() error {
	if !f.IsOpen() {
		return nil
	}
	s, ok := f.file.(interface{ Sync() error })
	if !ok {
		return nil
	}
	if err := s.Sync(); err != nil {
		return fmt.Errorf("rixio: flush %q: %w: %w", f.path, ErrFlush, err)
	}
	return nil
}

// Close releases the underlying stream. It is idempotent and never fails
// observably: any error from the backend close is swallowed, because the
// usual call site is a deferred scope exit with no caller to report to.
func (f *File) Close() error {
	if f.file == nil {
		return nil
	}
	_ = f.file.Close()
	f.file = nil
	return nil
}

func (f *File) readable() error {
	if !f.IsOpen() {
		return ErrClosed
	}
	if !f.mode.CanRead() {
		return ErrNotReadable
	}
	return nil
}

func (f *File) writable() error {
	if !f.IsOpen() {
		return ErrClosed
	}
	if !f.mode.CanWrite() {
		return ErrNotWritable
	}
	return nil
}
