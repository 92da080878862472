package rixio

import "os"

// Mode selects how a file is opened. It is fixed for the lifetime of a File.
type Mode int

const (
	// ModeRead opens an existing file for reading; the open fails if the
	// file is missing.
	ModeRead Mode = iota

	// ModeWrite opens for writing, truncating existing content and
	// creating the file if missing.
	ModeWrite

	// ModeAppend opens for writing positioned at the end of the file,
	// creating it if missing.
	ModeAppend

	// ModeReadWrite opens for reading and writing, creating the file if
	// missing. Existing content is not truncated.
	ModeReadWrite
)

// CanRead reports whether the mode permits read operations. It is a pure
// predicate over the mode value, independent of any OS state.
func (m Mode) CanRead() bool {
	return m == ModeRead || m == ModeReadWrite
}

// CanWrite reports whether the mode permits write operations.
func (m Mode) CanWrite() bool {
	return m == ModeWrite || m == ModeAppend || m == ModeReadWrite
}

// flags maps the mode to the OS open flags.
func (m Mode) flags() int {
	switch m {
	case ModeRead:
		return os.O_RDONLY
	case ModeWrite:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ModeAppend:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case ModeReadWrite:
		return os.O_RDWR | os.O_CREATE
	default:
		return os.O_RDONLY
	}
}

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	case ModeReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// Type declares how a file's content is interpreted. It is recorded on the
// handle and reported by File.Type. Go performs no newline translation on
// any platform, so text and binary files open identically; the distinction
// exists for API symmetry with environments that do translate.
type Type int

const (
	// TypeText marks the content as text.
	TypeText Type = iota

	// TypeBinary marks the content as raw bytes.
	TypeBinary
)

// String returns the type's name.
func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// WriteMode selects the behavior of the whole-file write helpers.
type WriteMode int

const (
	// WriteTruncate discards any existing content before writing.
	WriteTruncate WriteMode = iota

	// WriteAppend adds the new content after any existing content.
	WriteAppend
)

// fileMode maps a WriteMode to the handle Mode it opens with.
func (w WriteMode) fileMode() Mode {
	if w == WriteAppend {
		return ModeAppend
	}
	return ModeWrite
}

// String returns the write mode's name.
func (w WriteMode) String() string {
	if w == WriteAppend {
		return "append"
	}
	return "truncate"
}
