// Package rixio provides whole-file reading and writing backed by an owning
// byte buffer and a mode-checked file handle.
//
// The package is built around two types. Buffer is an owning, resizable byte
// container with text helpers and typed fixed-layout read/write access. File
// is a handle bound to a path, an open mode (read, write, append,
// read-write), and a content type (text or binary); it exposes whole-file
// read and write operations and enforces the mode on every call.
//
// Convenience functions cover the common cases without handle management:
//
//	text, err := rixio.ReadFileText(path)
//	err = rixio.WriteFileText(path, "hello", rixio.WriteTruncate)
//
// All operations go through an FS, a thin wrapper over a go-billy filesystem.
// The package-level functions use a native OS backend; NewInMemoryFS returns
// a backend that never touches disk, which is useful in tests:
//
//	fsys := rixio.NewInMemoryFS()
//	err := fsys.WriteFileText("a.txt", "hello", rixio.WriteTruncate)
//
// Every operation is synchronous and blocking. Neither File nor Buffer is
// safe for concurrent use without external synchronization.
package rixio
