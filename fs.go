package rixio

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// FS binds the library's operations to a go-billy filesystem backend.
// Paths are passed through to the backend opaquely; no parsing or
// validation happens beyond what the backend performs.
type FS struct {
	fs billy.Filesystem
}

// nativeFS exposes the whole OS filesystem through billy. The embedded
// zero-value ChrootOS forwards every call straight to the os package, so
// paths reach the OS untouched; only Chroot and Root need overriding to
// drop the chroot boundary.
type nativeFS struct {
	osfs.ChrootOS
}

func (n *nativeFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

func (n *nativeFS) Root() string {
	return "/"
}

// NewFS creates an FS using the given go-billy filesystem.
func NewFS(fsys billy.Filesystem) *FS {
	return &FS{fs: fsys}
}

// NewOSFS creates an FS backed by the native OS filesystem. Paths are
// resolved exactly as the OS resolves them.
func NewOSFS() *FS {
	return &FS{fs: &nativeFS{}}
}

// NewInMemoryFS creates an FS backed by an in-memory filesystem. Nothing
// touches disk; useful in tests.
func NewInMemoryFS() *FS {
	return &FS{fs: memfs.New()}
}

// Raw returns the underlying go-billy filesystem, for callers that need
// backend operations this package does not wrap.
func (x *FS) Raw() billy.Filesystem {
	return x.fs
}

// Exists reports whether path refers to an existing file or directory.
// It never fails: any error from the backend, not only "not exist",
// reports false.
func (x *FS) Exists(path string) bool {
	_, err := x.fs.Stat(path)
	return err == nil
}

// Size returns the size in bytes of the file at path. It fails if the
// backend cannot report a size, e.g. for a missing file.
func (x *FS) Size(path string) (int64, error) {
	info, err := x.fs.Stat(path)
	if err != nil {
		return 0, WrapErrorf(err, "rixio: size %q", path)
	}
	return info.Size(), nil
}

// Remove deletes the file at path.
func (x *FS) Remove(path string) error {
	if err := x.fs.Remove(path); err != nil {
		return WrapErrorf(err, "rixio: remove %q", path)
	}
	return nil
}

// defaultFS backs the package-level convenience functions.
var defaultFS = NewOSFS()

// defaultPerm is the permission bits used when open creates a file.
const defaultPerm os.FileMode = 0o644
