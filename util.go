package rixio

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// DefaultTempPrefix is the prefix TempPath uses when given an empty one.
const DefaultTempPrefix = "rixio"

// TempPath returns a fresh path under the system temp directory, shaped
// <prefix>_<timestamp>_<random>.tmp. The file is not created. The
// timestamp-plus-random combination makes collisions effectively
// impossible, but uniqueness is not formally guaranteed.
func TempPath(prefix string) string {
	if prefix == "" {
		prefix = DefaultTempPrefix
	}
	name := fmt.Sprintf("%s_%d_%d.tmp", prefix, time.Now().UnixNano(), rand.Uint64())
	return filepath.Join(os.TempDir(), name)
}

// PathExists reports whether path exists on the native OS filesystem.
// It never fails; any OS error reports false.
func PathExists(path string) bool {
	return defaultFS.Exists(path)
}

// PathSize returns the size in bytes of the file at path on the native OS
// filesystem. It fails if the OS cannot report a size.
func PathSize(path string) (int64, error) {
	return defaultFS.Size(path)
}

// Remove deletes the file at path on the native OS filesystem.
func Remove(path string) error {
	return defaultFS.Remove(path)
}
