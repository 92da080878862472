package rixio

// ReadFileText opens path for reading, returns its whole content as text,
// and closes it. Failures from the open or the read are returned as-is.
func (x *FS) ReadFileText(path string) (string, error) {
	f, err := x.Open(path, ModeRead, TypeText)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return f.ReadAllText()
}

// ReadFileBinary opens path for reading, returns its whole content as a
// Buffer, and closes it.
func (x *FS) ReadFileBinary(path string) (*Buffer, error) {
	f, err := x.Open(path, ModeRead, TypeBinary)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadAllBytes()
}

// TryReadFileText is ReadFileText with every error converted into an
// absent result. This is the only place besides Close where the library
// intentionally swallows errors; callers needing failure detail must use
// ReadFileText.
func (x *FS) TryReadFileText(path string) (string, bool) {
	text, err := x.ReadFileText(path)
	if err != nil {
		return "", false
	}
	return text, true
}

// TryReadFileBinary is ReadFileBinary with every error converted into an
// absent result.
func (x *FS) TryReadFileBinary(path string) (*Buffer, bool) {
	buf, err := x.ReadFileBinary(path)
	if err != nil {
		return nil, false
	}
	return buf, true
}

// ReadFileText reads the whole file at path on the native OS filesystem as
// text.
func ReadFileText(path string) (string, error) {
	return defaultFS.ReadFileText(path)
}

// ReadFileBinary reads the whole file at path on the native OS filesystem
// into a Buffer.
func ReadFileBinary(path string) (*Buffer, error) {
	return defaultFS.ReadFileBinary(path)
}

// TryReadFileText reads the whole file as text, reporting absence instead
// of failing.
func TryReadFileText(path string) (string, bool) {
	return defaultFS.TryReadFileText(path)
}

// TryReadFileBinary reads the whole file into a Buffer, reporting absence
// instead of failing.
func TryReadFileBinary(path string) (*Buffer, bool) {
	return defaultFS.TryReadFileBinary(path)
}
