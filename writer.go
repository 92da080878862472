package rixio

// WriteFileText writes text to path in one operation: open with the given
// write mode, write, flush, close. A flush failure is reported; the close
// never fails.
func (x *FS) WriteFileText(path, text string, mode WriteMode) error {
	f, err := x.Open(path, mode.fileMode(), TypeText)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.WriteText(text); err != nil {
		return err
	}
	return f.Flush()
}

// WriteFileBinary writes data to path in one operation, like
// WriteFileText.
func (x *FS) WriteFileBinary(path string, data []byte, mode WriteMode) error {
	f, err := x.Open(path, mode.fileMode(), TypeBinary)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.WriteBytes(data); err != nil {
		return err
	}
	return f.Flush()
}

// WriteFileText writes text to path on the native OS filesystem.
func WriteFileText(path, text string, mode WriteMode) error {
	return defaultFS.WriteFileText(path, text, mode)
}

// WriteFileBinary writes data to path on the native OS filesystem.
func WriteFileBinary(path string, data []byte, mode WriteMode) error {
	return defaultFS.WriteFileBinary(path, data, mode)
}
