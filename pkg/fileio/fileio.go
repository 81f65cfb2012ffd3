// Package fileio is the file I/O collaborator for framewire: a thin,
// testable read-file-to-bytes / write-bytes-to-file pair grounded on
// BinaryDataReader::readFileBinary in the source this was ported from,
// which returns an empty buffer plus a std::error_code distinguishing
// "no such file" from "other I/O error". Go's os/fs errors already carry
// that distinction, so this package just names the two cases the core
// cares about.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrNotFound means the path does not exist.
	ErrNotFound = errors.New("fileio: file not found")
	// ErrIO means the file exists but could not be read or written.
	ErrIO = errors.New("fileio: i/o error")
)

// ReadAll reads path fully into memory and hands the bytes off to the
// caller, mirroring readFileBinary's "release bytes to any sink"
// contract.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return data, nil
}

// WriteAll writes data to path, creating or truncating it, the
// write-side complement to ReadAll and to Writer.ReleaseBytes.
func WriteAll(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return nil
}
