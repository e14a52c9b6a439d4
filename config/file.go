// Copyright (c) 2026 Cooper Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"
	"io/fs"
	"sync"
)

// FileReader is an io.Reader that handles opening a file for reading automatically.
type FileReader struct {
	path string

	openOnce sync.Once
	openErr  error
	fs       fs.FS
	file     io.ReadCloser
}

// NewFileReader configures a FileReader.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fs:   fsys,
	}
}

// Read implements the io.Reader interface. If opening the file fails
// the same error is returned from every subsequent call.
func (r *FileReader) Read(b []byte) (int, error) {
	r.openOnce.Do(func() {
		r.file, r.openErr = r.fs.Open(r.path)
	})
	if r.openErr != nil {
		return 0, r.openErr
	}
	return r.file.Read(b)
}

// Close implements the io.Closer interface.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}
