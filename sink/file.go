package sink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// ErrNilFs is returned by OpenFile when no filesystem is given
var ErrNilFs = errors.New("nil filesystem")

// File is a sink appending to a file. Lines are written through
// unbuffered so a crash never loses an already emitted line.
type File struct {
	name string
	file afero.File
}

// OpenFile opens name for appending on fs, creating it and its parent
// directories if needed. Use afero.NewOsFs() for the real filesystem.
// The caller owns the returned File and must Close it.
func OpenFile(fs afero.Fs, name string) (*File, error) {
	if fs == nil {
		return nil, ErrNilFs
	}

	dir := filepath.Dir(name)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &File{name: name, file: f}, nil
}

// Name returns the path the file was opened with
func (f *File) Name() string {
	return f.name
}

// Write appends p to the file
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Sync commits the file contents to stable storage
func (f *File) Sync() error {
	return f.file.Sync()
}

// Close syncs and closes the file
func (f *File) Close() error {
	return multierr.Combine(f.file.Sync(), f.file.Close())
}
