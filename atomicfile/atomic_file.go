package atomicfile

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// ErrCancelled is returned by calls subsequent to RemoveIfNotClosed()
	ErrCancelled = errors.New("cancelled")

	_ io.WriteCloser = &File{}
)

// DefaultPerm is used when the destination file doesn't exist yet
const DefaultPerm fs.FileMode = 0644

// File writes to a temporary file in the same directory as the
// destination and renames it over the destination on Close.
// Readers never see a partially written file.
type File struct {
	path string
	dir  string
	perm fs.FileMode
	tmp  *os.File
	err  error

	tmpPath string
}

// New creates a File that will replace path on Close.
// If path already exists, its permissions are preserved.
func New(path string) (*File, error) {
	dir, name := filepath.Split(path)
	if name == "" {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	perm := DefaultPerm
	if st, err := os.Stat(path); err == nil {
		perm = st.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &File{
		path:    path,
		dir:     dir,
		perm:    perm,
		tmp:     tmp,
		tmpPath: tmp.Name(),
	}, nil
}

// remember the first error and clean up the temp file
func (f *File) fail(err error) error {
	if err == nil {
		return nil
	}
	if f.err == nil {
		f.err = err
	}
	_ = f.Close()
	return err
}

func (f *File) Write(d []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmp.Write(d)
	return n, f.fail(err)
}

func (f *File) WriteString(s string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmp.WriteString(s)
	return n, f.fail(err)
}

func (f *File) closed() bool {
	return f.tmp == nil
}

// RemoveIfNotClosed removes the temp file if Close wasn't called yet.
// The destination is left untouched. Meant to be deferred.
// After Close it's a no-op.
func (f *File) RemoveIfNotClosed() {
	if f == nil || f.closed() {
		return
	}
	f.err = ErrCancelled
	_ = f.Close()
}

// Close flushes the temp file and renames it to the destination.
// Can be called multiple times, returns the first error.
func (f *File) Close() error {
	if f.closed() {
		return f.err
	}
	tmp := f.tmp
	f.tmp = nil

	errSync := tmp.Sync()
	errClose := tmp.Close()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(f.tmpPath)
		}
	}()

	if f.err != nil {
		return f.err
	}
	err := errSync
	if err == nil {
		err = errClose
	}
	if err == nil {
		err = os.Chmod(f.tmpPath, f.perm)
	}
	if err == nil {
		err = os.Rename(f.tmpPath, f.path)
		renamed = err == nil
		// syncing the directory is nice to have
		if d, _ := os.Open(f.dir); d != nil {
			_ = d.Sync()
			_ = d.Close()
		}
	}
	if f.err == nil {
		f.err = err
	}
	return f.err
}

// WriteFile replaces path with d atomically
func WriteFile(path string, d []byte) error {
	f, err := New(path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()
	if _, err = f.Write(d); err != nil {
		return err
	}
	return f.Close()
}
