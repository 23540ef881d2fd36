package u

import (
	"errors"
	"io/fs"
	"os"
)

// FileExists returns true if path exists and is a regular file
func FileExists(path string) bool {
	st, err := os.Lstat(path)
	return err == nil && st.Mode().IsRegular()
}

// ReadFileMaybe is like os.ReadFile but a missing file is not an error.
// exists is false if the file doesn't exist.
func ReadFileMaybe(path string) (d []byte, exists bool, err error) {
	d, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return d, true, nil
}
