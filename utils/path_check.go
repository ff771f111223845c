package common

import (
	"os"

	"github.com/pkg/errors"
)

// CheckReadable reports whether path names a regular file that can be opened.
// role is used in the error message ("color names", "input", ...).
func CheckReadable(path string, role string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s file", role)
	}
	if info.IsDir() {
		return errors.Errorf("%s file %s is a directory", role, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s file", role)
	}
	return f.Close()
}
