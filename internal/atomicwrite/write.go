// Package atomicwrite provides functions to write files atomically.
package atomicwrite

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Permissions given to files that Write creates.
const defaultPerms os.FileMode = 0600

// Write atomically overwrites the file at filename with the content written by the
// given function.
// The file is created if it doesn't already exist; otherwise, its permissions are kept.
func Write(filename string, contentWriter func(io.Writer) error) error {
	perms := defaultPerms
	if info, err := os.Stat(filename); err == nil {
		perms = info.Mode().Perm()
	}
	// The temporary file must be on the same file system as the destination for the
	// rename to be atomic.
	tf, err := os.CreateTemp(filepath.Dir(filename), ".lineinput-atomic-write")
	if err != nil {
		return errors.Wrap(err, errString(filename))
	}
	name := tf.Name()
	fail := func(err error) error {
		tf.Close()
		os.Remove(name)
		return errors.Wrap(err, errString(filename))
	}
	if err = contentWriter(tf); err != nil {
		return fail(err)
	}
	if err = tf.Chmod(perms); err != nil {
		return fail(err)
	}
	if err = tf.Close(); err != nil {
		return fail(err)
	}
	if err = os.Rename(name, filename); err != nil {
		os.Remove(name)
		return errors.Wrap(err, errString(filename))
	}
	return nil
}

func errString(filename string) string { return "atomic write to " + filename + " failed" }
