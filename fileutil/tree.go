package fileutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Copy the contents of the directory src into dst, which must already exist.
// Missing subdirectories are created and existing ones are merged into, but
// an existing file is never overwritten: the copy stops with ErrExists, and
// anything copied so far stays in place.
func CopyDirectory(src, dst string) error {
	if !isDir(dst) {
		return errors.Wrapf(ErrNotDirectory, "copy target %s", dst)
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrap(err, "read source directory")
	}
	for _, entry := range entries {
		child := filepath.Join(src, entry.Name())
		target := filepath.Join(dst, entry.Name())

		// Stat rather than entry.Type() so symlinks are followed
		info, err := os.Stat(child)
		if err != nil {
			return errors.Wrapf(err, "stat %s", child)
		}
		switch {
		case info.IsDir():
			if targetInfo, err := os.Stat(target); err == nil {
				if !targetInfo.IsDir() {
					return errors.Wrapf(ErrNotDirectory, "copy target %s", target)
				}
			} else if err := os.Mkdir(target, info.Mode().Perm()); err != nil {
				return errors.Wrapf(err, "create %s", target)
			}
			if err := CopyDirectory(child, target); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if exists(target) {
				return errors.Wrapf(ErrExists, "copy target %s", target)
			}
			if err := Copy(child, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// Remove path and, for a directory, everything in it. A path that doesn't
// exist is already deleted, so that isn't an error.
func Delete(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "delete %s", path)
	}
	return nil
}

// Remove everything inside the directory at path, leaving the directory
// itself. Every child is attempted even if some fail; the first failure is
// returned.
func ClearDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "clear directory")
	}
	if !info.IsDir() {
		return errors.Wrapf(ErrNotDirectory, "clear %s", path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return errors.Wrap(err, "read directory")
	}
	var first error
	for _, entry := range entries {
		if err := Delete(filepath.Join(path, entry.Name())); err != nil && first == nil {
			first = err
		}
	}
	return first
}
