// Package fileutil copies, deletes, hashes and lists files and directory trees.
//
// Operations return errors. The few *File variants that report a bool instead
// exist for callers that only care whether something worked; they log the
// swallowed error at debug level.
package fileutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/support/internal/logging"
	"github.com/pkg/errors"
)

var (
	ErrExists       = errors.New("target already exists")
	ErrNotDirectory = errors.New("not a directory")
	ErrNotFile      = errors.New("not a regular file")
)

// Copy the contents of the file at src into a new or truncated file at dst.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "open source")
	}
	defer in.Close()
	return CopyFrom(in, dst)
}

// Copy everything from r into a new or truncated file at dst.
func CopyFrom(r io.Reader, dst string) (err error) {
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "create target")
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close target")
		}
	}()
	if _, err = io.Copy(out, r); err != nil {
		return errors.Wrapf(err, "copy to %s", dst)
	}
	return nil
}

// Copy the contents of the file at src into w.
func CopyTo(src string, w io.Writer) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "open source")
	}
	defer in.Close()
	if _, err := io.Copy(w, in); err != nil {
		return errors.Wrapf(err, "copy from %s", src)
	}
	return nil
}

// Like Copy, but only reports success.
func CopyFile(src, dst string) bool {
	if err := Copy(src, dst); err != nil {
		logging.Logger().Debug("copy file failed", "src", src, "dst", dst, "err", err)
		return false
	}
	return true
}

// Extension of a file name without the dot, such as "pdf". The second result
// is false if the name has no extension, including names that end in a dot.
func Extension(name string, lower bool) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return "", false
	}
	ext := name[i+1:]
	if lower {
		ext = strings.ToLower(ext)
	}
	return ext, true
}

// Extension of the regular file at path. Directories and missing files have
// no extension.
func FileExtension(path string, lower bool) (string, bool) {
	if !isFile(path) {
		return "", false
	}
	return Extension(filepath.Base(path), lower)
}

// Name with its extension removed. Only the last extension goes, so
// "a.tar.gz" becomes "a.tar", and a hidden file name like ".profile" becomes
// "".
func NameWithoutExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name
	}
	return name[:i]
}

// Base name of the regular file at path, without its extension.
func FileNameWithoutExtension(path string) (string, bool) {
	if !isFile(path) {
		return "", false
	}
	return NameWithoutExtension(filepath.Base(path)), true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
