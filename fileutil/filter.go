package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/support/natural"
	"github.com/pkg/errors"
)

type Filter interface {
	Accept(path string) bool
}

type FilterFunc func(path string) bool

func (f FilterFunc) Accept(path string) bool {
	return f(path)
}

// Accepts everything, or with CheckExists, everything that exists.
type ExistFilter struct {
	CheckExists bool
}

func (f ExistFilter) Accept(path string) bool {
	if f.CheckExists {
		return exists(path)
	}
	return true
}

type DirectoryFilter struct {
	CheckExists bool
}

func (f DirectoryFilter) Accept(path string) bool {
	return isDir(path) && ExistFilter(f).Accept(path)
}

// Accepts regular files, optionally only those with the given extension. The
// extension is matched case insensitively and given without the dot.
type FileFilter struct {
	CheckExists bool
	Extension   string
}

func (f FileFilter) Accept(path string) bool {
	if !isFile(path) {
		return false
	}
	if f.Extension != "" {
		ext, ok := FileExtension(path, true)
		if !ok || ext != strings.ToLower(f.Extension) {
			return false
		}
	}
	return ExistFilter{CheckExists: f.CheckExists}.Accept(path)
}

// Paths of the entries in dir accepted by filter, in natural file name order.
// A nil filter accepts everything.
func List(dir string, filter Filter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "list")
	}
	var names []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if filter == nil || filter.Accept(path) {
			names = append(names, entry.Name())
		}
	}
	natural.SortFiles(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}
