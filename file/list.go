package file

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// walkFilter decides whether a visited entry belongs in the result.
type walkFilter func(path string, d fs.DirEntry) bool

// collect walks root with fastwalk and returns every path accepted by keep,
// sorted. The root itself is never included. fastwalk invokes the callback
// from several goroutines, so the result slice is guarded.
func collect(root string, opts ListOptions, keep walkFilter) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrExpectedDirectory)
	}

	var (
		mu    sync.Mutex
		paths []string
	)
	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root || !keep(path, d) {
			return nil
		}
		mu.Lock()
		paths = append(paths, opts.render(path))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking path %s: %w", root, err)
	}
	slices.Sort(paths)
	return paths, nil
}

// isFile reports whether d is a regular file, following symlinks.
func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// AllFilesAndDirectoriesRecursive returns the paths of every file and folder
// below rootPath, recursively.
func AllFilesAndDirectoriesRecursive(rootPath string, opts ListOptions) ([]string, error) {
	return collect(rootPath, opts, func(string, fs.DirEntry) bool { return true })
}

// AllFilesRecursive returns the paths of every file below rootPath.
// Directories are not returned.
func AllFilesRecursive(rootPath string, opts ListOptions) ([]string, error) {
	return collect(rootPath, opts, isFile)
}

// FilesByExtension returns every file below rootPath whose extension matches
// any of exts. Extensions are given with the dot and compared exactly.
//
//	FilesByExtension("/music", []string{".mp3", ".flac"}, ListOptions{})
func FilesByExtension(rootPath string, exts []string, opts ListOptions) ([]string, error) {
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[e] = true
	}
	return collect(rootPath, opts, func(path string, d fs.DirEntry) bool {
		return want[Extension(path)] && isFile(path, d)
	})
}

// FilesContaining returns every file below rootPath whose name contains substr.
func FilesContaining(rootPath, substr string, opts ListOptions) ([]string, error) {
	return collect(rootPath, opts, func(path string, d fs.DirEntry) bool {
		return strings.Contains(d.Name(), substr) && isFile(path, d)
	})
}

// Glob matches pattern (which may use "**") against the tree under rootPath
// and returns the matches relative to rootPath.
func Glob(rootPath, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(rootPath), filepath.ToSlash(pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.FromSlash(m))
	}
	slices.Sort(out)
	return out, nil
}
