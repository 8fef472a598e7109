package file

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ExtendedPrefix marks a Windows extended-length path.
const ExtendedPrefix = `\\?\`

// ListOptions controls how listing functions render their results.
type ListOptions struct {
	// ExtendedPaths prefixes every returned path with ExtendedPrefix.
	ExtendedPaths bool
}

func (o ListOptions) render(p string) string {
	if o.ExtendedPaths {
		return ExtendedPrefix + p
	}
	return p
}

// IsValidPossibleFilepath reports whether p is a legal absolute path.
// The path does not have to exist.
func IsValidPossibleFilepath(p string) bool {
	return filepath.IsAbs(p)
}

// Filename returns the final element of path, extension included.
func Filename(path string) string {
	return filepath.Base(filepath.Clean(path))
}

// suffixIndex returns the index of the dot starting the final suffix of name,
// or -1. A leading dot (".bashrc") and a trailing dot ("file.") do not count.
func suffixIndex(name string) int {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return -1
	}
	return i
}

// Extension returns the final ".something" of the file name, dot included,
// or "" when the name has no extension.
//
//	Extension("/data/playlist.m3u.tar") == ".tar"
func Extension(path string) string {
	name := Filename(path)
	if i := suffixIndex(name); i >= 0 {
		return name[i:]
	}
	return ""
}

// BaseName returns the file name minus its final extension.
//
//	BaseName("/data/playlist.m3u.tar") == "playlist.m3u"
//	BaseName("/prog/connect.log") == "connect"
func BaseName(path string) string {
	name := Filename(path)
	if i := suffixIndex(name); i >= 0 {
		return name[:i]
	}
	return name
}

// ParentDirectory returns the directory containing path.
func ParentDirectory(path string, opts ListOptions) string {
	return opts.render(filepath.Dir(filepath.Clean(path)))
}

// JoinPaths joins a root path and a relative child and returns the absolute,
// cleaned result.
//
//	JoinPaths("/prog/temp", "../test.txt") == "/prog/test.txt"
func JoinPaths(path1, path2 string) string {
	joined := filepath.Join(path1, path2)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return joined
	}
	return abs
}

// FileExists reports whether path names an existing regular file (or a
// symlink to one). Directories return false.
func FileExists(path string) bool {
	return statMatches(path, func(fi os.FileInfo) bool { return fi.Mode().IsRegular() })
}

// DirectoryExists reports whether path names an existing directory.
func DirectoryExists(path string) bool {
	return statMatches(path, os.FileInfo.IsDir)
}

// PathExists reports whether anything exists at path.
func PathExists(path string) bool {
	return statMatches(path, func(os.FileInfo) bool { return true })
}

// statMatches stats path and applies ok. On Windows a failed lookup is
// retried with the extended-length prefix so overly long paths still resolve.
func statMatches(path string, ok func(os.FileInfo) bool) bool {
	if fi, err := os.Stat(path); err == nil && ok(fi) {
		return true
	}
	if runtime.GOOS != "windows" || strings.HasPrefix(path, ExtendedPrefix) {
		return false
	}
	fi, err := os.Stat(ExtendedPrefix + path)
	return err == nil && ok(fi)
}

// PathsOverlap reports whether either path is the other or lies beneath it.
// Relative paths are resolved against the working directory first.
func PathsOverlap(path1, path2 string) bool {
	return within(path1, path2) || within(path2, path1)
}

// within reports whether child is parent or lies beneath it.
func within(parent, child string) bool {
	p, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	c, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(p, c)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
