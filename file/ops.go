package file

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CreateDirectory creates folderPath along with any missing parents.
// It fails with fs.ErrExist when something is already at folderPath.
func CreateDirectory(folderPath string) error {
	if _, err := os.Lstat(folderPath); err == nil {
		return &fs.PathError{Op: "mkdir", Path: folderPath, Err: fs.ErrExist}
	}
	return os.MkdirAll(folderPath, 0o755)
}

// CopyFilesToDirectory copies each source file into destDir. Permission bits
// and modification times are carried over to the copies.
func CopyFilesToDirectory(srcFiles []string, destDir string) error {
	if !DirectoryExists(destDir) {
		return fmt.Errorf("%s: %w", destDir, ErrExpectedDirectory)
	}
	for _, src := range srcFiles {
		if err := copyFile(src, filepath.Join(destDir, Filename(src))); err != nil {
			return err
		}
	}
	return nil
}

// CopyToDirectory copies a file, or a whole directory tree, into destDir.
// A directory "a" copied into "b" ends up at "b/a".
func CopyToDirectory(path, destDir string) error {
	if !DirectoryExists(destDir) {
		return fmt.Errorf("%s: %w", destDir, ErrExpectedDirectory)
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	target := filepath.Join(destDir, Filename(path))
	if within(path, target) {
		return fmt.Errorf("copy %s into %s: %w", path, destDir, ErrCopyIntoSelf)
	}
	if !info.IsDir() {
		return copyFile(path, target)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		dst := filepath.Join(target, rel)
		if d.IsDir() {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(dst, fi.Mode().Perm())
		}
		return copyFile(p, dst)
	})
}

// copyFile copies src to dst, keeping the mode bits and timestamps of src.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", src, ErrExpectedFile)
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// DeleteFile removes a single file. Directories are refused.
func DeleteFile(filePath string) error {
	info, err := os.Lstat(filePath)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", filePath, ErrExpectedFile)
	}
	return os.Remove(filePath)
}

// DeleteDirectory removes directoryPath and everything below it.
func DeleteDirectory(directoryPath string) error {
	info, err := os.Lstat(directoryPath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", directoryPath, ErrExpectedDirectory)
	}
	return os.RemoveAll(directoryPath)
}

// DeletePath removes a file or a directory tree.
func DeletePath(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// RenamePath gives the file or directory at path a new name, keeping it in
// the same parent directory.
func RenamePath(path, newName string) error {
	if newName == "" {
		return ErrEmptyName
	}
	if strings.ContainsRune(newName, filepath.Separator) || strings.ContainsRune(newName, '/') {
		return ErrNameHasSeparator
	}
	return os.Rename(path, filepath.Join(filepath.Dir(filepath.Clean(path)), newName))
}

// ClearFileContents empties the file by deleting it and creating a new 0 byte
// file in its place. The file must already exist.
func ClearFileContents(path string) error {
	if err := DeleteFile(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// WriteToFile writes lines to filePath as UTF-8, one item per line, each
// terminated by "\n". An existing file is truncated.
func WriteToFile(filePath string, lines ...string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
