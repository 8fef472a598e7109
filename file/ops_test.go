package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestCreateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := CreateDirectory(dir); err != nil {
		t.Fatalf("CreateDirectory() error = %v", err)
	}
	if !DirectoryExists(dir) {
		t.Fatal("directory was not created")
	}
	if err := CreateDirectory(dir); !errors.Is(err, fs.ErrExist) {
		t.Errorf("CreateDirectory(existing) error = %v, want fs.ErrExist", err)
	}
}

func TestCopyFilesToDirectory_PreservesMetadata(t *testing.T) {
	src := makeTree(t, "one.txt", "two.txt")
	dest := t.TempDir()

	mtime := time.Date(2012, 1, 27, 2, 29, 33, 0, time.UTC)
	one := filepath.Join(src, "one.txt")
	os.Chtimes(one, mtime, mtime)
	os.Chmod(one, 0o600)

	err := CopyFilesToDirectory(join(src, "one.txt", "two.txt"), dest)
	if err != nil {
		t.Fatalf("CopyFilesToDirectory() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dest, "one.txt"))
	if err != nil {
		t.Fatalf("copy missing: %v", err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("ModTime = %v, want %v", info.ModTime(), mtime)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0o600 {
		t.Errorf("Mode = %v, want 0600", info.Mode().Perm())
	}
	data, _ := os.ReadFile(filepath.Join(dest, "two.txt"))
	if string(data) != "content of two.txt" {
		t.Errorf("content = %q", data)
	}
}

func TestCopyFilesToDirectory_Errors(t *testing.T) {
	src := makeTree(t, "one.txt", "dir/x")
	if err := CopyFilesToDirectory(join(src, "one.txt"), filepath.Join(src, "nope")); !errors.Is(err, ErrExpectedDirectory) {
		t.Errorf("missing dest error = %v, want ErrExpectedDirectory", err)
	}
	if err := CopyFilesToDirectory(join(src, "dir"), t.TempDir()); !errors.Is(err, ErrExpectedFile) {
		t.Errorf("directory source error = %v, want ErrExpectedFile", err)
	}
}

func TestCopyToDirectory(t *testing.T) {
	src := makeTree(t, "test-dir/test-file.txt", "test-dir/nested/inner.txt")
	dest := t.TempDir()

	if err := CopyToDirectory(filepath.Join(src, "test-dir"), dest); err != nil {
		t.Fatalf("CopyToDirectory(dir) error = %v", err)
	}
	for _, rel := range []string{"test-dir/test-file.txt", "test-dir/nested/inner.txt"} {
		if !FileExists(filepath.Join(dest, filepath.FromSlash(rel))) {
			t.Errorf("%s not copied", rel)
		}
	}

	if err := CopyToDirectory(filepath.Join(src, "test-dir", "test-file.txt"), dest); err != nil {
		t.Fatalf("CopyToDirectory(file) error = %v", err)
	}
	if !FileExists(filepath.Join(dest, "test-file.txt")) {
		t.Error("file not copied")
	}
}

func TestCopyToDirectory_IntoSelf(t *testing.T) {
	src := makeTree(t, "test-dir/test-file.txt")
	dir := filepath.Join(src, "test-dir")

	if err := CopyToDirectory(dir, dir); !errors.Is(err, ErrCopyIntoSelf) {
		t.Errorf("CopyToDirectory(dir, itself) error = %v, want ErrCopyIntoSelf", err)
	}
	nested := filepath.Join(dir, "nested")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := CopyToDirectory(dir, nested); !errors.Is(err, ErrCopyIntoSelf) {
		t.Errorf("CopyToDirectory(dir, child) error = %v, want ErrCopyIntoSelf", err)
	}
	if err := CopyToDirectory(filepath.Join(dir, "test-file.txt"), dir); !errors.Is(err, ErrCopyIntoSelf) {
		t.Errorf("CopyToDirectory(file, own parent) error = %v, want ErrCopyIntoSelf", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "test-file.txt"))
	if err != nil || string(data) != "content of test-dir/test-file.txt" {
		t.Errorf("source was modified: %q, %v", data, err)
	}
}

func TestDelete(t *testing.T) {
	root := makeTree(t, "f.txt", "d/inner.txt", "g.txt", "e/x")
	f := filepath.Join(root, "f.txt")
	d := filepath.Join(root, "d")

	if err := DeleteFile(d); !errors.Is(err, ErrExpectedFile) {
		t.Errorf("DeleteFile(dir) error = %v, want ErrExpectedFile", err)
	}
	if err := DeleteDirectory(f); !errors.Is(err, ErrExpectedDirectory) {
		t.Errorf("DeleteDirectory(file) error = %v, want ErrExpectedDirectory", err)
	}
	if err := DeleteFile(f); err != nil || PathExists(f) {
		t.Errorf("DeleteFile() error = %v, exists = %v", err, PathExists(f))
	}
	if err := DeleteDirectory(d); err != nil || PathExists(d) {
		t.Errorf("DeleteDirectory() error = %v, exists = %v", err, PathExists(d))
	}
	if err := DeleteDirectory(d); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("DeleteDirectory(missing) error = %v, want os.ErrNotExist", err)
	}

	for _, p := range join(root, "g.txt", "e") {
		if err := DeletePath(p); err != nil || PathExists(p) {
			t.Errorf("DeletePath(%s) error = %v, exists = %v", p, err, PathExists(p))
		}
	}
}

func TestRenamePath(t *testing.T) {
	root := makeTree(t, "test-dir/test-file.txt")
	file := filepath.Join(root, "test-dir", "test-file.txt")

	newName := "new-name" + Extension(file)
	if err := RenamePath(file, newName); err != nil {
		t.Fatalf("RenamePath(file) error = %v", err)
	}
	if !FileExists(filepath.Join(root, "test-dir", newName)) {
		t.Error("renamed file not found in original parent")
	}

	if err := RenamePath(filepath.Join(root, "test-dir"), "new-dir-name"); err != nil {
		t.Fatalf("RenamePath(dir) error = %v", err)
	}
	if !DirectoryExists(filepath.Join(root, "new-dir-name")) {
		t.Error("renamed directory not found")
	}

	if err := RenamePath(filepath.Join(root, "new-dir-name"), ""); err != ErrEmptyName {
		t.Errorf("empty name error = %v", err)
	}
	if err := RenamePath(filepath.Join(root, "new-dir-name"), "x/y"); err != ErrNameHasSeparator {
		t.Errorf("separator error = %v", err)
	}
}

func TestClearFileContents(t *testing.T) {
	root := makeTree(t, "log.txt")
	f := filepath.Join(root, "log.txt")
	if err := ClearFileContents(f); err != nil {
		t.Fatalf("ClearFileContents() error = %v", err)
	}
	info, err := os.Stat(f)
	if err != nil || info.Size() != 0 {
		t.Errorf("after clear: info = %v, err = %v", info, err)
	}
	if err := ClearFileContents(filepath.Join(root, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing error = %v, want os.ErrNotExist", err)
	}
}

func TestWriteToFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteToFile(f, "one line"); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(f); string(data) != "one line\n" {
		t.Errorf("single = %q", data)
	}

	if err := WriteToFile(f, "a", "ünïcode", "c"); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(f); string(data) != "a\nünïcode\nc\n" {
		t.Errorf("list = %q", data)
	}
}
