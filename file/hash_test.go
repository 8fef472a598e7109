package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	tmpDir := t.TempDir()

	emptyFile := filepath.Join(tmpDir, "empty.txt")
	os.WriteFile(emptyFile, []byte{}, 0644)

	helloFile := filepath.Join(tmpDir, "hello.txt")
	os.WriteFile(helloFile, []byte("hello world"), 0644)

	subDir := filepath.Join(tmpDir, "subdir")
	os.Mkdir(subDir, 0755)

	tests := []struct {
		name     string
		path     string
		wantHash string
		wantErr  error
	}{
		{
			name:     "empty file",
			path:     emptyFile,
			wantHash: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "hello world file",
			path:     helloFile,
			wantHash: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name:    "directory returns error",
			path:    subDir,
			wantErr: ErrExpectedFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := Hash(tt.path)
			if err != tt.wantErr {
				t.Fatalf("Hash() error = %v, want %v", err, tt.wantErr)
			}
			if gotHash != tt.wantHash {
				t.Errorf("Hash() = %v, want %v", gotHash, tt.wantHash)
			}
		})
	}

	if _, err := Hash(filepath.Join(tmpDir, "nonexistent.txt")); !os.IsNotExist(err) {
		t.Errorf("Hash(missing) error = %v, want not-exist", err)
	}
}

func TestHashReader(t *testing.T) {
	got, err := HashReader(strings.NewReader("hello world"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9" {
		t.Errorf("HashReader() = %v", got)
	}
}

func TestHashFiles(t *testing.T) {
	root := makeTree(t, "a", "b", "c/d")
	os.WriteFile(filepath.Join(root, "same1"), []byte("dup"), 0o644)
	os.WriteFile(filepath.Join(root, "same2"), []byte("dup"), 0o644)

	paths, err := AllFilesRecursive(root, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	hashes, err := HashFiles(context.Background(), paths)
	if err != nil {
		t.Fatalf("HashFiles() error = %v", err)
	}
	if len(hashes) != len(paths) {
		t.Fatalf("got %d hashes, want %d", len(hashes), len(paths))
	}
	if hashes[filepath.Join(root, "same1")] != hashes[filepath.Join(root, "same2")] {
		t.Error("identical content hashed differently")
	}
	if hashes[filepath.Join(root, "a")] == hashes[filepath.Join(root, "b")] {
		t.Error("different content hashed the same")
	}

	if _, err := HashFiles(context.Background(), []string{filepath.Join(root, "missing")}); err == nil {
		t.Error("HashFiles(missing) expected error")
	}
}

func TestHashFiles_Canceled(t *testing.T) {
	root := makeTree(t, "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := HashFiles(ctx, []string{filepath.Join(root, "a")}); err == nil {
		t.Error("HashFiles(canceled) expected error")
	}
}

func TestMimeType(t *testing.T) {
	root := t.TempDir()
	txt := filepath.Join(root, "notes")
	os.WriteFile(txt, []byte("plain words\n"), 0o644)

	got, err := MimeType(txt)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "text/plain") {
		t.Errorf("MimeType() = %q, want text/plain", got)
	}
}
