package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nwrobel/gocommons/file"
)

// member is one filesystem object to store in an archive.
type member struct {
	path string      // location on disk
	name string      // slash separated name inside the archive
	info os.FileInfo // from Lstat, so symlinks are reported as such
}

// members expands the inputs into archive members. Each input is stored
// under its base name; directories contribute themselves followed by their
// whole tree in sorted order.
func members(inputs []string) ([]member, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	var out []member
	for _, in := range inputs {
		in = filepath.Clean(in)
		info, err := os.Lstat(in)
		if err != nil {
			return nil, err
		}
		base := file.Filename(in)
		out = append(out, member{path: in, name: base, info: info})
		if !info.IsDir() {
			continue
		}
		children, err := file.AllFilesAndDirectoriesRecursive(in, file.ListOptions{})
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			ci, err := os.Lstat(child)
			if err != nil {
				return nil, err
			}
			rel, err := filepath.Rel(in, child)
			if err != nil {
				return nil, err
			}
			out = append(out, member{path: child, name: base + "/" + filepath.ToSlash(rel), info: ci})
		}
	}
	return out, nil
}

// writeAtomic streams an archive into a uniquely named temporary file beside
// out and renames it into place when write succeeds.
func writeAtomic(out string, write func(w io.Writer) error) (err error) {
	tmp := fmt.Sprintf("%s.%s.tmp", out, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, out)
}

// CompressToArchive compresses the given files and directories into a single
// archive at archiveOutFilePath. The parent directory of the archive is
// created when missing.
//
//	CompressToArchive(ctx, []string{"/srv/logs"}, "/backup/logs.tar.gz", TypeGz)
func CompressToArchive(ctx context.Context, inputs []string, archiveOutFilePath string, archiveType Type) error {
	if archiveType == "" {
		archiveType = TypeGz
	}
	parent := file.ParentDirectory(archiveOutFilePath, file.ListOptions{})
	if !file.DirectoryExists(parent) {
		if err := file.CreateDirectory(parent); err != nil {
			return fmt.Errorf("create archive directory: %w", err)
		}
	}

	switch archiveType {
	case TypeGz:
		return createTar(inputs, archiveOutFilePath, compressGzip)
	case TypeZstd:
		return createTar(inputs, archiveOutFilePath, compressZstd)
	case TypeTar:
		return createTar(inputs, archiveOutFilePath, compressNone)
	case TypeZip:
		return CreateZip(inputs, archiveOutFilePath)
	case Type7z:
		return Create7z(ctx, inputs, archiveOutFilePath)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedType, archiveType)
}
