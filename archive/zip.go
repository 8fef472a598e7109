package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/flate"
)

// CreateZip writes inputs into a deflate compressed zip at out. Each input is
// stored under its base name and directories keep their layout.
func CreateZip(inputs []string, out string) error {
	ms, err := members(inputs)
	if err != nil {
		return err
	}
	return writeAtomic(out, func(w io.Writer) error {
		zw := zip.NewWriter(w)
		zw.RegisterCompressor(zip.Deflate, func(dst io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(dst, flate.BestCompression)
		})
		for _, m := range ms {
			if err := addZipMember(zw, m); err != nil {
				zw.Close()
				return fmt.Errorf("add %s: %w", m.path, err)
			}
		}
		return zw.Close()
	})
}

func addZipMember(zw *zip.Writer, m member) error {
	header, err := zip.FileInfoHeader(m.info)
	if err != nil {
		return err
	}
	header.Name = m.name
	if m.info.IsDir() {
		header.Name += "/"
		_, err = zw.CreateHeader(header)
		return err
	}
	if !m.info.Mode().IsRegular() {
		// symlinks and devices have no portable zip representation
		return nil
	}
	header.Method = zip.Deflate
	writer, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	f, err := os.Open(m.path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(writer, f)
	return err
}

// ExtractZip unpacks a zip archive into dest.
func ExtractZip(ctx context.Context, archivePath, dest string) error {
	zrc, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer zrc.Close()

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	var dirs dirTimes
	for _, f := range zrc.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return err
		}
		if err := checkParents(dest, target); err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			dirs.add(target, f.Modified)
			continue
		}
		if err := extractZipFile(f, target); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}
	return dirs.restore()
}

func extractZipFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	perm := f.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	if err := writeEntry(target, rc, perm); err != nil {
		return err
	}
	return os.Chtimes(target, f.Modified, f.Modified)
}

// verifyZip decompresses every file entry so that its CRC-32 is checked.
func verifyZip(ctx context.Context, path string) error {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zrc.Close()

	for _, f := range zrc.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		_, err = io.Copy(io.Discard, rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

func listZip(path string) (Manifest, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return Manifest{}, err
	}
	defer zrc.Close()

	var m Manifest
	for _, f := range zrc.File {
		m.Add(Entry{
			Name:     strings.TrimSuffix(f.Name, "/"),
			Size:     int64(f.UncompressedSize64),
			Modified: f.Modified,
			IsDir:    f.FileInfo().IsDir(),
		})
	}
	m.Sort()
	return m, nil
}
