package archive

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/nwrobel/gocommons/file"
)

// kind is the container format recognised from archive content.
type kind int

const (
	kindUnknown kind = iota
	kindTar          // plain, gzip or zstd compressed tar
	kindGzipFile     // gzip holding a single file
	kindZip
	kind7z
)

func detect(path string) (kind, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return kindUnknown, err
	}
	switch {
	case mtype.Is("application/x-tar"), mtype.Is("application/zstd"):
		return kindTar, nil
	case mtype.Is("application/gzip"):
		tarred, err := gzipHoldsTar(path)
		if err != nil {
			return kindUnknown, err
		}
		if tarred {
			return kindTar, nil
		}
		return kindGzipFile, nil
	case mtype.Is("application/x-7z-compressed"):
		return kind7z, nil
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return kindZip, nil
		}
	}
	return kindUnknown, fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
}

// gzipHoldsTar reports whether the decompressed stream starts with a tar
// header.
func gzipHoldsTar(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		return false, err
	}
	defer zr.Close()
	head, _ := bufio.NewReaderSize(zr, 512).Peek(262)
	return len(head) >= 262 && bytes.Equal(head[257:262], []byte("ustar")), nil
}

// Extract unpacks archivePath into dest. The format is recognised from the
// file content: tar (optionally gzip or zstd compressed), zip, 7z, or a
// single gzip compressed file, which is written to dest under the archive's
// name minus its final suffix.
func Extract(ctx context.Context, archivePath, dest string) error {
	k, err := detect(archivePath)
	if err != nil {
		return err
	}
	switch k {
	case kindTar:
		return ExtractTar(ctx, archivePath, dest)
	case kindZip:
		return ExtractZip(ctx, archivePath, dest)
	case kind7z:
		return DefaultSevenZip.Extract(ctx, archivePath, dest)
	case kindGzipFile:
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return err
		}
		return ExtractSingleFileGZ(archivePath, filepath.Join(dest, file.BaseName(archivePath)))
	}
	return ErrUnsupportedType
}

// List reads the entries of a tar or zip based archive. A single file .gz
// yields one entry named after the archive minus its suffix.
func List(archivePath string) (Manifest, error) {
	k, err := detect(archivePath)
	if err != nil {
		return Manifest{}, err
	}
	switch k {
	case kindTar:
		return listTar(archivePath)
	case kindZip:
		return listZip(archivePath)
	case kindGzipFile:
		return listGzip(archivePath)
	}
	return Manifest{}, fmt.Errorf("%w: cannot list %s", ErrUnsupportedType, archivePath)
}

func listGzip(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		return Manifest{}, err
	}
	defer zr.Close()
	n, err := io.Copy(io.Discard, zr)
	if err != nil {
		return Manifest{}, err
	}
	name := zr.Name
	if name == "" {
		name = file.BaseName(path)
	}
	var m Manifest
	m.Add(Entry{Name: name, Size: n, Modified: zr.ModTime})
	m.Sort()
	return m, nil
}

// Verify reads archivePath end to end and fails when its content is damaged:
// zip entries are checked against their CRC-32, gzip and zstd streams against
// their trailing checksums, and 7z archives with "7z t".
func Verify(ctx context.Context, archivePath string) error {
	k, err := detect(archivePath)
	if err != nil {
		return err
	}
	switch k {
	case kindTar:
		return verifyTar(ctx, archivePath)
	case kindZip:
		return verifyZip(ctx, archivePath)
	case kind7z:
		return DefaultSevenZip.Test(ctx, archivePath)
	case kindGzipFile:
		_, err := listGzip(archivePath)
		return err
	}
	return ErrUnsupportedType
}

// Contains reports whether archivePath holds an entry with the given name.
// Directory names may be given with or without a trailing slash.
func Contains(archivePath, name string) (bool, error) {
	m, err := List(archivePath)
	if err != nil {
		return false, err
	}
	name = filepath.ToSlash(filepath.Clean(name))
	for e := range m.Iterate {
		if e.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Summarize lists archivePath and aggregates the result.
func Summarize(archivePath string) (Summary, error) {
	m, err := List(archivePath)
	if err != nil {
		return Summary{}, err
	}
	return m.Summarize(archivePath)
}
