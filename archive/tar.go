package archive

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type compressor func(w io.Writer) (io.WriteCloser, error)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compressNone(w io.Writer) (io.WriteCloser, error) { return nopWriteCloser{w}, nil }

func compressGzip(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, gzip.BestCompression)
}

func compressZstd(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
}

// CreateTarArchive writes an uncompressed tar of inputs to out.
func CreateTarArchive(inputs []string, out string) error {
	return createTar(inputs, out, compressNone)
}

func createTar(inputs []string, out string, compress compressor) error {
	ms, err := members(inputs)
	if err != nil {
		return err
	}
	return writeAtomic(out, func(w io.Writer) error {
		cw, err := compress(w)
		if err != nil {
			return err
		}
		tw := tar.NewWriter(cw)
		for _, m := range ms {
			if err := addTarMember(tw, m); err != nil {
				cw.Close()
				return fmt.Errorf("add %s: %w", m.path, err)
			}
		}
		if err := tw.Close(); err != nil {
			cw.Close()
			return err
		}
		return cw.Close()
	})
}

func addTarMember(tw *tar.Writer, m member) error {
	var link string
	if m.info.Mode()&os.ModeSymlink != 0 {
		var err error
		if link, err = os.Readlink(m.path); err != nil {
			return err
		}
	}
	header, err := tar.FileInfoHeader(m.info, link)
	if err != nil {
		return err
	}
	header.Name = m.name
	if m.info.IsDir() {
		header.Name += "/"
	}
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if !m.info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(m.path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(tw, f)
	return err
}

// tarFile is an open tar archive. body is the decompressed stream tr reads
// from.
type tarFile struct {
	tr   *tar.Reader
	body io.Reader
	closers
}

// openTar opens a tar archive, transparently decompressing gzip or zstd
// content. The compression is sniffed from the file, not its extension.
func openTar(path string) (*tarFile, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := decompressor(mtype, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &tarFile{tr: tar.NewReader(rc), body: rc, closers: closers{rc, f}}, nil
}

func decompressor(mtype *mimetype.MIME, r io.Reader) (io.ReadCloser, error) {
	switch {
	case mtype.Is("application/gzip"):
		return gzip.NewReader(r)
	case mtype.Is("application/zstd"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	}
	return io.NopCloser(r), nil
}

type closers []io.Closer

func (c closers) Close() error {
	var errs []error
	for _, cl := range c {
		errs = append(errs, cl.Close())
	}
	return errors.Join(errs...)
}

// safeJoin joins an archive entry name onto dest and fails when the result
// would land outside dest.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !within(dest, target) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return target, nil
}

// checkLink fails when a symlink created at target would point outside
// dest. Absolute link targets are always refused.
func checkLink(dest, target, linkname string) error {
	if filepath.IsAbs(linkname) || strings.HasPrefix(linkname, "/") {
		return fmt.Errorf("%w: %s links to %s", ErrUnsafePath, target, linkname)
	}
	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(linkname))
	if !within(dest, resolved) {
		return fmt.Errorf("%w: %s links to %s", ErrUnsafePath, target, linkname)
	}
	return nil
}

// checkParents fails when target, or any directory between dest and target,
// already exists as a symlink. Writing through one could land outside dest.
func checkParents(dest, target string) error {
	dest = filepath.Clean(dest)
	rel, err := filepath.Rel(dest, target)
	if err != nil {
		return err
	}
	if rel == "." {
		return nil
	}
	cur := dest
	for _, part := range strings.Split(rel, string(os.PathSeparator)) {
		cur = filepath.Join(cur, part)
		info, err := os.Lstat(cur)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("%w: %s passes through symlink %s", ErrUnsafePath, target, cur)
		}
	}
	return nil
}

func within(dest, path string) bool {
	dest = filepath.Clean(dest)
	return path == dest || strings.HasPrefix(path, dest+string(os.PathSeparator))
}

// dirTimes holds directory modification times until the directory contents
// are written.
type dirTimes []dirTime

type dirTime struct {
	path string
	mod  time.Time
}

func (d *dirTimes) add(path string, mod time.Time) {
	*d = append(*d, dirTime{path: path, mod: mod})
}

// restore applies the recorded times, deepest directories first.
func (d dirTimes) restore() error {
	for i := len(d) - 1; i >= 0; i-- {
		if err := os.Chtimes(d[i].path, d[i].mod, d[i].mod); err != nil {
			return err
		}
	}
	return nil
}

// ExtractTar unpacks a tar, tar.gz or tar.zst archive into dest, creating
// dest if needed. Directories, regular files and symlinks are restored along
// with their modification times. Entries that escape dest, symlinks pointing
// outside it and entries written through a symlink fail with ErrUnsafePath.
func ExtractTar(ctx context.Context, archivePath, dest string) error {
	tf, err := openTar(archivePath)
	if err != nil {
		return err
	}
	defer tf.Close()

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	var dirs dirTimes
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		header, err := tf.tr.Next()
		if err == io.EOF {
			return dirs.restore()
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", archivePath, err)
		}
		target, err := safeJoin(dest, header.Name)
		if err != nil {
			return err
		}
		if err := checkParents(dest, target); err != nil {
			return err
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			dirs.add(target, header.ModTime)
		case tar.TypeReg:
			if err := writeEntry(target, tf.tr, header.FileInfo().Mode().Perm()); err != nil {
				return err
			}
			if err := os.Chtimes(target, header.ModTime, header.ModTime); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := checkLink(dest, target, header.Linkname); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			if err := os.Symlink(header.Linkname, target); err != nil {
				return err
			}
		}
	}
}

func writeEntry(target string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// verifyTar reads every entry and then the rest of the decompressed stream,
// so a gzip or zstd checksum at the end of the file is checked too.
func verifyTar(ctx context.Context, path string) error {
	tf, err := openTar(path)
	if err != nil {
		return err
	}
	defer tf.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		header, err := tf.tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := io.Copy(io.Discard, tf.tr); err != nil {
			return fmt.Errorf("read %s: %s: %w", path, header.Name, err)
		}
	}
	if _, err := io.Copy(io.Discard, tf.body); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func listTar(path string) (Manifest, error) {
	tf, err := openTar(path)
	if err != nil {
		return Manifest{}, err
	}
	defer tf.Close()

	var m Manifest
	for {
		header, err := tf.tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Manifest{}, fmt.Errorf("read %s: %w", path, err)
		}
		m.Add(Entry{
			Name:     strings.TrimSuffix(header.Name, "/"),
			Size:     header.Size,
			Modified: header.ModTime,
			IsDir:    header.Typeflag == tar.TypeDir,
		})
	}
	m.Sort()
	return m, nil
}
