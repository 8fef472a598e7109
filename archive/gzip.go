package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// ExtractSingleFileGZ decompresses a .gz holding one file (not a tarball)
// into outputPath.
func ExtractSingleFileGZ(archivePath, outputPath string) error {
	in, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer in.Close()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("open %s: %w", archivePath, err)
	}
	defer zr.Close()

	return writeAtomic(outputPath, func(w io.Writer) error {
		_, err := io.Copy(w, zr)
		return err
	})
}

// DecompressSingleGZFile is an alias for ExtractSingleFileGZ.
func DecompressSingleGZFile(gzipFilePath, decompressedFilePath string) error {
	return ExtractSingleFileGZ(gzipFilePath, decompressedFilePath)
}
