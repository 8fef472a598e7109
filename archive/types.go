package archive

import (
	"fmt"
	"strings"
)

// Type selects the archive format written by CompressToArchive.
type Type string

const (
	TypeGz   Type = "gz"  // tar compressed with gzip
	Type7z   Type = "7z"  // 7-Zip via the 7z binary
	TypeZip  Type = "zip" // zip with deflate
	TypeZstd Type = "zst" // tar compressed with zstd
	TypeTar  Type = "tar" // uncompressed tar
)

// Types lists every supported Type.
var Types = []Type{TypeGz, Type7z, TypeZip, TypeZstd, TypeTar}

// ParseType converts a user supplied name to a Type. Common aliases such as
// "tgz", "gzip", "zstd" and "7zip" are accepted.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "gz", "gzip", "tgz", "tar.gz":
		return TypeGz, nil
	case "7z", "7zip":
		return Type7z, nil
	case "zip":
		return TypeZip, nil
	case "zst", "zstd", "tar.zst":
		return TypeZstd, nil
	case "tar":
		return TypeTar, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedType, s)
}
