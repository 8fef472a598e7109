package file

import "github.com/gabriel-vasile/mimetype"

// MimeType sniffs the content of the file at path and returns its MIME type,
// for example "application/gzip" or "text/plain; charset=utf-8".
func MimeType(path string) (string, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}
