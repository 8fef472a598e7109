package archive

import "errors"

// Sentinel errors for package archive.
var (
	ErrUnsupportedType = errors.New("unsupported archive type")
	ErrUnsafePath      = errors.New("archive entry escapes destination")
	ErrNoInputs        = errors.New("no input paths given")
)
