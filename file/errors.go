package file

import "errors"

// Sentinel errors for package file.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")
	ErrEmptyName         = errors.New("new name must not be empty")
	ErrNameHasSeparator  = errors.New("new name must not contain a path separator")
	ErrCopyIntoSelf      = errors.New("destination is the source or lies inside it")
)
