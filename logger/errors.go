package logger

import "errors"

var (
	ErrLogDirNotFound  = errors.New("log directory does not exist")
	ErrInvalidLogLevel = errors.New("invalid log level")
)
