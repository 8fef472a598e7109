// Package logger configures a zap logger that writes every message to both a
// log file and the console, each output with its own minimum level.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nwrobel/gocommons/file"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel is the minimum importance a message needs to reach an output.
type LogLevel int

const (
	Debug LogLevel = iota + 1
	Info
	Warning
	Error
)

func (l LogLevel) zapLevel() (zapcore.Level, error) {
	switch l {
	case Debug:
		return zapcore.DebugLevel, nil
	case Info:
		return zapcore.InfoLevel, nil
	case Warning:
		return zapcore.WarnLevel, nil
	case Error:
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("%w: %d", ErrInvalidLogLevel, int(l))
}

// ParseLogLevel accepts debug, info, warn, warning and error in any case.
func ParseLogLevel(s string) (LogLevel, error) {
	var zl zapcore.Level
	if strings.EqualFold(s, "warning") {
		s = "warn"
	}
	if err := zl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
	switch zl {
	case zapcore.DebugLevel:
		return Debug, nil
	case zapcore.InfoLevel:
		return Info, nil
	case zapcore.WarnLevel:
		return Warning, nil
	case zapcore.ErrorLevel:
		return Error, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}

// CommonLogger owns a zap.Logger with a file output and a console output.
type CommonLogger struct {
	name    string
	logPath string
	file    *os.File
	fileLvl zap.AtomicLevel
	consLvl zap.AtomicLevel
	log     *zap.Logger
}

// New creates a logger named name that appends to logDir/logFilename and
// writes to stderr. Both outputs start at Info. logDir must already exist.
// When logFilename is empty the caller's source file name plus ".log" is
// used, so a logger created from main.go writes main.go.log.
func New(name, logDir, logFilename string) (*CommonLogger, error) {
	if !file.DirectoryExists(logDir) {
		return nil, fmt.Errorf("%w: %s", ErrLogDirNotFound, logDir)
	}
	if logFilename == "" {
		logFilename = "gocommons.log"
		if _, src, _, ok := runtime.Caller(1); ok {
			logFilename = filepath.Base(src) + ".log"
		}
	}
	return newWithConsole(name, logDir, logFilename, zapcore.Lock(os.Stderr))
}

func newWithConsole(name, logDir, logFilename string, console zapcore.WriteSyncer) (*CommonLogger, error) {
	logPath := filepath.Join(logDir, logFilename)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &CommonLogger{
		name:    name,
		logPath: logPath,
		file:    f,
		fileLvl: zap.NewAtomicLevelAt(zapcore.InfoLevel),
		consLvl: zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
	core := zapcore.NewTee(
		zapcore.NewCore(newLineEncoder(), zapcore.AddSync(f), l.fileLvl),
		zapcore.NewCore(newLineEncoder(), console, l.consLvl),
	)
	l.log = zap.New(core, zap.AddCaller()).Named(name)
	return l, nil
}

// Logger returns the configured zap logger.
func (l *CommonLogger) Logger() *zap.Logger { return l.log }

// Sugar returns a printf style view of Logger.
func (l *CommonLogger) Sugar() *zap.SugaredLogger { return l.log.Sugar() }

// Name returns the name given to New.
func (l *CommonLogger) Name() string { return l.name }

// LogFilePath returns the path of the log file.
func (l *CommonLogger) LogFilePath() string { return l.logPath }

// SetConsoleOutputLogLevel changes the minimum level written to the console.
func (l *CommonLogger) SetConsoleOutputLogLevel(level LogLevel) error {
	zl, err := level.zapLevel()
	if err != nil {
		return err
	}
	l.consLvl.SetLevel(zl)
	return nil
}

// SetFileOutputLogLevel changes the minimum level written to the log file.
func (l *CommonLogger) SetFileOutputLogLevel(level LogLevel) error {
	zl, err := level.zapLevel()
	if err != nil {
		return err
	}
	l.fileLvl.SetLevel(zl)
	return nil
}

// Close flushes both outputs and closes the log file.
func (l *CommonLogger) Close() error {
	_ = l.log.Sync()
	return l.file.Close()
}
