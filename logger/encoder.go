package logger

import (
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp written at the start of every line.
const TimeLayout = "2006-01-02 15:04:05,000"

var linePool = buffer.NewPool()

// lineEncoder writes
//
//	2024-05-01 10:11:12,345 - [main.go,  run()] - INFO - message {"k":"v"}
//
// The embedded console encoder renders the message and any fields.
type lineEncoder struct {
	zapcore.Encoder
}

func newLineEncoder() zapcore.Encoder {
	return lineEncoder{zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
	})}
}

func (e lineEncoder) Clone() zapcore.Encoder {
	return lineEncoder{e.Encoder.Clone()}
}

func (e lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	body, err := e.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}
	defer body.Free()

	line := linePool.Get()
	line.AppendTime(ent.Time, TimeLayout)
	line.AppendString(" - [")
	line.AppendString(callerFile(ent.Caller))
	line.AppendString(",  ")
	line.AppendString(callerFunc(ent.Caller))
	line.AppendString("()] - ")
	line.AppendString(levelName(ent.Level))
	line.AppendString(" - ")
	line.Write(body.Bytes())
	return line, nil
}

func callerFile(c zapcore.EntryCaller) string {
	if !c.Defined {
		return "?"
	}
	if i := strings.LastIndexAny(c.File, `/\`); i >= 0 {
		return c.File[i+1:]
	}
	return c.File
}

// callerFunc trims the package path and receiver from a fully qualified
// function name.
func callerFunc(c zapcore.EntryCaller) string {
	fn := c.Function
	if fn == "" {
		return "?"
	}
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}

func levelName(l zapcore.Level) string {
	switch l {
	case zapcore.WarnLevel:
		return "WARNING"
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return "CRITICAL"
	}
	return l.CapitalString()
}
