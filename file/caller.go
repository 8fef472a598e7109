package file

import (
	"path/filepath"
	"runtime"
	"strings"
)

// CallerDirectory returns the directory holding the source file of the
// function that called it.
func CallerDirectory() string {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return ""
	}
	dir, err := filepath.Abs(filepath.Dir(file))
	if err != nil {
		return filepath.Dir(file)
	}
	return dir
}

// CallerName returns the import path of the package whose code called it.
func CallerName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return packageOf(fn.Name())
}

// packageOf strips the function part from a fully qualified symbol such as
// "github.com/a/b.(*T).Method" and returns "github.com/a/b".
func packageOf(symbol string) string {
	slash := strings.LastIndex(symbol, "/")
	if dot := strings.Index(symbol[slash+1:], "."); dot >= 0 {
		return symbol[:slash+1+dot]
	}
	return symbol
}
