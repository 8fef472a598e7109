// Package shell runs external programs on behalf of the library packages.
//
// Permission changes (chown/chmod) and 7-Zip archives are delegated to system
// tools. Everything that needs a subprocess goes through the Runner interface
// so callers can swap in a Recorder for dry runs and tests.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Runner executes a single command and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Log    *zap.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Default is the runner used when a package is not given one explicitly.
var Default Runner = ExecRunner{}

// Run starts name with args and returns an error carrying the tail of stderr
// when the command exits non-zero.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("running command", zap.String("cmd", name), zap.Strings("args", args))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, r.Stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		log.Warn("command failed", zap.String("cmd", name), zap.Error(err), zap.String("stderr", msg))
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", Format(name, args...), err, msg)
		}
		return fmt.Errorf("%s: %w", Format(name, args...), err)
	}
	return nil
}

// Recorder stores every command instead of running it. Err, when set, is
// returned from each call.
type Recorder struct {
	mu    sync.Mutex
	calls [][]string
	Err   error
}

func (r *Recorder) Run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.Err
}

// Calls returns a copy of the recorded command lines.
func (r *Recorder) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = append([]string(nil), c...)
	}
	return out
}

// Format renders a command line for display. Arguments containing spaces
// are quoted.
func Format(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, p := range append([]string{name}, args...) {
		if strings.ContainsAny(p, " \t") {
			p = fmt.Sprintf("%q", p)
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}
