package shell

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	ctx := context.Background()
	r.Run(ctx, "chown", "me:me", "/tmp/x")
	r.Run(ctx, "chmod", "755", "-R", "/tmp/x")

	want := [][]string{
		{"chown", "me:me", "/tmp/x"},
		{"chmod", "755", "-R", "/tmp/x"},
	}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Errorf("Calls() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorder_Err(t *testing.T) {
	sentinel := errors.New("boom")
	r := &Recorder{Err: sentinel}
	if err := r.Run(context.Background(), "7z"); !errors.Is(err, sentinel) {
		t.Errorf("Run() error = %v, want %v", err, sentinel)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		want string
	}{
		{"no args", "7z", nil, "7z"},
		{"plain args", "chmod", []string{"755", "/tmp"}, "chmod 755 /tmp"},
		{"spaced binary", `C:\Program Files\7-Zip\7z.exe`, []string{"a"}, `"C:\\Program Files\\7-Zip\\7z.exe" a`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.cmd, tt.args...); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX true/false")
	}
	r := ExecRunner{}
	if err := r.Run(context.Background(), "true"); err != nil {
		t.Errorf("Run(true) error = %v", err)
	}
	if err := r.Run(context.Background(), "false"); err == nil {
		t.Error("Run(false) expected error, got nil")
	}
}
