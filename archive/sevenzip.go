package archive

import (
	"context"
	"fmt"
	"os"

	"github.com/nwrobel/gocommons/internal/shell"
	"github.com/nwrobel/gocommons/system"
)

// SevenZip drives the 7z command line tool.
type SevenZip struct {
	Runner  shell.Runner
	Command string // path to the 7z binary, system.SevenZipCommand() when empty
}

// DefaultSevenZip runs the platform 7z binary through shell.Default.
var DefaultSevenZip = &SevenZip{}

func (s *SevenZip) runner() shell.Runner {
	if s.Runner == nil {
		return shell.Default
	}
	return s.Runner
}

func (s *SevenZip) command() string {
	if s.Command == "" {
		return system.SevenZipCommand()
	}
	return s.Command
}

// Create builds a maximum compression 7z archive at out.
func (s *SevenZip) Create(ctx context.Context, inputs []string, out string) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	args := append([]string{"a", "-t7z", "-mx=9", "-mfb=64", "-md=64m", out}, inputs...)
	if err := s.runner().Run(ctx, s.command(), args...); err != nil {
		return fmt.Errorf("7z create %s: %w", out, err)
	}
	return nil
}

// Extract unpacks archivePath into dest, overwriting existing files.
func (s *SevenZip) Extract(ctx context.Context, archivePath, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	if err := s.runner().Run(ctx, s.command(), "x", "-y", "-o"+dest, archivePath); err != nil {
		return fmt.Errorf("7z extract %s: %w", archivePath, err)
	}
	return nil
}

// Test runs 7z's integrity check on archivePath.
func (s *SevenZip) Test(ctx context.Context, archivePath string) error {
	if err := s.runner().Run(ctx, s.command(), "t", archivePath); err != nil {
		return fmt.Errorf("7z test %s: %w", archivePath, err)
	}
	return nil
}

// Create7z builds a 7z archive with DefaultSevenZip.
func Create7z(ctx context.Context, inputs []string, out string) error {
	return DefaultSevenZip.Create(ctx, inputs, out)
}
