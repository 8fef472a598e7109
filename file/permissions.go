package file

import (
	"context"
	"fmt"
	"os"

	"github.com/nwrobel/gocommons/internal/shell"
)

// Permissioner applies Unix ownership and mode bits by invoking chown and
// chmod. Both commands need root for most targets, so they run through sudo
// unless Sudo is false.
type Permissioner struct {
	Runner shell.Runner
	Sudo   bool
}

// DefaultPermissioner runs real commands through sudo.
var DefaultPermissioner = Permissioner{Runner: shell.Default, Sudo: true}

// ApplyPermission sets owner:group and the permission mask on path using
// DefaultPermissioner. Directories are changed recursively.
//
//	ApplyPermission(ctx, "/srv/music", "nick", "media", "775")
func ApplyPermission(ctx context.Context, path, owner, group, mask string) error {
	return DefaultPermissioner.Apply(ctx, path, owner, group, mask)
}

// Apply runs chown then chmod on path, adding -R when path is a directory.
func (p Permissioner) Apply(ctx context.Context, path, owner, group, mask string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	runner := p.Runner
	if runner == nil {
		runner = shell.Default
	}

	ownerGroup := fmt.Sprintf("%s:%s", owner, group)
	chown := []string{"chown", ownerGroup}
	chmod := []string{"chmod", mask}
	if info.IsDir() {
		chown = append(chown, "-R")
		chmod = append(chmod, "-R")
	}
	chown = append(chown, path)
	chmod = append(chmod, path)

	for _, args := range [][]string{chown, chmod} {
		if p.Sudo {
			args = append([]string{"sudo"}, args...)
		}
		if err := runner.Run(ctx, args[0], args[1:]...); err != nil {
			return fmt.Errorf("apply permission to %s: %w", path, err)
		}
	}
	return nil
}
