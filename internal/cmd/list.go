package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nwrobel/gocommons/file"
	"github.com/nwrobel/gocommons/strutil"
	"github.com/nwrobel/gocommons/timeutil"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
	"go.uber.org/zap"
)

type listOptions struct {
	exts      []string
	contains  string
	glob      string
	filesOnly bool
	extended  bool
	color     bool
	long      bool
}

// NewListCmd creates and returns the list subcommand.
func NewListCmd(s *settings) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list ROOT",
		Short: "List files and directories under a root",
		Long: `List every file and directory under ROOT, sorted by path.

Filters are applied in this order and only one may be given:
  --ext       files whose final extension matches (repeatable, include the dot)
  --contains  files whose name contains a substring
  --glob      paths matching a ** aware glob, relative to ROOT`,
		Example: `  gocommons list ~/Music --ext .mp3 --ext .flac
  gocommons list . --glob '**/*_test.go' --color`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := runList(s, args[0], opts)
			if err != nil {
				return err
			}
			return printPaths(cmd.OutOrStdout(), paths, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.exts, "ext", "e", nil, "Only files with this extension, e.g. .mp3")
	cmd.Flags().StringVarP(&opts.contains, "contains", "c", "", "Only files whose name contains this text")
	cmd.Flags().StringVarP(&opts.glob, "glob", "g", "", "Only paths matching this glob")
	cmd.Flags().BoolVarP(&opts.filesOnly, "files", "f", false, "Omit directories")
	cmd.Flags().BoolVar(&opts.extended, "extended", false, `Prefix paths with \\?\`)
	cmd.Flags().BoolVar(&opts.color, "color", false, "Colour names by extension")
	cmd.Flags().BoolVarP(&opts.long, "long", "l", false, "Show size and modification time")
	cmd.MarkFlagsMutuallyExclusive("ext", "contains", "glob")

	return cmd
}

func runList(s *settings, root string, opts listOptions) ([]string, error) {
	lo := s.listOptions(opts.extended)
	s.log.Debug("listing", zap.String("root", root), zap.Bool("extended", lo.ExtendedPaths))
	switch {
	case len(opts.exts) > 0:
		return file.FilesByExtension(root, opts.exts, lo)
	case opts.contains != "":
		return file.FilesContaining(root, opts.contains, lo)
	case opts.glob != "":
		rels, err := file.Glob(root, opts.glob)
		if err != nil {
			return nil, err
		}
		paths := make([]string, 0, len(rels))
		for _, r := range rels {
			p := filepath.Join(root, filepath.FromSlash(r))
			if opts.filesOnly && !file.FileExists(p) {
				continue
			}
			paths = append(paths, p)
		}
		return paths, nil
	case opts.filesOnly:
		return file.AllFilesRecursive(root, lo)
	}
	return file.AllFilesAndDirectoriesRecursive(root, lo)
}

// ansiColors are the foreground colours names are hashed onto.
var ansiColors = []string{"31", "32", "33", "34", "35", "36"}

// colorize wraps p in an ANSI colour picked from its extension, so every
// file of one type shares a colour across runs.
func colorize(p string) string {
	ext := file.Extension(p)
	if ext == "" {
		return p
	}
	i := colorhash.HashString(ext) % len(ansiColors)
	if i < 0 {
		i += len(ansiColors)
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", ansiColors[i], p)
}

func printPaths(w io.Writer, paths []string, opts listOptions) error {
	for _, p := range paths {
		name := p
		if opts.color {
			name = colorize(p)
		}
		if !opts.long {
			fmt.Fprintln(w, name)
			continue
		}
		info, err := os.Lstat(strings.TrimPrefix(p, file.ExtendedPrefix))
		if err != nil {
			return err
		}
		size := "-"
		if !info.IsDir() {
			size = strutil.FormatBytes(uint64(info.Size()))
		}
		fmt.Fprintf(w, "%s  %8s  %s\n", timeutil.FormatDatetimeForDisplay(info.ModTime()), size, name)
	}
	return nil
}
