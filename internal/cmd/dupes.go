package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/nwrobel/gocommons/file"
	"github.com/nwrobel/gocommons/strutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewDupesCmd creates and returns the dupes subcommand, which reports files
// with identical content.
func NewDupesCmd(s *settings) *cobra.Command {
	var exts []string

	cmd := &cobra.Command{
		Use:   "dupes ROOT",
		Short: "Find files with identical content",
		Long: `Hash every file under ROOT with SHA-256 and print groups of files that
share a hash. Hashing runs on all CPUs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				paths []string
				err   error
			)
			if len(exts) > 0 {
				paths, err = file.FilesByExtension(args[0], exts, file.ListOptions{})
			} else {
				paths, err = file.AllFilesRecursive(args[0], file.ListOptions{})
			}
			if err != nil {
				return err
			}
			hashes, err := file.HashFiles(cmd.Context(), paths)
			if err != nil {
				return err
			}
			groups := duplicateGroups(paths, hashes)
			s.log.Debug("hashed", zap.Int("files", len(paths)), zap.Int("groups", len(groups)))
			printGroups(cmd.OutOrStdout(), groups)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&exts, "ext", "e", nil, "Only consider files with this extension")

	return cmd
}

type dupeGroup struct {
	hash  string
	paths []string
}

// duplicateGroups groups paths by hash, keeping only hashes shared by more
// than one path. Groups follow the order in which their hash first appears.
func duplicateGroups(paths []string, hashes map[string]string) []dupeGroup {
	ordered := make([]string, 0, len(paths))
	byHash := make(map[string][]string)
	for _, p := range paths {
		h := hashes[p]
		ordered = append(ordered, h)
		byHash[h] = append(byHash[h], p)
	}
	var groups []dupeGroup
	for _, h := range strutil.ListDupes(ordered) {
		members := byHash[h]
		slices.Sort(members)
		groups = append(groups, dupeGroup{hash: h, paths: members})
	}
	return groups
}

func printGroups(w io.Writer, groups []dupeGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No duplicates found")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "%s (%d copies)\n", g.hash[:12], len(g.paths))
		for _, p := range g.paths {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
}
