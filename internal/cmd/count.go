package cmd

import (
	"fmt"

	"github.com/nwrobel/gocommons/file"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCountCmd creates and returns the count subcommand.
// It provides file counting functionality for directory trees.
func NewCountCmd(s *settings) *cobra.Command {
	var (
		path  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count files in a directory tree",
		Long: `Count the total number of files in a directory tree.

This is a utility command that recursively walks through a directory
and counts all files (excluding directories). With --limit the walk stops
as soon as the count passes the limit, which makes "is this tree small
enough?" checks cheap on very large trees.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			count, over, err := file.CountFiles(path, limit)
			if err != nil {
				return fmt.Errorf("count files: %w", err)
			}
			s.log.Debug("counted", zap.String("path", path), zap.Int("count", count), zap.Bool("over", over))
			if over {
				fmt.Fprintf(cmd.OutOrStdout(), "More than %d files\n", limit)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total files: %d\n", count)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Stop counting once this many files are exceeded (0 = no limit)")

	return cmd
}
