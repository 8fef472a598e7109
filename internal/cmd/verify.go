package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nwrobel/gocommons/archive"
	"github.com/nwrobel/gocommons/file"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// archiveExtensions are the suffixes verify treats as archives.
var archiveExtensions = []string{".gz", ".tgz", ".zst", ".tar", ".zip"}

func newArchiveVerifyCmd(s *settings) *cobra.Command {
	var (
		verbose      bool
		writeSummary bool
	)

	cmd := &cobra.Command{
		Use:   "verify PATH",
		Short: "Check archives for corruption and summary consistency",
		Long: `Verify every archive under PATH, or PATH itself when it is a file.

Each archive is read end to end. When a summary written by
"archive create --summary" sits beside it, the entry count, file count and
uncompressed size recorded there are compared with the archive content.
With --write-summary missing summaries are created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.Context(), cmd.OutOrStdout(), s.log, args[0], verbose, writeSummary)
		},
	}

	cmd.Flags().BoolVar(&verbose, "details", false, "Report archives without problems too")
	cmd.Flags().BoolVar(&writeSummary, "write-summary", false, "Write summaries for archives that lack one")

	return cmd
}

func runVerify(ctx context.Context, w io.Writer, log *zap.Logger, path string, verbose, writeSummary bool) error {
	var archives []string
	if file.FileExists(path) {
		archives = []string{path}
	} else {
		var err error
		archives, err = file.FilesByExtension(path, archiveExtensions, file.ListOptions{})
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
	}

	var totalErrors int
	for _, a := range archives {
		problems := verifyArchive(ctx, a)
		if len(problems) > 0 {
			fmt.Fprintf(w, "Archive %s has %d errors:\n", a, len(problems))
			for _, p := range problems {
				fmt.Fprintf(w, "  - %s\n", p)
			}
			totalErrors += len(problems)
			continue
		}
		if verbose {
			fmt.Fprintf(w, "Archive %s is valid\n", a)
		}
		if writeSummary && !file.FileExists(a+SummarySuffix) {
			sum, err := archive.Summarize(a)
			if err == nil {
				err = sum.Save(a + SummarySuffix)
			}
			if err != nil {
				log.Warn("could not write summary", zap.String("archive", a), zap.Error(err))
			}
		}
	}

	fmt.Fprintf(w, "\nValidation complete:\n")
	fmt.Fprintf(w, "  Archives checked: %d\n", len(archives))
	fmt.Fprintf(w, "  Total errors: %d\n", totalErrors)

	if totalErrors > 0 {
		return fmt.Errorf("%w: %d errors", ErrVerifyFailed, totalErrors)
	}
	return nil
}

func verifyArchive(ctx context.Context, path string) []string {
	var problems []string

	if err := archive.Verify(ctx, path); err != nil {
		return []string{fmt.Sprintf("Archive content is damaged: %v", err)}
	}
	m, err := archive.List(path)
	if err != nil {
		return []string{fmt.Sprintf("Failed to read archive: %v", err)}
	}
	if m.Len() == 0 {
		problems = append(problems, "Archive is empty")
	}

	summaryPath := path + SummarySuffix
	if !file.FileExists(summaryPath) {
		return problems
	}
	var recorded archive.Summary
	if err := file.ReadJSONFile(summaryPath, &recorded); err != nil {
		return append(problems, fmt.Sprintf("Failed to parse summary: %v", err))
	}
	if got := m.Len(); got != recorded.EntryCount {
		problems = append(problems, fmt.Sprintf("Summary entry count mismatch: expected %d, got %d", recorded.EntryCount, got))
	}
	if got := m.FileCount(); got != recorded.FileCount {
		problems = append(problems, fmt.Sprintf("Summary file count mismatch: expected %d, got %d", recorded.FileCount, got))
	}
	if got := m.TotalSize(); got != recorded.UncompressedSize {
		problems = append(problems, fmt.Sprintf("Summary size mismatch: expected %d, got %d", recorded.UncompressedSize, got))
	}
	if stat, err := os.Stat(path); err == nil && stat.Size() != recorded.CompressedSize {
		problems = append(problems, fmt.Sprintf("Archive size changed: expected %d, got %d", recorded.CompressedSize, stat.Size()))
	}
	return problems
}
