package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/nwrobel/gocommons/archive"
	"github.com/nwrobel/gocommons/file"
	"github.com/nwrobel/gocommons/internal/shell"
	"github.com/nwrobel/gocommons/strutil"
	"github.com/nwrobel/gocommons/timeutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SummarySuffix names the JSON summary written beside an archive.
const SummarySuffix = ".summary.json"

// NewArchiveCmd creates and returns the archive command group.
func NewArchiveCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Create, extract, inspect and verify archives",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			archive.DefaultSevenZip = &archive.SevenZip{
				Runner:  shell.ExecRunner{Log: s.log},
				Command: s.cfg.SevenZip,
			}
			return nil
		},
	}
	cmd.AddCommand(
		newArchiveCreateCmd(s),
		newArchiveExtractCmd(s),
		newArchiveListCmd(),
		newArchiveVerifyCmd(s),
		newArchiveGunzipCmd(),
	)
	return cmd
}

func newArchiveCreateCmd(s *settings) *cobra.Command {
	var (
		typeName string
		summary  bool
	)
	cmd := &cobra.Command{
		Use:   "create OUT INPUT...",
		Short: "Compress files and directories into one archive",
		Long: `Compress every INPUT into OUT. Each input is stored under its base name and
directories are included recursively. Supported types: gz (tar.gz, the
default), zst (tar.zst), tar, zip and 7z (needs the 7z binary).`,
		Example: `  gocommons archive create /backup/music.tar.gz ~/Music ~/playlists.m3u
  gocommons archive create /backup/music.7z ~/Music --type 7z`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := archive.ParseType(typeName)
			if err != nil {
				return err
			}
			out, inputs := args[0], args[1:]
			for _, in := range inputs {
				if file.DirectoryExists(in) && file.PathsOverlap(in, out) {
					s.log.Warn("archive is written inside one of its inputs", zap.String("input", in), zap.String("out", out))
				}
			}
			if err := archive.CompressToArchive(cmd.Context(), inputs, out, typ); err != nil {
				return err
			}
			s.log.Info("archive created", zap.String("out", out), zap.String("type", string(typ)))
			if summary && typ != archive.Type7z {
				sum, err := archive.Summarize(out)
				if err != nil {
					return err
				}
				if err := sum.Save(out + SummarySuffix); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", string(archive.TypeGz), "Archive type: gz, zst, tar, zip or 7z")
	cmd.Flags().BoolVar(&summary, "summary", false, "Write a JSON summary beside the archive")
	return cmd
}

func newArchiveExtractCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "extract ARCHIVE DEST",
		Short: "Extract an archive, detecting its format from content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := archive.Extract(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			s.log.Info("archive extracted", zap.String("archive", args[0]), zap.String("dest", args[1]))
			return nil
		},
	}
}

func newArchiveListCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list ARCHIVE",
		Short: "List archive entries, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := archive.List(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			printManifest(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the manifest as JSON")
	return cmd
}

func printManifest(w io.Writer, m archive.Manifest) {
	for e := range m.Iterate {
		size := "-"
		if !e.IsDir {
			size = strutil.FormatBytes(uint64(e.Size))
		}
		fmt.Fprintf(w, "%s  %8s  %s\n", timeutil.FormatDatetimeForDisplay(e.Modified.Local()), size, e.Name)
	}
	fmt.Fprintf(w, "%d files, %s\n", m.FileCount(), strutil.FormatBytes(uint64(m.TotalSize())))
}

func newArchiveGunzipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gunzip FILE.gz [OUT]",
		Short: "Decompress a single-file .gz",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := file.JoinPaths(file.ParentDirectory(args[0], file.ListOptions{}), file.BaseName(args[0]))
			if len(args) == 2 {
				out = args[1]
			}
			if err := archive.ExtractSingleFileGZ(args[0], out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// ErrVerifyFailed is returned by verify when any archive has problems.
var ErrVerifyFailed = errors.New("archive verification failed")
