package cmd

import (
	"github.com/nwrobel/gocommons/file"
	"github.com/nwrobel/gocommons/internal/config"
	"github.com/nwrobel/gocommons/internal/logging"
	"github.com/nwrobel/gocommons/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// settings is shared by every subcommand and filled in before any of them
// run.
type settings struct {
	cfg *config.Config
	log *zap.Logger
}

func newSettings() *settings {
	return &settings{cfg: config.Default(), log: zap.NewNop()}
}

func (s *settings) load(envFile string, verbose bool) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Development = cfg.LogDev
	if verbose {
		logCfg.Level = "debug"
	}
	log, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	s.cfg, s.log = cfg, log
	return nil
}

func (s *settings) listOptions(extended bool) file.ListOptions {
	return file.ListOptions{ExtendedPaths: extended || s.cfg.ExtendedPaths}
}

// NewRootCmd creates and returns the root cobra command for the gocommons CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	var (
		envFile string
		verbose bool
	)
	s := newSettings()

	rootCmd := &cobra.Command{
		Use:   "gocommons",
		Short: "gocommons - everyday file, archive and time helpers",
		Long: `gocommons exposes the helpers of the gocommons library on the command line.

Use subcommands to perform different operations:
  - list, count, dupes, perm: inspect and manage directory trees
  - archive: create, extract, list and verify archives
  - time: format and parse timestamps and durations
  - seed: generate a sample tree to try the other commands on

Settings are read from GOCOMMONS_* environment variables and an optional .env file.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(envFile, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.log.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file to load settings from")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	groupFiles := "files"
	groupArchives := "archives"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "File Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchives,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	listCmd := NewListCmd(s)
	countCmd := NewCountCmd(s)
	dupesCmd := NewDupesCmd(s)
	permCmd := NewPermCmd(s)
	archiveCmd := NewArchiveCmd(s)
	timeCmd := NewTimeCmd()
	seedCmd := NewSeedCmd(s)

	listCmd.GroupID = groupFiles
	countCmd.GroupID = groupFiles
	dupesCmd.GroupID = groupFiles
	permCmd.GroupID = groupFiles
	archiveCmd.GroupID = groupArchives
	timeCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(dupesCmd)
	rootCmd.AddCommand(permCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
