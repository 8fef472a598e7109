package cmd

import (
	"fmt"

	"github.com/nwrobel/gocommons/file"
	"github.com/nwrobel/gocommons/internal/shell"
	"github.com/spf13/cobra"
)

// NewPermCmd creates and returns the perm subcommand, a wrapper around
// chown and chmod.
func NewPermCmd(s *settings) *cobra.Command {
	var (
		owner, group, mask string
		dryRun, noSudo     bool
	)

	cmd := &cobra.Command{
		Use:   "perm PATH",
		Short: "Apply owner, group and mode to a file or directory tree",
		Long: `Run chown owner:group and chmod mask on PATH, recursively when PATH is a
directory. Commands run through sudo unless --no-sudo is given or
GOCOMMONS_SUDO=false. --dry-run prints the commands instead.`,
		Example: `  gocommons perm /srv/music --owner nick --group media --mask 775`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := &shell.Recorder{}
			p := file.Permissioner{
				Runner: shell.ExecRunner{Log: s.log, Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
				Sudo:   s.cfg.Sudo && !noSudo,
			}
			if dryRun {
				p.Runner = rec
			}
			if err := p.Apply(cmd.Context(), args[0], owner, group, mask); err != nil {
				return err
			}
			for _, c := range rec.Calls() {
				fmt.Fprintln(cmd.OutOrStdout(), shell.Format(c[0], c[1:]...))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owning user (required)")
	cmd.Flags().StringVar(&group, "group", "", "Owning group (required)")
	cmd.Flags().StringVar(&mask, "mask", "", "Mode passed to chmod, e.g. 755 (required)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the commands without running them")
	cmd.Flags().BoolVar(&noSudo, "no-sudo", false, "Run chown and chmod directly")
	cmd.MarkFlagRequired("owner")
	cmd.MarkFlagRequired("group")
	cmd.MarkFlagRequired("mask")

	return cmd
}
