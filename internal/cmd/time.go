package cmd

import (
	"fmt"
	"strconv"

	"github.com/nwrobel/gocommons/timeutil"
	"github.com/spf13/cobra"
)

// NewTimeCmd creates and returns the time command group.
func NewTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Timestamp and duration helpers",
	}
	cmd.AddCommand(newTimeNowCmd(), newTimeParseDurationCmd(), newTimeValidCmd())
	return cmd
}

func newTimeNowCmd() *cobra.Command {
	var forFilename, epoch bool
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current local time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case epoch:
				fmt.Fprintf(out, "%.6f\n", timeutil.CurrentTimestamp())
			case forFilename:
				fmt.Fprintln(out, timeutil.CurrentTimestampForFilename())
			default:
				fmt.Fprintln(out, timeutil.CurrentFormattedTime())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&forFilename, "filename", false, "Use '.' instead of ':' so the result fits in a file name")
	cmd.Flags().BoolVar(&epoch, "epoch", false, "Print epoch seconds")
	cmd.MarkFlagsMutuallyExclusive("filename", "epoch")
	return cmd
}

func newTimeParseDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "parse-duration DURATION",
		Short:   "Convert a written duration to seconds",
		Example: `  gocommons time parse-duration 0:03:01
  gocommons time parse-duration "2 days, 4 hours"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := timeutil.DurationFromFormatted(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g (%s)\n", d.Seconds(), d)
			return nil
		},
	}
}

func newTimeValidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valid TIMESTAMP",
		Short: "Check that an epoch timestamp lies between 1900 and now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", args[0])
			}
			if !timeutil.IsValidTimestamp(ts) {
				return fmt.Errorf("%s is not a valid timestamp", args[0])
			}
			t := timeutil.TimestampToDateTime(ts)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", timeutil.FormatDatetimeForDisplay(t), timeutil.FormatRelative(t))
			return nil
		},
	}
}
