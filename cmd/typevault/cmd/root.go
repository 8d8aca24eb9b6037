package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/authcorp/typevault/internal/log"
)

type rootOptions struct {
	logFormat string
	verbose   bool
	logger    *slog.Logger
}

// NewRootCmd builds the typevault command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: log.Noop}

	rootCmd := &cobra.Command{
		Use:   "typevault",
		Short: "Validate and normalize typed values",
		Long: `typevault validates raw values against a named type and prints their
canonical form.

Examples:
  typevault normalize color-hex '#f00'          # #ff0000ff
  typevault normalize duration P1Y              # P1Y0M0W0DT0H0M0S
  typevault batch values.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := log.New(cmd.ErrOrStderr(), log.Format(opts.logFormat), opts.verbose)
			if err != nil {
				return errtrace.Wrap(err)
			}
			opts.logger = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(log.FormatConsole), "log output format: console or dev")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newNormalizeCmd(opts),
		newBatchCmd(opts),
		newTypesCmd(),
	)
	return rootCmd
}

// Execute runs the command tree with the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		return err
	}
	return nil
}

func printError(rootCmd *cobra.Command, err error) {
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errtrace.FormatString(err))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
