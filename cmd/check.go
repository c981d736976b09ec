package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gpcobf/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report suspicious constructs without renaming",
		Long: `Run the structural diagnostics only: mixed typed and untyped parameters,
lines ending in ':' and unterminated strings or comments.
Exits with status 2 when an error is found.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Check(domain.CheckArgs{InputArgs: inputArgs(args)})
		},
	}
	cmd.Flags().IntP("parallel", "p", 1, "number of scripts processed in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
