package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gpcobf/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "Preview the identifiers that would be renamed",
		Long:  "Show, per script and category, every identifier and the name it would get. Nothing is written.",
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{InputArgs: inputArgs(args)})
		},
	}
	addEngineFlags(cmd.Flags())

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
