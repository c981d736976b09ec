package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gpcobf/internal/domain"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

const runLongDescription = `Obfuscate every script found under the given paths.

Paths follow the Go pattern style:
  - script.gpc     a single file, whatever its extension
  - ./scripts      every .gpc file in a directory
  - ./scripts/...  every .gpc file in a directory tree
Files already carrying the output suffix are skipped.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Obfuscate GPC scripts",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(domain.RunArgs{
				InputArgs: inputArgs(args),
				Reports:   m.Path(cfg.Reports),
			})
		},
	}
	addEngineFlags(cmd.Flags())

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
