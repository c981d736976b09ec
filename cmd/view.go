package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/gpcobf/internal/domain"
	m "github.com/mouse-blink/gpcobf/internal/model"
)

var errNoReportsDir = errors.New("no reports directory configured, use --reports")

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved obfuscation reports",
		Long:  "View the rename reports saved by earlier runs in the --reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			if cfg.Reports == "" {
				return errNoReportsDir
			}

			return workflow.View(domain.ViewArgs{Reports: m.Path(cfg.Reports)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
