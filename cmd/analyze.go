package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/uft/internal/controller"
	"github.com/mouse-blink/uft/internal/domain"
	m "github.com/mouse-blink/uft/internal/model"
)

var analyzeFormatFlag string

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "List the testable patterns detected in a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Analyze(domain.AnalyzeArgs{
				Path:   m.Path(args[0]),
				Format: controller.Format(analyzeFormatFlag),
			})
		},
	}
	cmd.Flags().StringVar(&analyzeFormatFlag, "format", string(controller.FormatTable), "output format: table, json or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
