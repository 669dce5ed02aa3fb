package cmd

import (
	"github.com/spf13/cobra"
)

// languagesCmd represents the languages command.
var languagesCmd = newLanguagesCmd()

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List built-in and configured languages",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Languages()
		},
	}
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
