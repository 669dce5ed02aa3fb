package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/uft/internal/domain"
	m "github.com/mouse-blink/uft/internal/model"
)

var integrationOutputFlag string

// integrationCmd represents the integration-test command.
var integrationCmd = newIntegrationCmd()

func newIntegrationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integration-test <path>",
		Short: "Generate an integration test suite for a JavaScript source file",
		Long: `Detect API calls, form validation, component exports and database
operations in a JavaScript file and write <name>.integration.test.js with
the setup and cleanup the suite needs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := cfg.Integration.Output
			if cmd.Flags().Changed("output") {
				output = integrationOutputFlag
			}

			return workflow.Integration(domain.IntegrationArgs{
				Path:   m.Path(args[0]),
				Output: m.Path(output),
			})
		},
	}
	cmd.Flags().StringVarP(&integrationOutputFlag, "output", "o", "integration-tests", "directory for the integration suite")

	return cmd
}

func init() {
	rootCmd.AddCommand(integrationCmd)
}
