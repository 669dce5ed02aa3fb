package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/uft/internal/domain"
	m "github.com/mouse-blink/uft/internal/model"
)

var generateOutputFlag string
var generateForceFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <path>",
		Short: "Generate a test skeleton for a source file",
		Long: `Detect testable patterns in a source file and write a test skeleton for
the language's framework. The test goes to its conventional location
(e.g. calc_test.go, tests/test_calc.py) unless --output names a directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := cfg.Output
			if cmd.Flags().Changed("output") {
				output = generateOutputFlag
			}

			return workflow.Generate(domain.GenerateArgs{
				Path:   m.Path(args[0]),
				Output: m.Path(output),
				Force:  generateForceFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&generateOutputFlag, "output", "o", "", "directory for the generated test file")
	cmd.Flags().BoolVar(&generateForceFlag, "force", false, "overwrite an existing test file")
	cmd.Flags().StringArrayVar(&frameworkFlags, "framework", nil, "framework override as language=framework (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
