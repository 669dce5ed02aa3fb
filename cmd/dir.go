package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/uft/internal/domain"
	m "github.com/mouse-blink/uft/internal/model"
)

var dirParallelFlag int
var dirExcludeFlags []string
var dirForceFlag bool
var dirReportFlag string

// dirCmd represents the dir command.
var dirCmd = newDirCmd()

func newDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir <path>",
		Short: "Generate test skeletons for every supported file under a directory",
		Long: `Walk a directory and generate a test skeleton for each supported source
file. Build output, dependency and VCS directories are skipped, as are
existing test files and anything matching an --exclude glob.

Examples:
  uft dir ./src
  uft dir ./src -p 4 -x 'gen/**' -x '**/*_mock.go'
  uft dir ./src --report uft-report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Dir(cmd.Context(), dirArgs(cmd, m.Path(args[0])))
		},
	}
	cmd.Flags().IntVarP(&dirParallelFlag, "parallel", "p", 1, "number of files processed concurrently")
	cmd.Flags().StringArrayVarP(&dirExcludeFlags, "exclude", "x", nil, "exclude paths matching glob (can be repeated)")
	cmd.Flags().BoolVar(&dirForceFlag, "force", false, "overwrite existing test files")
	cmd.Flags().StringVar(&dirReportFlag, "report", "", "write per-file results to this .json or .yaml file")
	cmd.Flags().StringArrayVar(&frameworkFlags, "framework", nil, "framework override as language=framework (can be repeated)")

	return cmd
}

// dirArgs merges the batch flags of cmd with the configured defaults.
func dirArgs(cmd *cobra.Command, root m.Path) domain.DirArgs {
	parallel := cfg.Parallel
	if cmd.Flags().Changed("parallel") {
		parallel = dirParallelFlag
	}

	exclude := append([]string{}, cfg.Exclude...)
	exclude = append(exclude, dirExcludeFlags...)

	return domain.DirArgs{
		Root:     root,
		Parallel: parallel,
		Exclude:  exclude,
		Force:    dirForceFlag,
		Report:   m.Path(dirReportFlag),
	}
}

func init() {
	rootCmd.AddCommand(dirCmd)
}
