package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/uft/internal/domain"
	m "github.com/mouse-blink/uft/internal/model"
)

var gitBranchFlag string
var gitDirFlag string

// gitRepoCmd represents the git-repo command.
var gitRepoCmd = newGitRepoCmd()

func newGitRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-repo <url>",
		Short: "Clone a repository and generate test skeletons for it",
		Long: `Shallow-clone a repository and run the dir command on the checkout.
Without --dir the clone is placed in a temporary directory that is kept so
the generated tests can be inspected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.GitRepo(cmd.Context(), domain.GitRepoArgs{
				URL:     args[0],
				Branch:  gitBranchFlag,
				Dir:     m.Path(gitDirFlag),
				DirArgs: dirArgs(cmd, ""),
			})
		},
	}
	cmd.Flags().StringVarP(&gitBranchFlag, "branch", "b", "main", "branch to clone")
	cmd.Flags().StringVar(&gitDirFlag, "dir", "", "clone destination (default a new temporary directory)")
	cmd.Flags().IntVarP(&dirParallelFlag, "parallel", "p", 1, "number of files processed concurrently")
	cmd.Flags().StringArrayVarP(&dirExcludeFlags, "exclude", "x", nil, "exclude paths matching glob (can be repeated)")
	cmd.Flags().BoolVar(&dirForceFlag, "force", false, "overwrite existing test files")
	cmd.Flags().StringVar(&dirReportFlag, "report", "", "write per-file results to this .json or .yaml file")

	return cmd
}

func init() {
	rootCmd.AddCommand(gitRepoCmd)
}
