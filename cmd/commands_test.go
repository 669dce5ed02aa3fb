package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/uft/internal/controller"
	"github.com/mouse-blink/uft/internal/domain"
)

func TestGenerateCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.GenerateArgs
	}{
		{
			name: "conventional location",
			args: []string{"generate", "src/calc.py"},
			want: domain.GenerateArgs{Path: "src/calc.py"},
		},
		{
			name: "output and force",
			args: []string{"generate", "-o", "out", "--force", "src/calc.py"},
			want: domain.GenerateArgs{Path: "src/calc.py", Output: "out", Force: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := withMockWorkflow(t)
			mockWorkflow.On("Generate", tt.want).Return(nil)

			cmd, _ := newTestRoot(newGenerateCmd())
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestGenerateCmd_FrameworkOverride(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Generate", mock.Anything).Return(nil)

	cmd, _ := newTestRoot(newGenerateCmd())
	cmd.SetArgs([]string{"generate", "--framework", "Python=unittest", "calc.py"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "unittest", cfg.Frameworks["python"])
}

func TestGenerateCmd_RequiresPath(t *testing.T) {
	withMockWorkflow(t)

	cmd, _ := newTestRoot(newGenerateCmd())
	cmd.SetArgs([]string{"generate"})

	require.Error(t, cmd.Execute())
}

func TestAnalyzeCmd_Format(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Analyze", domain.AnalyzeArgs{Path: "app.js", Format: controller.FormatJSON}).Return(nil)

	cmd, _ := newTestRoot(newAnalyzeCmd())
	cmd.SetArgs([]string{"analyze", "app.js", "--format", "json"})
	require.NoError(t, cmd.Execute())
}

func TestAnalyzeCmd_DefaultFormat(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Analyze", domain.AnalyzeArgs{Path: "app.js", Format: controller.FormatTable}).Return(nil)

	cmd, _ := newTestRoot(newAnalyzeCmd())
	cmd.SetArgs([]string{"analyze", "app.js"})
	require.NoError(t, cmd.Execute())
}

func TestLanguagesCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Languages").Return(nil)

	cmd, _ := newTestRoot(newLanguagesCmd())
	cmd.SetArgs([]string{"languages"})
	require.NoError(t, cmd.Execute())
}

func TestDirCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Dir", mock.Anything, mock.MatchedBy(func(args domain.DirArgs) bool {
		return args.Root == "src" &&
			args.Parallel == 4 &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == "gen/**" &&
			args.Exclude[1] == "**/*.min.js" &&
			args.Force &&
			args.Report == "report.yaml"
	})).Return(nil)

	cmd, _ := newTestRoot(newDirCmd())
	cmd.SetArgs([]string{"dir", "src", "-p", "4", "-x", "gen/**", "-x", "**/*.min.js", "--force", "--report", "report.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestDirCmd_DefaultsFromConfig(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Dir", mock.Anything, mock.MatchedBy(func(args domain.DirArgs) bool {
		return args.Root == "." && args.Parallel == 1 && len(args.Exclude) == 0 && !args.Force && args.Report == ""
	})).Return(nil)

	cmd, _ := newTestRoot(newDirCmd())
	cmd.SetArgs([]string{"dir", "."})
	require.NoError(t, cmd.Execute())
}

func TestIntegrationCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.IntegrationArgs
	}{
		{
			name: "default output",
			args: []string{"integration-test", "api.js"},
			want: domain.IntegrationArgs{Path: "api.js", Output: "integration-tests"},
		},
		{
			name: "custom output",
			args: []string{"integration-test", "api.js", "-o", "it"},
			want: domain.IntegrationArgs{Path: "api.js", Output: "it"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := withMockWorkflow(t)
			mockWorkflow.On("Integration", tt.want).Return(nil)

			cmd, _ := newTestRoot(newIntegrationCmd())
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestGitRepoCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("GitRepo", mock.Anything, mock.MatchedBy(func(args domain.GitRepoArgs) bool {
		return args.URL == "https://github.com/user/repo" &&
			args.Branch == "develop" &&
			args.Dir == "checkout" &&
			args.Parallel == 2
	})).Return(nil)

	cmd, _ := newTestRoot(newGitRepoCmd())
	cmd.SetArgs([]string{"git-repo", "https://github.com/user/repo", "-b", "develop", "--dir", "checkout", "-p", "2"})
	require.NoError(t, cmd.Execute())
}

func TestGitRepoCmd_DefaultBranch(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("GitRepo", mock.Anything, mock.MatchedBy(func(args domain.GitRepoArgs) bool {
		return args.Branch == "main" && args.Dir == ""
	})).Return(nil)

	cmd, _ := newTestRoot(newGitRepoCmd())
	cmd.SetArgs([]string{"git-repo", "git@github.com:user/repo.git"})
	require.NoError(t, cmd.Execute())
}

func TestPluginCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Plugin", domain.PluginArgs{Target: "zed", Output: "target/plugins"}).Return(nil)

	cmd, _ := newTestRoot(newPluginCmd())
	cmd.SetArgs([]string{"plugin", "zed"})
	require.NoError(t, cmd.Execute())
}

func TestNewPluginCmd(t *testing.T) {
	cmd := newPluginCmd()

	assert.Equal(t, "plugin <spring|vscode|zed>", cmd.Use)
	assert.ElementsMatch(t, []string{"spring", "vscode", "zed"}, cmd.ValidArgs)
	assert.NotNil(t, cmd.Flags().Lookup("output"))
}
