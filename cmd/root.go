// Package cmd provides the root command and CLI setup for uft.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/uft/internal/adapter"
	"github.com/mouse-blink/uft/internal/config"
	"github.com/mouse-blink/uft/internal/controller"
	"github.com/mouse-blink/uft/internal/domain"
	"github.com/mouse-blink/uft/internal/domain/templates"
	"github.com/mouse-blink/uft/internal/logger"
)

var cfg *config.Config
var workflow domain.Workflow
var ui controller.UI

var configFileFlag string
var configDirFlag string
var verbosityFlag int
var logJSONFlag bool
var frameworkFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `uft detects testable constructs in source files with regular
expressions and writes framework-specific test skeletons for them.

Built-in languages: go, java, javascript, python, rust. More languages can
be added with JSON language configs in the --config-dir directory.

Examples:
  uft generate src/calc.py
  uft analyze src/app.js --format json
  uft dir ./src -p 4 -x 'gen/**'
  uft git-repo https://github.com/user/repo -b main`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "uft",
		Short:         "Unified test skeleton generator",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&configFileFlag, "config", "", "config file (default .uft.yaml in the working directory)")
	cmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "directory with JSON language configs (default ./language_configs)")
	cmd.PersistentFlags().CountVarP(&verbosityFlag, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	cmd.PersistentFlags().BoolVar(&logJSONFlag, "log-json", false, "emit logs as JSON")

	return cmd
}

// setup loads the configuration, initializes the logger and wires the
// workflow unless one was injected.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configFileFlag)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("config-dir") {
		loaded.ConfigDir = configDirFlag
	}

	if flags.Changed("verbose") {
		loaded.Log.Verbosity = verbosityFlag
	}

	if flags.Changed("log-json") {
		loaded.Log.JSON = logJSONFlag
	}

	overrides, err := config.ParseFrameworks(frameworkFlags)
	if err != nil {
		return err
	}

	loaded.Frameworks = config.MergeFrameworks(loaded.Frameworks, overrides)
	cfg = loaded

	if err := logger.Initialize(cfg.Log.Verbosity, cfg.Log.JSON); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	if workflow != nil {
		return nil
	}

	languages, err := config.LoadLanguageConfigs(cfg.ConfigDir)
	if err != nil {
		return err
	}

	registry := domain.NewRegistry(templates.NewStore(), languages...)
	orchestrator := domain.NewOrchestrator(registry, domain.WithFrameworks(cfg.Frameworks))

	ui = controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalGitAdapter(),
		adapter.NewReportStore(),
		ui,
		orchestrator,
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		stop()
		os.Exit(1)
	}
}

// printError writes err followed by every hint attached to it.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	for _, hint := range errors.GetAllHints(err) {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
