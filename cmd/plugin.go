package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/uft/internal/domain"
	"github.com/mouse-blink/uft/internal/domain/plugins"
	m "github.com/mouse-blink/uft/internal/model"
)

var pluginOutputFlag string

// pluginCmd represents the plugin command.
var pluginCmd = newPluginCmd()

func newPluginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "plugin <" + strings.Join(plugins.Targets(), "|") + ">",
		Short:     "Scaffold an editor plugin for the registered languages",
		Args:      cobra.ExactArgs(1),
		ValidArgs: plugins.Targets(),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := cfg.Plugins.Output
			if cmd.Flags().Changed("output") {
				output = pluginOutputFlag
			}

			return workflow.Plugin(domain.PluginArgs{
				Target: args[0],
				Output: m.Path(output),
			})
		},
	}
	cmd.Flags().StringVarP(&pluginOutputFlag, "output", "o", "target/plugins", "directory for the plugin scaffold")

	return cmd
}

func init() {
	rootCmd.AddCommand(pluginCmd)
}
