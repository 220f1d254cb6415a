package cli

import (
	"github.com/spf13/cobra"

	"github.com/devnode/devnode/cmd/devnode/cli/command"
	"github.com/devnode/devnode/internal"
)

// Application constructs the devnode CLI application
func Application() *cobra.Command {
	app := &cobra.Command{
		Use:   "devnode",
		Short: "Parse and evaluate device-node creation rules",
		Long: `Devnode parses mdev-style rule files that control dynamic device-node
creation and evaluates them against concrete device events to decide ownership,
permission mode, on-creation action, and commands. It decides; it does not
touch the filesystem or spawn anything.`,
		Version:       internal.ApplicationVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Set up logging based on verbose flag
			verbose, _ := cmd.Flags().GetBool("verbose")
			command.SetupLogging(verbose)
		},
	}

	// Add global flags
	app.PersistentFlags().StringP("config", "c", "", "path to configuration file")
	app.PersistentFlags().StringP("output", "o", "", "output format (table, json)")
	app.PersistentFlags().StringP("revision", "r", "", "grammar revision (original, simplified)")
	app.PersistentFlags().BoolP("quiet", "q", false, "suppress all non-essential output")
	app.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Add subcommands
	app.AddCommand(
		command.Check(),
		command.Eval(),
		command.List(),
		command.Version(),
	)

	return app
}
