package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devnode/devnode/cmd/devnode/cli/internal"
	"github.com/devnode/devnode/internal/bus"
)

// Check creates the check command
func Check() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate one or more device-node rule files",
		Long: `Check parses rule files and reports every malformed line with its line
and column. A malformed line never affects the lines around it.

Exit codes:
- 0: Every line in every file parsed
- 1: One or more lines are invalid or an error occurred`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	// Add command-specific flags
	cmd.Flags().Bool("fail-fast", false, "stop at the first file with invalid lines")

	return cmd
}

// runCheck executes the check command
func runCheck(cmd *cobra.Command, args []string) error {
	// Get global configuration
	globalConfig := GetGlobalConfig(cmd)

	failFast, _ := cmd.Flags().GetBool("fail-fast")

	opts, err := LoadOptions(globalConfig)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}
	parser, err := ParserFor(opts.Revision)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	output := internal.NewOutput()
	invalid := 0
	for _, path := range args {
		// #nosec G304 -- the CLI intentionally accepts arbitrary rule file paths
		data, err := os.ReadFile(path)
		if err != nil {
			HandleError(fmt.Errorf("failed to read %s: %w", path, err), globalConfig.Quiet)
			return err
		}

		rules, errs := parser.ParseAll(string(data))
		if globalConfig.Verbose {
			bus.Notify(fmt.Sprintf("%s: %d rules, %d invalid lines", path, len(rules), len(errs)))
		}

		if len(errs) > 0 {
			invalid++
			bus.Report(output.ParseErrors(path, errs))
			if failFast {
				break
			}
			continue
		}
		if !globalConfig.Quiet {
			bus.Report(fmt.Sprintf("%s: %d rules", path, len(rules)))
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files contain invalid rules", invalid, len(args))
	}
	return nil
}
