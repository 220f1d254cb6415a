package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devnode/devnode/cmd/devnode/cli/internal"
	"github.com/devnode/devnode/devnode"
	"github.com/devnode/devnode/internal/bus"
)

// Eval creates the eval command
func Eval() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate a device event against a rule file",
		Long: `Eval parses a rule file and evaluates it against one device event built
from the flags, printing the resulting decision: ownership, mode,
on-creation action, commands, and whether node creation is suppressed.

The event's environment comes exclusively from --env flags; the process
environment never participates in matching.`,
		Args: cobra.ExactArgs(1),
		RunE: runEval,
	}

	// Add command-specific flags
	cmd.Flags().String("name", "", "device name")
	cmd.Flags().Uint8("major", 0, "kernel major number (0..255)")
	cmd.Flags().Uint8("minor", 0, "kernel minor number (0..255)")
	cmd.Flags().StringArray("env", nil, "event attribute as KEY=VALUE (repeatable)")

	return cmd
}

// runEval executes the eval command
func runEval(cmd *cobra.Command, args []string) error {
	// Get global configuration
	globalConfig := GetGlobalConfig(cmd)

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

	path := args[0]
	// #nosec G304 -- the CLI intentionally accepts arbitrary rule file paths
	data, err := os.ReadFile(path)
	if err != nil {
		HandleError(fmt.Errorf("failed to read %s: %w", path, err), globalConfig.Quiet)
		return err
	}

	output := internal.NewOutput()
	rules, errs := parser.ParseAll(string(data))
	if len(errs) > 0 {
		bus.Report(output.ParseErrors(path, errs))
		err := fmt.Errorf("%s contains %d invalid lines", path, len(errs))
		HandleError(err, globalConfig.Quiet)
		return err
	}

	ev, err := eventFromFlags(cmd)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	decision := rules.Evaluate(ev)

	switch opts.Output {
	case formatJSON:
		report, err := output.DecisionJSON(decision)
		if err != nil {
			HandleError(err, globalConfig.Quiet)
			return err
		}
		bus.Report(report)
	default:
		bus.Report(output.Decision(decision))
	}
	return nil
}

// eventFromFlags builds the device event from command-line flags.
func eventFromFlags(cmd *cobra.Command) (devnode.DeviceEvent, error) {
	name, _ := cmd.Flags().GetString("name")
	major, _ := cmd.Flags().GetUint8("major")
	minor, _ := cmd.Flags().GetUint8("minor")
	envPairs, _ := cmd.Flags().GetStringArray("env")

	env := make(map[string]string, len(envPairs))
	for _, kv := range envPairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return devnode.DeviceEvent{}, fmt.Errorf("invalid --env %q: expected KEY=VALUE", kv)
		}
		env[k] = v
	}

	return devnode.DeviceEvent{
		Name:  name,
		Major: major,
		Minor: minor,
		Env:   env,
	}, nil
}
