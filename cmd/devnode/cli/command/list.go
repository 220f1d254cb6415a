package command

import (
	"fmt"
	"os"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/devnode/devnode/cmd/devnode/cli/internal"
	"github.com/devnode/devnode/devnode"
	"github.com/devnode/devnode/internal/bus"
)

// List creates the list command
func List() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "List the rules in a rule file",
		Long: `List parses a rule file and prints each rule it contains. The filter
glob, when given, is matched against a rule's selector and owner, e.g.
'tty*' or '*:disk'.`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	// Add command-specific flags
	cmd.Flags().String("filter", "", "only list rules whose selector or owner matches this glob")

	return cmd
}

// runList executes the list command
func runList(cmd *cobra.Command, args []string) error {
	// Get global configuration
	globalConfig := GetGlobalConfig(cmd)

	filter, _ := cmd.Flags().GetString("filter")

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

	if filter != "" {
		g, err := glob.Compile(filter)
		if err != nil {
			err = fmt.Errorf("invalid filter %q: %w", filter, err)
			HandleError(err, globalConfig.Quiet)
			return err
		}
		filtered := make(devnode.Rules, 0, len(rules))
		for _, r := range rules {
			if g.Match(r.Matcher.Selector.String()) || g.Match(r.Owner.String()) {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	switch opts.Output {
	case formatJSON:
		report, err := output.RulesJSON(rules)
		if err != nil {
			HandleError(err, globalConfig.Quiet)
			return err
		}
		bus.Report(report)
	default:
		bus.Report(output.RulesTable(rules))
	}
	return nil
}
