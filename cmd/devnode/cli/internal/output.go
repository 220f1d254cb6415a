package internal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/devnode/devnode/devnode"
)

// Output renders rules, decisions, and parse errors for the CLI.
type Output struct {
	colorize bool
}

// NewOutput creates an Output that colorizes only when stdout is a terminal.
func NewOutput() *Output {
	return &Output{colorize: IsTerminalOutput()}
}

func (o *Output) green(s string) string {
	if o.colorize {
		return color.Green.Sprint(s)
	}
	return s
}

func (o *Output) red(s string) string {
	if o.colorize {
		return color.Red.Sprint(s)
	}
	return s
}

func (o *Output) yellow(s string) string {
	if o.colorize {
		return color.Yellow.Sprint(s)
	}
	return s
}

// RulesTable renders a rule listing in the borderless grype/syft table style.
func (o *Output) RulesTable(rules devnode.Rules) string {
	t := table.NewWriter()

	t.Style().Options.SeparateHeader = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateFooter = false
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{"#", "SELECTOR", "OWNER", "MODE", "ON-CREATE", "COMMAND", "STOP"})

	for i, r := range rules {
		onCreate := ""
		if r.OnCreation != nil {
			onCreate = r.OnCreation.String()
			if r.OnCreation.Kind == devnode.Prevent {
				onCreate = o.red(onCreate)
			}
		}
		command := ""
		if r.Command != nil {
			command = r.Command.String()
		}
		stop := ""
		if r.Matcher.Stop {
			stop = o.yellow("stop")
		}
		t.AppendRow(table.Row{
			i + 1,
			r.Matcher.String(),
			r.Owner.String(),
			r.Mode.String(),
			onCreate,
			command,
			stop,
		})
	}

	return t.Render()
}

// RulesJSON renders a rule listing as indented JSON.
func (o *Output) RulesJSON(rules devnode.Rules) (string, error) {
	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode rules: %w", err)
	}
	return string(data), nil
}

// Decision renders an evaluation outcome as a short report.
func (o *Output) Decision(d devnode.Decision) string {
	var b strings.Builder

	if !d.Matched {
		fmt.Fprintf(&b, "%s no rule matched; defaults apply", o.yellow("○"))
		return b.String()
	}

	fmt.Fprintf(&b, "%s matched\n", o.green("✔"))
	if d.Owner != nil {
		fmt.Fprintf(&b, "  owner    %s\n", d.Owner.String())
	}
	if d.Mode != nil {
		fmt.Fprintf(&b, "  mode     %s\n", d.Mode.String())
	}
	if d.Suppressed {
		fmt.Fprintf(&b, "  node     %s\n", o.red("suppressed"))
	} else if d.OnCreation != nil {
		fmt.Fprintf(&b, "  action   %s %s\n", d.OnCreation.Kind.String(), d.OnCreation.Path)
	}
	for _, c := range d.Commands {
		fmt.Fprintf(&b, "  command  [%s] %s", c.Timing.String(), c.Executable)
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, " %s", strings.Join(c.Args, " "))
		}
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

// DecisionJSON renders an evaluation outcome as indented JSON.
func (o *Output) DecisionJSON(d devnode.Decision) (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode decision: %w", err)
	}
	return string(data), nil
}

// ParseErrors renders per-line parse errors for one file.
func (o *Output) ParseErrors(path string, errs []error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d invalid lines\n", o.red("✗"), path, len(errs))
	for _, err := range errs {
		fmt.Fprintf(&b, "  %s\n", err.Error())
	}
	return strings.TrimRight(b.String(), "\n")
}
