package command

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/logrus"
	"github.com/devnode/devnode/cmd/devnode/cli/internal"
	"github.com/devnode/devnode/cmd/devnode/cli/option"
	"github.com/devnode/devnode/devnode"
	"github.com/devnode/devnode/internal/log"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// GlobalConfig holds configuration that applies to all commands
type GlobalConfig struct {
	ConfigFile   string
	OutputFormat string
	Revision     string
	Quiet        bool
	Verbose      bool
}

// GetGlobalConfig extracts global configuration from cobra command
func GetGlobalConfig(cmd *cobra.Command) *GlobalConfig {
	configFile, _ := cmd.Flags().GetString("config")
	outputFormat, _ := cmd.Flags().GetString("output")
	revision, _ := cmd.Flags().GetString("revision")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return &GlobalConfig{
		ConfigFile:   configFile,
		OutputFormat: outputFormat,
		Revision:     revision,
		Quiet:        quiet,
		Verbose:      verbose,
	}
}

// SetupLogging configures logging based on verbose flag
func SetupLogging(verbose bool) {
	var logLevel logger.Level
	if verbose {
		logLevel = logger.DebugLevel
	} else {
		logLevel = logger.WarnLevel
	}

	cfg := logrus.Config{
		EnableConsole: true,
		Level:         logLevel,
	}

	l, _ := logrus.New(cfg)
	log.Set(l)
}

// LoadOptions merges the configuration file with command-line overrides.
func LoadOptions(config *GlobalConfig) (option.App, error) {
	opts, err := internal.LoadConfig(config.ConfigFile)
	if err != nil {
		return opts, fmt.Errorf("failed to load config: %w", err)
	}
	if config.OutputFormat != "" {
		opts.Output = config.OutputFormat
	}
	if config.Revision != "" {
		opts.Revision = config.Revision
	}
	if opts.Output != formatTable && opts.Output != formatJSON {
		return opts, fmt.Errorf("unsupported output format: %s", opts.Output)
	}
	return opts, nil
}

// ParserFor builds a rule parser for the named grammar revision.
func ParserFor(revision string) (*devnode.Parser, error) {
	switch revision {
	case "original":
		return devnode.NewParser(devnode.RevisionOriginal), nil
	case "simplified", "":
		return devnode.NewParser(devnode.RevisionSimplified), nil
	default:
		return nil, fmt.Errorf("unknown grammar revision: %s", revision)
	}
}

// HandleError handles command errors consistently
func HandleError(err error, quiet bool) {
	if err == nil || quiet {
		return
	}
	msg := fmt.Sprintf("Error: %v", err)
	if internal.IsTerminalError() {
		msg = color.Red.Sprint(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}
