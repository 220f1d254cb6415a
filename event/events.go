package event

import "github.com/wagoodman/go-partybus"

const (
	typePrefix    = "devnode"
	cliTypePrefix = typePrefix + "-cli"

	// Events exclusively for the CLI

	// CLIReport is a partybus event that occurs when the cli is ready to generate a report
	CLIReport partybus.EventType = cliTypePrefix + "-report"

	// CLINotification is a partybus event that occurs when auxiliary information is ready for presentation to stderr
	CLINotification partybus.EventType = cliTypePrefix + "-notification"
)
