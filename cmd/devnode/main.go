package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/wagoodman/go-partybus"

	"github.com/anchore/clio"
	"github.com/devnode/devnode/cmd/devnode/cli"
	"github.com/devnode/devnode/event"
	"github.com/devnode/devnode/internal"
	"github.com/devnode/devnode/internal/bus"
)

var (
	version        = internal.NotProvided
	gitCommit      = internal.NotProvided
	buildDate      = internal.NotProvided
	gitDescription = internal.NotProvided
)

func main() {
	internal.SetBuildInfo(version, gitCommit, buildDate, gitDescription, runtime.Version())

	b := partybus.NewBus()
	bus.Set(b)

	done := make(chan struct{})
	go drain(b.Subscribe(), done)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		bus.ExitWithInterrupt()
	}()

	app := cli.Application()
	err := app.Execute()

	b.Close()
	<-done

	if err != nil {
		os.Exit(1)
	}
}

// drain prints bus events until the bus closes: reports to stdout,
// notifications to stderr.
func drain(sub *partybus.Subscription, done chan struct{}) {
	defer close(done)
	exitType := clio.ExitEvent(false).Type
	for e := range sub.Events() {
		switch e.Type {
		case event.CLIReport:
			fmt.Fprintln(os.Stdout, e.Value)
		case event.CLINotification:
			fmt.Fprintln(os.Stderr, e.Value)
		case exitType:
			os.Exit(130)
		}
	}
}
