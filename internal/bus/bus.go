// Package bus is the publisher seam between the devnode commands and the
// application's event loop. Commands publish CLI reports (rule listings,
// decisions, parse errors), notifications, and exit requests; main drains
// them. Without an installed publisher every publish is a no-op, so library
// code may publish unconditionally.
package bus

import "github.com/wagoodman/go-partybus"

var publisher partybus.Publisher

// Set installs the singleton publisher the application drains from.
func Set(p partybus.Publisher) {
	publisher = p
}

func Get() partybus.Publisher {
	return publisher
}

// Publish puts an event on the bus, or does nothing when no publisher is
// installed.
func Publish(e partybus.Event) {
	if publisher != nil {
		publisher.Publish(e)
	}
}
