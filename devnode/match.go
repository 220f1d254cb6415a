package devnode

import (
	"regexp"
	"sync"

	"github.com/devnode/devnode/internal/log"
)

// Regex tokens are opaque to the grammar and compile lazily, on first use
// during evaluation. The cache is shared across rule sets; concurrent
// evaluations hit it read-mostly.
var (
	regexMu    sync.RWMutex
	regexCache = make(map[string]*regexp.Regexp)
)

func compileCached(expr string) (*regexp.Regexp, error) {
	regexMu.RLock()
	re, ok := regexCache[expr]
	regexMu.RUnlock()
	if ok {
		return re, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	regexMu.Lock()
	regexCache[expr] = re
	regexMu.Unlock()
	return re, nil
}

// matchSubstring applies pattern unanchored, the substring semantics used
// for env-match clauses. A pattern that fails to compile matches nothing.
func matchSubstring(pattern, value string) bool {
	re, err := compileCached(pattern)
	if err != nil {
		log.Errorf("bad pattern %q: %v", pattern, err)
		return false
	}
	return re.MatchString(value)
}

// matchDeviceName applies pattern against the whole device name and returns
// the submatches, or nil when the name does not match.
func matchDeviceName(pattern, name string) []string {
	re, err := compileCached("^(?:" + pattern + ")$")
	if err != nil {
		log.Errorf("bad device pattern %q: %v", pattern, err)
		return nil
	}
	return re.FindStringSubmatch(name)
}

// Matches reports whether the matcher applies to the event.
func (m Matcher) Matches(ev DeviceEvent) bool {
	ok, _ := m.match(ev)
	return ok
}

// match evaluates the matcher and, for a matching DeviceRegex selector,
// returns the device-name submatches for capture expansion.
//
// Env-match clauses are evaluated left to right and the first failing clause
// short-circuits: the remaining clauses are not evaluated. That ordering is
// part of the contract, not an optimization. A variable absent from the
// event fails its clause; it is never a fault.
func (m Matcher) match(ev DeviceEvent) (bool, []string) {
	for _, em := range m.EnvMatches {
		value, ok := ev.Env[em.Var]
		if !ok {
			return false, nil
		}
		if !matchSubstring(em.Pattern, value) {
			return false, nil
		}
	}

	switch sel := m.Selector.(type) {
	case MajMin:
		if int(ev.Major) != sel.Major {
			return false, nil
		}
		if sel.MaxMinor != nil {
			return int(ev.Minor) >= sel.Minor && int(ev.Minor) <= *sel.MaxMinor, nil
		}
		return int(ev.Minor) == sel.Minor, nil
	case DeviceRegex:
		if sel.CondVar != "" {
			if _, ok := ev.Env[sel.CondVar]; !ok {
				return false, nil
			}
		}
		sub := matchDeviceName(sel.Pattern, ev.Name)
		return sub != nil, sub
	default:
		return false, nil
	}
}
