package devnode

// Decision is the merged outcome of evaluating a rule set against one
// device event: ownership, permission mode, the final on-creation action,
// the accumulated commands, and whether node creation is suppressed. A
// Decision is produced fresh per evaluation and never cached. An event
// matching no rule yields the zero Decision: no override, default mode, no
// action, no commands.
type Decision struct {
	// Matched reports whether any rule applied.
	Matched bool `json:"matched"`

	// Owner and Mode are the last-match-wins overrides, nil when no rule
	// applied.
	Owner *UserGroup `json:"owner,omitempty"`
	Mode  *Mode      `json:"mode,omitempty"`

	// OnCreation is the last-match-wins on-creation action.
	OnCreation *OnCreation `json:"onCreation,omitempty"`

	// Suppressed latches once any applied rule carries the Prevent action,
	// independent of later OnCreation overrides.
	Suppressed bool `json:"suppressed,omitempty"`

	// Commands accumulates every applied rule's command in file order; a
	// later match extends the sequence rather than replacing it.
	Commands []Command `json:"commands,omitempty"`
}

// Evaluate runs the ordered rule sequence against one device event.
func Evaluate(rules Rules, ev DeviceEvent) Decision {
	return rules.Evaluate(ev)
}

// Evaluate iterates the rules in file order. Each matching rule overrides
// owner, mode and on-creation action (last match wins) and appends its
// command. A matched rule carrying the stop marker terminates evaluation
// immediately; no further rules are considered even if they would match. A
// Prevent action suppresses node creation but does not itself stop
// evaluation.
//
// In move and symlink paths, %1 through %9 refer to capture groups of the
// device-name regex that selected the rule; references without a
// corresponding group are left literal.
func (rs Rules) Evaluate(ev DeviceEvent) Decision {
	var d Decision
	for _, r := range rs {
		ok, captures := r.Matcher.match(ev)
		if !ok {
			continue
		}
		d.Matched = true
		owner := r.Owner
		d.Owner = &owner
		mode := r.Mode
		d.Mode = &mode
		if r.OnCreation != nil {
			oc := *r.OnCreation
			if oc.Kind == Prevent {
				d.Suppressed = true
			} else {
				oc.Path = expandCaptures(oc.Path, captures)
			}
			d.OnCreation = &oc
		}
		if r.Command != nil {
			d.Commands = append(d.Commands, *r.Command)
		}
		if r.Matcher.Stop {
			break
		}
	}
	return d
}

// expandCaptures substitutes %1..%9 with the corresponding device-name
// capture group. captures[0] is the whole match and is not addressable.
func expandCaptures(path string, captures []string) string {
	if len(captures) < 2 {
		return path
	}
	var out []byte
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '%' && i+1 < len(path) && path[i+1] >= '1' && path[i+1] <= '9' {
			n := int(path[i+1] - '0')
			if n < len(captures) {
				out = append(out, captures[n]...)
				i++
				continue
			}
		}
		out = append(out, c)
	}
	return string(out)
}
