package devnode

import (
	"fmt"
	"strings"
)

// String renders the selector in configuration syntax.
func (s MajMin) String() string {
	if s.MaxMinor != nil {
		return fmt.Sprintf("@%d,%d-%d", s.Major, s.Minor, *s.MaxMinor)
	}
	return fmt.Sprintf("@%d,%d", s.Major, s.Minor)
}

func (s DeviceRegex) String() string {
	if s.CondVar != "" {
		return "$" + s.CondVar + "=" + s.Pattern
	}
	return s.Pattern
}

func (m Matcher) String() string {
	var b strings.Builder
	if m.Stop {
		b.WriteByte('-')
	}
	for _, em := range m.EnvMatches {
		b.WriteString(em.Var)
		b.WriteByte('=')
		b.WriteString(em.Pattern)
		b.WriteByte(';')
	}
	b.WriteString(m.Selector.String())
	return b.String()
}

func (ug UserGroup) String() string {
	return ug.User + ":" + ug.Group
}

// String renders the mode as three octal digits.
func (m Mode) String() string {
	return fmt.Sprintf("%03o", uint16(m))
}

func (k OnCreationKind) String() string {
	switch k {
	case MoveTo:
		return "move"
	case Symlink:
		return "symlink"
	case Prevent:
		return "prevent"
	default:
		return "unknown"
	}
}

func (oc OnCreation) String() string {
	switch oc.Kind {
	case MoveTo:
		return "=" + oc.Path
	case Symlink:
		return ">" + oc.Path
	case Prevent:
		return "!"
	default:
		return ""
	}
}

func (t Timing) String() string {
	switch t {
	case After:
		return "after"
	case Before:
		return "before"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Marker is the configuration byte for the timing.
func (t Timing) Marker() byte {
	switch t {
	case Before:
		return '$'
	case Both:
		return '*'
	default:
		return '@'
	}
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteByte(c.Timing.Marker())
	b.WriteString(c.Executable)
	for _, arg := range c.Args {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	return b.String()
}

// String renders the rule back into configuration syntax. Parsing the
// rendering yields an equal rule.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Matcher.String())
	b.WriteByte(' ')
	b.WriteString(r.Owner.String())
	b.WriteByte(' ')
	b.WriteString(r.Mode.String())
	if r.OnCreation != nil {
		b.WriteByte(' ')
		b.WriteString(r.OnCreation.String())
	}
	if r.Command != nil {
		b.WriteByte(' ')
		b.WriteString(r.Command.String())
	}
	return b.String()
}

// String renders the whole rule set, one rule per line.
func (rs Rules) String() string {
	lines := make([]string, len(rs))
	for i, r := range rs {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
