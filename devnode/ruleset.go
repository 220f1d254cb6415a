package devnode

import "strings"

// ParseRules parses a whole newline-delimited configuration under
// DefaultRevision. See Parser.ParseAll.
func ParseRules(input string) (Rules, []error) {
	return NewParser(DefaultRevision).ParseAll(input)
}

// ParseAll parses every line of a newline-delimited configuration. Comment
// and empty lines are skipped; each malformed line contributes one error
// (carrying its line number) without affecting any other line. Callers
// decide whether any error invalidates the whole set.
//
// Lines are split without a length limit; a rule line is as long as its
// regex and command need to be.
func (p *Parser) ParseAll(input string) (Rules, []error) {
	var rules Rules
	var errs []error
	for i, text := range strings.Split(strings.TrimSuffix(input, "\n"), "\n") {
		ln, err := p.parseLine(strings.TrimSuffix(text, "\r"), i+1)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ln.Kind == LineRule {
			rules = append(rules, *ln.Rule)
		}
	}
	return rules, errs
}
