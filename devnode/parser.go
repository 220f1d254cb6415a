package devnode

import (
	"fmt"
	"strings"
)

// Parser parses configuration lines under one grammar revision. The zero
// value parses with DefaultRevision.
type Parser struct {
	Revision Revision
}

// NewParser returns a parser for the given grammar revision.
func NewParser(rev Revision) *Parser {
	if rev == 0 {
		rev = DefaultRevision
	}
	return &Parser{Revision: rev}
}

// ParseLine classifies one configuration line under DefaultRevision.
func ParseLine(text string) (Line, error) {
	return NewParser(DefaultRevision).ParseLine(text)
}

// ParseLine classifies one configuration line as a comment, an empty line,
// or a rule. Malformed rules return a *SyntaxError or *SemanticError; the
// error never affects other lines.
func (p *Parser) ParseLine(text string) (Line, error) {
	return p.parseLine(text, 1)
}

func (p *Parser) parseLine(text string, lineNo int) (Line, error) {
	if strings.HasPrefix(text, "#") {
		return Line{Kind: LineComment, Comment: strings.TrimPrefix(text[1:], " ")}, nil
	}
	if strings.TrimLeft(text, " \t") == "" {
		return Line{Kind: LineEmpty}, nil
	}
	r, err := p.parseRule(text, lineNo)
	if err != nil {
		return Line{}, err
	}
	return Line{Kind: LineRule, Rule: r}, nil
}

func (p *Parser) parseRule(text string, lineNo int) (*Rule, error) {
	s := newScanner(p.Revision, text, lineNo)
	s.skipSpace()

	matcherCol := s.column()
	m, err := p.parseMatcher(s)
	if err != nil {
		return nil, err
	}

	if s.skipSpace() == 0 {
		return nil, s.errExpected(s.column(), "whitespace before user:group")
	}
	user, err := s.scanName()
	if err != nil {
		return nil, err
	}
	if s.peek() != ':' {
		return nil, s.errExpected(s.column(), "':'")
	}
	s.advance()
	group, err := s.scanName()
	if err != nil {
		return nil, err
	}

	if s.skipSpace() == 0 {
		return nil, s.errExpected(s.column(), "whitespace before mode")
	}
	mode, err := s.scanMode()
	if err != nil {
		return nil, err
	}

	var onCreation *OnCreation
	s.skipSpace()
	if !s.eof() {
		switch s.peek() {
		case '=':
			s.advance()
			path, err := s.scanPath()
			if err != nil {
				return nil, err
			}
			onCreation = &OnCreation{Kind: MoveTo, Path: path}
		case '>':
			s.advance()
			path, err := s.scanPath()
			if err != nil {
				return nil, err
			}
			onCreation = &OnCreation{Kind: Symlink, Path: path}
		case '!':
			s.advance()
			if !s.atFieldEnd() {
				return nil, s.errExpected(s.column(), "end of line or command")
			}
			onCreation = &OnCreation{Kind: Prevent}
		case '@', '$', '*':
			// command only, no on-creation action
		default:
			return nil, s.errExpected(s.column(), "'=path', '>path', '!' or command")
		}
		s.skipSpace()
	}

	var command *Command
	if !s.eof() {
		var timing Timing
		switch s.peek() {
		case '@':
			timing = After
		case '$':
			timing = Before
		case '*':
			timing = Both
		default:
			return nil, s.errExpected(s.column(), "command timing marker")
		}
		s.advance()
		exe, err := s.scanPath()
		if err != nil {
			return nil, err
		}
		command = &Command{Timing: timing, Executable: exe, Args: splitTokens(s.input[s.pos:])}
		s.pos = len(s.input)
	}

	r := &Rule{
		Matcher:    m,
		Owner:      UserGroup{User: user, Group: group},
		Mode:       mode,
		OnCreation: onCreation,
		Command:    command,
	}
	if err := p.validate(s, matcherCol, r); err != nil {
		return nil, err
	}
	return r, nil
}

// parseMatcher reads the matcher field: [-] {VAR=regex;}* selector. The '@'
// byte is resolved by position here: at the start of a selector it begins a
// major/minor pair, never a command timing marker.
func (p *Parser) parseMatcher(s *scanner) (Matcher, error) {
	var m Matcher
	if s.peek() == '-' {
		s.advance()
		if s.atFieldEnd() {
			return m, s.errExpected(s.column(), "selector after '-'")
		}
		m.Stop = true
	}

	// Env-match clauses look like VAR=regex; and there can be any number of
	// them before the selector. A candidate that is missing its trailing ';'
	// backtracks and is read as the device-name regex instead.
	for {
		save := s.pos
		if !isEnvVarChar(s.peek()) {
			break
		}
		v, err := s.scanEnvVar()
		if err != nil {
			s.pos = save
			break
		}
		if s.peek() != '=' {
			s.pos = save
			break
		}
		s.advance()
		pat := s.scanRegex()
		if s.peek() != ';' {
			s.pos = save
			break
		}
		if pat == "" && p.Revision == RevisionSimplified {
			return m, s.errExpected(s.column(), "pattern")
		}
		s.advance()
		m.EnvMatches = append(m.EnvMatches, EnvMatch{Var: v, Pattern: pat})
	}

	switch {
	case s.peek() == '@':
		s.advance()
		sel, err := s.scanMajMin()
		if err != nil {
			return m, err
		}
		if !s.atFieldEnd() {
			return m, s.errExpected(s.column(), "end of selector")
		}
		m.Selector = sel
	case s.peek() == '$':
		s.advance()
		v, err := s.scanEnvVar()
		if err != nil {
			return m, err
		}
		if s.peek() != '=' {
			return m, s.errExpected(s.column(), "'='")
		}
		s.advance()
		pat := s.scanRegex()
		if pat == "" && p.Revision == RevisionSimplified {
			return m, s.errExpected(s.column(), "pattern")
		}
		if !s.atFieldEnd() {
			return m, s.errExpected(s.column(), "end of selector")
		}
		m.Selector = DeviceRegex{CondVar: v, Pattern: pat}
	default:
		col := s.column()
		pat := s.scanRegex()
		if pat == "" {
			return m, s.errExpected(col, "selector")
		}
		if !s.atFieldEnd() {
			return m, s.errExpected(s.column(), "end of selector")
		}
		m.Selector = DeviceRegex{Pattern: pat}
	}
	return m, nil
}

// validate applies the semantic checks the grammar deliberately leaves out:
// numeric-range checks belong here, not in the tokenizer, because
// grammar-embedded range checks are error-prone and have already diverged
// once. Under RevisionOriginal the scanner has enforced the bounds already.
func (p *Parser) validate(s *scanner, matcherCol int, r *Rule) error {
	mm, ok := r.Matcher.Selector.(MajMin)
	if !ok {
		return nil
	}
	if p.Revision == RevisionSimplified {
		if mm.Major > maxDeviceNumber {
			return s.errValue(matcherCol, fmt.Sprintf("major number %d out of range 0..255", mm.Major))
		}
		if mm.Minor > maxDeviceNumber {
			return s.errValue(matcherCol, fmt.Sprintf("minor number %d out of range 0..255", mm.Minor))
		}
		if mm.MaxMinor != nil && *mm.MaxMinor > maxDeviceNumber {
			return s.errValue(matcherCol, fmt.Sprintf("minor number %d out of range 0..255", *mm.MaxMinor))
		}
	}
	if mm.MaxMinor != nil && *mm.MaxMinor < mm.Minor {
		return s.errValue(matcherCol, fmt.Sprintf("minor range %d-%d is inverted", mm.Minor, *mm.MaxMinor))
	}
	return nil
}

// splitTokens splits command arguments on runs of spaces and tabs. Tokens
// are kept verbatim; there is no quoting or expansion.
func splitTokens(str string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(str); i++ {
		if isFieldSpace(str[i]) {
			if start >= 0 {
				tokens = append(tokens, str[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, str[start:])
	}
	return tokens
}
