package devnode

import "fmt"

// SyntaxError reports malformed text: the 1-based line and column where
// scanning failed, what the grammar expected there, and what was found.
type SyntaxError struct {
	Line     int
	Column   int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("syntax error at line %d, column %d: expected %s", e.Line, e.Column, e.Expected)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %q", e.Line, e.Column, e.Expected, e.Found)
}

// SemanticError reports a syntactically valid value that is out of domain,
// such as a major number above 255.
type SemanticError struct {
	Line   int
	Column int
	Reason string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("invalid value at line %d, column %d: %s", e.Line, e.Column, e.Reason)
}
