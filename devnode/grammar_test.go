package devnode

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Revision_numericBounds(t *testing.T) {
	const input = "@300,1 root:root 600"

	t.Run("original rejects in the grammar", func(t *testing.T) {
		_, err := NewParser(RevisionOriginal).ParseLine(input)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("error = %v (%T), want *SyntaxError", err, err)
		}
		if syntaxErr.Expected != "number in 0..255" {
			t.Errorf("expected-token = %q", syntaxErr.Expected)
		}
	})

	t.Run("simplified rejects during validation", func(t *testing.T) {
		_, err := NewParser(RevisionSimplified).ParseLine(input)
		var semErr *SemanticError
		if !errors.As(err, &semErr) {
			t.Fatalf("error = %v (%T), want *SemanticError", err, err)
		}
	})
}

func Test_Revision_danglingRange(t *testing.T) {
	const input = "@1,4- root:root 600"

	t.Run("original requires a digit", func(t *testing.T) {
		_, err := NewParser(RevisionOriginal).ParseLine(input)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("error = %v (%T), want *SyntaxError", err, err)
		}
	})

	t.Run("simplified reads an open range", func(t *testing.T) {
		got, err := NewParser(RevisionSimplified).ParseLine(input)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		want := MajMin{Major: 1, Minor: 4, MaxMinor: intp(255)}
		if diff := cmp.Diff(want, got.Rule.Matcher.Selector); diff != "" {
			t.Errorf("selector mismatch (-want +got):\n%s", diff)
		}
	})
}

func Test_Revision_emptyEnvPattern(t *testing.T) {
	const input = "FOO=;null root:root 600"

	t.Run("original accepts an empty pattern", func(t *testing.T) {
		got, err := NewParser(RevisionOriginal).ParseLine(input)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		want := Matcher{
			EnvMatches: []EnvMatch{{Var: "FOO", Pattern: ""}},
			Selector:   DeviceRegex{Pattern: "null"},
		}
		if diff := cmp.Diff(want, got.Rule.Matcher); diff != "" {
			t.Errorf("matcher mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("simplified rejects it", func(t *testing.T) {
		_, err := NewParser(RevisionSimplified).ParseLine(input)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("error = %v (%T), want *SyntaxError", err, err)
		}
		if syntaxErr.Expected != "pattern" {
			t.Errorf("expected-token = %q", syntaxErr.Expected)
		}
	})
}

func Test_Revision_pathWhitespace(t *testing.T) {
	const input = "null root:root 600 =a\vb"

	t.Run("original allows vertical tab in paths", func(t *testing.T) {
		got, err := NewParser(RevisionOriginal).ParseLine(input)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		want := &OnCreation{Kind: MoveTo, Path: "a\vb"}
		if diff := cmp.Diff(want, got.Rule.OnCreation); diff != "" {
			t.Errorf("on-creation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("simplified rejects it", func(t *testing.T) {
		_, err := NewParser(RevisionSimplified).ParseLine(input)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("error = %v (%T), want *SyntaxError", err, err)
		}
		if syntaxErr.Expected != "path character" {
			t.Errorf("expected-token = %q", syntaxErr.Expected)
		}
	})
}

func Test_Revision_invertedRange(t *testing.T) {
	// an inverted minor range is a value error in both revisions
	const input = "@1,5-2 root:root 600"
	for _, rev := range []Revision{RevisionOriginal, RevisionSimplified} {
		_, err := NewParser(rev).ParseLine(input)
		var semErr *SemanticError
		if !errors.As(err, &semErr) {
			t.Errorf("revision %d: error = %v (%T), want *SemanticError", rev, err, err)
		}
	}
}

func Test_Revision_zeroValueParser(t *testing.T) {
	// the zero revision resolves to the default
	p := NewParser(0)
	if p.Revision != DefaultRevision {
		t.Errorf("NewParser(0).Revision = %d, want %d", p.Revision, DefaultRevision)
	}
}
