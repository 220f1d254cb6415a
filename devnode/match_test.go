package devnode

import (
	"fmt"
	"testing"
)

func mustRule(t *testing.T, input string) *Rule {
	t.Helper()
	got, err := ParseLine(input)
	if err != nil {
		t.Fatalf("ParseLine(%q) error = %v", input, err)
	}
	if got.Kind != LineRule {
		t.Fatalf("ParseLine(%q) = %+v, want a rule", input, got)
	}
	return got.Rule
}

func Test_Matcher_majMinExhaustive(t *testing.T) {
	// every representable major,minor pair parses and matches exactly itself
	for maj := 0; maj <= 255; maj++ {
		for min := 0; min <= 255; min++ {
			r := mustRule(t, fmt.Sprintf("@%d,%d root:root 600", maj, min))
			ev := DeviceEvent{Major: uint8(maj), Minor: uint8(min)}
			if !r.Matcher.Matches(ev) {
				t.Fatalf("@%d,%d does not match its own event", maj, min)
			}
			if r.Matcher.Matches(DeviceEvent{Major: uint8(maj), Minor: uint8(min) + 1}) {
				t.Fatalf("@%d,%d matches minor %d", maj, min, uint8(min)+1)
			}
			if r.Matcher.Matches(DeviceEvent{Major: uint8(maj) + 1, Minor: uint8(min)}) {
				t.Fatalf("@%d,%d matches major %d", maj, min, uint8(maj)+1)
			}
		}
	}
}

func Test_Matcher_minorRange(t *testing.T) {
	r := mustRule(t, "@8,0-3 root:disk 660")
	for min := 0; min <= 255; min++ {
		ev := DeviceEvent{Major: 8, Minor: uint8(min)}
		want := min <= 3
		if got := r.Matcher.Matches(ev); got != want {
			t.Errorf("@8,0-3 against minor %d = %v, want %v", min, got, want)
		}
	}
	if r.Matcher.Matches(DeviceEvent{Major: 9, Minor: 1}) {
		t.Error("@8,0-3 matched major 9")
	}
}

func Test_Matcher_deviceNameAnchoring(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"tty", "tty", true},
		{"tty", "tty0", false},
		{"tty", "atty", false},
		{"tty[0-9]*", "tty42", true},
		{"ty.*", "tty1", false},
		{"hd[a-z][0-9]?", "hdb2", true},
		{"sd[a-z]|hd[a-z]", "sdc", true},
		{"sd[a-z]|hd[a-z]", "sdc1", false},
	}
	for _, tc := range tests {
		r := mustRule(t, tc.pattern+" root:root 600")
		got := r.Matcher.Matches(DeviceEvent{Name: tc.name})
		if got != tc.want {
			t.Errorf("pattern %q against %q = %v, want %v", tc.pattern, tc.name, got, tc.want)
		}
	}
}

func Test_Matcher_envClauses(t *testing.T) {
	r := mustRule(t, "FOO=bar;BAZ=qux;.* root:root 600")

	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{
			name: "all clauses satisfied",
			env:  map[string]string{"FOO": "bar", "BAZ": "qux"},
			want: true,
		},
		{
			name: "substring semantics",
			env:  map[string]string{"FOO": "crowbar", "BAZ": "quxx"},
			want: true,
		},
		{
			name: "second clause fails",
			env:  map[string]string{"FOO": "bar", "BAZ": "nope"},
			want: false,
		},
		{
			name: "absent variable fails its clause",
			env:  map[string]string{"FOO": "bar"},
			want: false,
		},
		{
			name: "no environment at all",
			env:  nil,
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Matcher.Matches(DeviceEvent{Name: "whatever", Env: tc.env})
			if got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func Test_Matcher_envClausesBeforeMajMin(t *testing.T) {
	// env clauses gate a numeric selector the same way they gate a regex
	r := mustRule(t, "FOO=bar;BAZ=qux;@1,1 root:root 644")

	tests := []struct {
		name string
		ev   DeviceEvent
		want bool
	}{
		{
			name: "clauses and numbers all match",
			ev:   DeviceEvent{Major: 1, Minor: 1, Env: map[string]string{"FOO": "bar", "BAZ": "qux"}},
			want: true,
		},
		{
			name: "clause fails",
			ev:   DeviceEvent{Major: 1, Minor: 1, Env: map[string]string{"FOO": "baz", "BAZ": "qux"}},
			want: false,
		},
		{
			name: "numbers fail",
			ev:   DeviceEvent{Major: 1, Minor: 2, Env: map[string]string{"FOO": "bar", "BAZ": "qux"}},
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Matcher.Matches(tc.ev); got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func Test_Matcher_envClauseShortCircuit(t *testing.T) {
	// the failing first clause must stop evaluation before the second clause
	// touches its pattern; observable through the lazy compile cache
	const lazyPattern = "qux-never-compiled-f3a9"
	r := mustRule(t, "FOO=bar;BAZ="+lazyPattern+";.* root:root 600")

	if r.Matcher.Matches(DeviceEvent{Name: "dev", Env: map[string]string{"FOO": "baz", "BAZ": "x"}}) {
		t.Fatal("matcher matched with failing first clause")
	}

	regexMu.RLock()
	_, compiled := regexCache[lazyPattern]
	regexMu.RUnlock()
	if compiled {
		t.Errorf("second clause pattern %q was compiled after the first clause failed", lazyPattern)
	}
}

func Test_Matcher_envCondition(t *testing.T) {
	r := mustRule(t, "$MYVAR=dev[0-9] root:root 600")

	tests := []struct {
		name string
		ev   DeviceEvent
		want bool
	}{
		{
			name: "variable present and name matches",
			ev:   DeviceEvent{Name: "dev3", Env: map[string]string{"MYVAR": "anything"}},
			want: true,
		},
		{
			name: "variable present with empty value",
			ev:   DeviceEvent{Name: "dev3", Env: map[string]string{"MYVAR": ""}},
			want: true,
		},
		{
			name: "variable absent",
			ev:   DeviceEvent{Name: "dev3"},
			want: false,
		},
		{
			name: "variable present but name does not match",
			ev:   DeviceEvent{Name: "dev33", Env: map[string]string{"MYVAR": "x"}},
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Matcher.Matches(tc.ev)
			if got != tc.want {
				t.Errorf("Matches(%+v) = %v, want %v", tc.ev, got, tc.want)
			}
		})
	}
}

func Test_Matcher_invalidPatternMatchesNothing(t *testing.T) {
	r := mustRule(t, "dev[ root:root 600")
	if r.Matcher.Matches(DeviceEvent{Name: "dev["}) {
		t.Error("invalid pattern matched")
	}
}
