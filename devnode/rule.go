package devnode

// Rules is an ordered rule sequence as it appeared in the configuration,
// evaluated top to bottom. A Rules value is an immutable snapshot: it may be
// evaluated concurrently from any number of goroutines, and reloading a
// configuration means replacing the whole value, never mutating it.
type Rules []Rule

// Rule is one parsed configuration line. It is a value object: created by
// the parser, never mutated afterwards.
type Rule struct {
	Matcher    Matcher     `json:"matcher"`
	Owner      UserGroup   `json:"owner"`
	Mode       Mode        `json:"mode"`
	OnCreation *OnCreation `json:"onCreation,omitempty"`
	Command    *Command    `json:"command,omitempty"`
}

// Matcher selects which device events a rule applies to.
type Matcher struct {
	// Stop terminates rule-set evaluation when this matcher matches.
	Stop bool `json:"stop,omitempty"`

	// EnvMatches must all match, in declared order, before the selector is
	// consulted.
	EnvMatches []EnvMatch `json:"envMatches,omitempty"`

	Selector Selector `json:"selector"`
}

// EnvMatch is one VAR=pattern; clause. The pattern is matched unanchored
// against the event's value for Var.
type EnvMatch struct {
	Var     string `json:"var"`
	Pattern string `json:"pattern"`
}

// Selector is the matcher's device selection, exactly one of MajMin or
// DeviceRegex. The sealed interface keeps "exactly one selector kind" a
// type-level invariant.
type Selector interface {
	isSelector()
	String() string
}

// MajMin selects devices by exact major number and a minor number or
// inclusive minor range.
type MajMin struct {
	Major int `json:"major"`
	Minor int `json:"minor"`

	// MaxMinor, when set, makes Minor..MaxMinor an inclusive range.
	MaxMinor *int `json:"maxMinor,omitempty"`
}

func (MajMin) isSelector() {}

// DeviceRegex selects devices whose name matches Pattern in full. When
// CondVar is non-empty the matcher additionally requires that variable to be
// present in the event's environment; an absent variable defeats the matcher
// regardless of the name regex.
type DeviceRegex struct {
	CondVar string `json:"condVar,omitempty"`
	Pattern string `json:"pattern"`
}

func (DeviceRegex) isSelector() {}

// UserGroup is the owning user and group for the created node. Both are
// non-empty ASCII alphabetic names.
type UserGroup struct {
	User  string `json:"user"`
	Group string `json:"group"`
}

// Mode is a 9-bit permission value parsed from exactly three octal digits.
type Mode uint16

// OnCreationKind discriminates the mutually exclusive on-creation actions.
type OnCreationKind int

const (
	// MoveTo moves the node to Path before creation.
	MoveTo OnCreationKind = iota
	// Symlink moves the node to Path and leaves a symlink at the original name.
	Symlink
	// Prevent suppresses node creation entirely.
	Prevent
)

// OnCreation is a rule's optional on-creation action. Path is empty for
// Prevent.
type OnCreation struct {
	Kind OnCreationKind `json:"kind"`
	Path string         `json:"path,omitempty"`
}

// Timing places a rule's command relative to node creation.
type Timing int

const (
	// After runs the command after the node is created.
	After Timing = iota
	// Before runs the command before the node is created.
	Before
	// Both runs the command before and after.
	Both
)

// Command is a rule's optional command: an executable path and pre-split
// argument tokens. Tokens are carried verbatim; no shell or environment
// expansion is applied.
type Command struct {
	Timing     Timing   `json:"timing"`
	Executable string   `json:"executable"`
	Args       []string `json:"args,omitempty"`
}

// LineKind classifies one configuration line.
type LineKind int

const (
	// LineEmpty is a line of horizontal whitespace only.
	LineEmpty LineKind = iota
	// LineComment is a line starting with '#'.
	LineComment
	// LineRule is a line carrying a rule.
	LineRule
)

// Line is the classification result of parsing one configuration line.
type Line struct {
	Kind LineKind `json:"kind"`

	// Comment is the comment text with the marker and one optional leading
	// space removed. Only set for LineComment.
	Comment string `json:"comment,omitempty"`

	// Rule is only set for LineRule.
	Rule *Rule `json:"rule,omitempty"`
}
