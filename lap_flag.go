package lap

import (
	"fmt"
	"strings"
)

const (
	longPrefix  = "--"
	shortPrefix = "-"
)

// Action controls what a flag records when it is present on the command line.
type Action int

const (
	ActionStoreValue Action = iota // records the following token as a string
	ActionStoreTrue                // records true, consumes nothing
)

func (a Action) String() string {
	switch a {
	case ActionStoreTrue:
		return "store_true"
	default:
		return "store_value"
	}
}

// ParseAction converts a textual action (as found in definition files) into an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "store_value", "store-value", "store":
		return ActionStoreValue, nil
	case "store_true", "store-true":
		return ActionStoreTrue, nil
	}
	return ActionStoreValue, fmt.Errorf("unknown action %q (valid actions: store_true, store_value)", s)
}

type Flag struct {
	Name     string // Canonical long form, e.g. "--output"
	Alias    string // Optional short form, e.g. "-o"
	Required bool   // Whether parsing fails when the flag is absent
	Help     string // Help text shown in usage
	Action   Action // What the flag records when present
}

func NewFlag(name string) *Flag {
	return &Flag{Name: name}
}

func (f *Flag) SetAlias(alias string) *Flag {
	f.Alias = alias
	return f
}

func (f *Flag) SetHelp(help string) *Flag {
	f.Help = help
	return f
}

func (f *Flag) SetRequired(b bool) *Flag {
	f.Required = b
	return f
}

func (f *Flag) SetAction(a Action) *Flag {
	f.Action = a
	return f
}

func (f *Flag) SetStoreTrue() *Flag {
	f.Action = ActionStoreTrue
	return f
}

func (f *Flag) Register(p *Parser) error {
	return p.AddFlag(f.Name, f.Alias, f.Required, f.Help, f.Action)
}

// Key is the name under which the flag's value is recorded in a Result.
func (f Flag) Key() string {
	return stripPrefix(f.Name)
}

func (f Flag) IsStoreTrue() bool {
	return f.Action == ActionStoreTrue
}

// Validate checks the prefix conventions: names start with "--", aliases with "-".
func (f Flag) Validate() error {
	if !strings.HasPrefix(f.Name, longPrefix) {
		return &DefinitionError{Name: f.Name, Reason: "name must start with '--'"}
	}
	if f.Alias != "" && !strings.HasPrefix(f.Alias, shortPrefix) {
		return &DefinitionError{Name: f.Name, Alias: f.Alias, Reason: "alias must start with '-'"}
	}
	return nil
}

// matches reports whether token is this flag's name, or its alias when aliases are honored.
func (f Flag) matches(token string, aliases bool) bool {
	if token == f.Name {
		return true
	}
	return aliases && f.Alias != "" && token == f.Alias
}
