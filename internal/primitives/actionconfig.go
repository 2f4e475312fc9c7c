package primitives

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ActionKind names the kind of an ActionConfig node.
type ActionKind string

const (
	Callback   ActionKind = "callback"
	Condition  ActionKind = "condition"
	Delay      ActionKind = "delay"
	DelayFrame ActionKind = "delay_frame"
	Sequence   ActionKind = "sequence"
	Parallel   ActionKind = "parallel"
	Repeat     ActionKind = "repeat"
)

// Leaf reports whether k never has children.
func (k ActionKind) Leaf() bool {
	switch k {
	case Callback, Condition, Delay, DelayFrame:
		return true
	}
	return false
}

// Duration is a time.Duration that marshals as text ("1.5s") in JSON and YAML.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// ActionConfig is one node of a script tree.
//
// Callback names the function a callback node runs; on delay and delay_frame
// nodes it is an optional completion callback. Condition is a registered
// predicate name or an expression evaluated against the blackboard. Count is
// the repeat count, zero meaning forever. A repeat with several children
// repeats them as a sequence.
type ActionConfig struct {
	ID        string          `json:"id,omitempty" yaml:"id,omitempty"`
	Kind      ActionKind      `json:"kind" yaml:"kind"`
	Callback  string          `json:"callback,omitempty" yaml:"callback,omitempty"`
	Condition string          `json:"condition,omitempty" yaml:"condition,omitempty"`
	Duration  Duration        `json:"duration,omitempty" yaml:"duration,omitempty"`
	Frames    int             `json:"frames,omitempty" yaml:"frames,omitempty"`
	Count     int             `json:"count,omitempty" yaml:"count,omitempty"`
	Children  []*ActionConfig `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewActionConfig creates a node of kind k.
func NewActionConfig(k ActionKind) *ActionConfig {
	return &ActionConfig{Kind: k}
}

// WithID sets the node ID.
func (a *ActionConfig) WithID(id string) *ActionConfig {
	a.ID = id
	return a
}

// AddChild appends a child node.
func (a *ActionConfig) AddChild(child *ActionConfig) *ActionConfig {
	a.Children = append(a.Children, child)
	return a
}

// Label is the node ID when set, otherwise its kind.
func (a *ActionConfig) Label() string {
	if a.ID != "" {
		return a.ID
	}
	return string(a.Kind)
}

// Walk visits the node and its descendants depth first. The path of the root
// is its label; descendants append "/label".
func (a *ActionConfig) Walk(fn func(path string, node *ActionConfig)) {
	a.walk(a.Label(), fn)
}

func (a *ActionConfig) walk(path string, fn func(string, *ActionConfig)) {
	fn(path, a)
	for _, child := range a.Children {
		if child == nil {
			continue
		}
		child.walk(path+"/"+child.Label(), fn)
	}
}

// Validate performs recursive validation of the node tree.
func (a *ActionConfig) Validate() error {
	switch a.Kind {
	case Callback, Condition, Delay, DelayFrame, Sequence, Parallel, Repeat:
	case "":
		return errors.New("action kind is required")
	default:
		return fmt.Errorf("invalid action kind %q for %s", a.Kind, a.Label())
	}

	if a.Kind.Leaf() && len(a.Children) > 0 {
		return fmt.Errorf("%s action %s cannot have children", a.Kind, a.Label())
	}

	switch a.Kind {
	case Callback:
		if strings.TrimSpace(a.Callback) == "" {
			return fmt.Errorf("callback action %s requires a callback name", a.Label())
		}
	case Condition:
		if strings.TrimSpace(a.Condition) == "" {
			return fmt.Errorf("condition action %s requires a condition", a.Label())
		}
	case Delay:
		if a.Duration < 0 {
			return fmt.Errorf("delay action %s has negative duration %s", a.Label(), a.Duration.Std())
		}
	case DelayFrame:
		if a.Frames < 0 {
			return fmt.Errorf("delay_frame action %s has negative frames %d", a.Label(), a.Frames)
		}
	case Repeat:
		if a.Count < 0 {
			return fmt.Errorf("repeat action %s has negative count %d", a.Label(), a.Count)
		}
	}

	for i, child := range a.Children {
		if child == nil {
			return fmt.Errorf("child %d of %s is nil", i, a.Label())
		}
		if err := child.Validate(); err != nil {
			return fmt.Errorf("child %d (%s) of %s failed validation: %w", i, child.Label(), a.Label(), err)
		}
	}
	return nil
}
