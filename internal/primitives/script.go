package primitives

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Script is a named, versioned action tree.
type Script struct {
	Version string        `json:"version,omitempty" yaml:"version,omitempty"`
	ID      string        `json:"id" yaml:"id"`
	Root    *ActionConfig `json:"root" yaml:"root"`
}

// Validate validates the whole script:
// - Non-empty ID and a root node
// - Every node validates (recursive)
// - Node IDs are unique
func (s *Script) Validate() error {
	if s.ID == "" {
		return errors.New("script ID is required")
	}
	if s.Root == nil {
		return fmt.Errorf("script %s has no root action", s.ID)
	}
	if err := s.Root.Validate(); err != nil {
		return fmt.Errorf("script %s: %w", s.ID, err)
	}

	seen := make(map[string]string)
	var dup error
	s.Root.Walk(func(path string, n *ActionConfig) {
		if n.ID == "" || dup != nil {
			return
		}
		if prev, ok := seen[n.ID]; ok {
			dup = fmt.Errorf("script %s: duplicate action ID %q at %s and %s", s.ID, n.ID, prev, path)
			return
		}
		seen[n.ID] = path
	})
	return dup
}

// Find resolves a node by slash-separated path of labels, starting at the
// root label (e.g. "intro/wait/0"). A numeric segment selects a child by
// index.
func (s *Script) Find(path string) (*ActionConfig, error) {
	if path == "" {
		return nil, errors.New("path cannot be empty")
	}
	if s.Root == nil {
		return nil, fmt.Errorf("script %s has no root action", s.ID)
	}
	segments := strings.Split(path, "/")
	if segments[0] != s.Root.Label() {
		return nil, fmt.Errorf("action %q not found", segments[0])
	}
	current := s.Root
	for i := 1; i < len(segments); i++ {
		next := current.child(segments[i])
		if next == nil {
			prefix := strings.Join(segments[:i], "/")
			return nil, fmt.Errorf("child %q not found in %q", segments[i], prefix)
		}
		current = next
	}
	return current, nil
}

func (a *ActionConfig) child(seg string) *ActionConfig {
	for _, c := range a.Children {
		if c != nil && c.Label() == seg {
			return c
		}
	}
	if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 && idx < len(a.Children) {
		return a.Children[idx]
	}
	return nil
}

// References returns the distinct callback and condition names used by the
// script, in first-use order.
func (s *Script) References() (callbacks, conditions []string) {
	if s.Root == nil {
		return nil, nil
	}
	seenCB := make(map[string]bool)
	seenCond := make(map[string]bool)
	s.Root.Walk(func(_ string, n *ActionConfig) {
		if n.Callback != "" && !seenCB[n.Callback] {
			seenCB[n.Callback] = true
			callbacks = append(callbacks, n.Callback)
		}
		if n.Condition != "" && !seenCond[n.Condition] {
			seenCond[n.Condition] = true
			conditions = append(conditions, n.Condition)
		}
	})
	return callbacks, conditions
}
