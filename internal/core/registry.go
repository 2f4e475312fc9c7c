package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/comalice/actionkit/internal/primitives"
)

var (
	ErrNotFound    = errors.New("name not registered")
	ErrExists      = errors.New("name already registered")
	ErrInvalidName = errors.New("invalid name")
	ErrNoRunner    = errors.New("no callback runner configured")
	ErrNoEvaluator = errors.New("no condition evaluator configured")
)

// CallbackFunc is a registered callback.
type CallbackFunc func(bb *primitives.Blackboard) error

// ConditionFunc is a registered predicate.
type ConditionFunc func(bb *primitives.Blackboard) bool

// Registry holds the named callbacks and predicates scripts refer to.
// Callbacks and conditions live in separate namespaces. Safe for concurrent
// use.
type Registry struct {
	mu         sync.RWMutex
	callbacks  map[string]CallbackFunc
	conditions map[string]ConditionFunc
}

func NewRegistry() *Registry {
	return &Registry{
		callbacks:  make(map[string]CallbackFunc),
		conditions: make(map[string]ConditionFunc),
	}
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// RegisterCallback adds fn under name.
func (r *Registry) RegisterCallback(name string, fn CallbackFunc) error {
	if err := validName(name); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("callback %q: %w: nil function", name, ErrInvalidName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.callbacks[name]; ok {
		return fmt.Errorf("callback %q: %w", name, ErrExists)
	}
	r.callbacks[name] = fn
	return nil
}

// RegisterCondition adds fn under name.
func (r *Registry) RegisterCondition(name string, fn ConditionFunc) error {
	if err := validName(name); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("condition %q: %w: nil function", name, ErrInvalidName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conditions[name]; ok {
		return fmt.Errorf("condition %q: %w", name, ErrExists)
	}
	r.conditions[name] = fn
	return nil
}

// Callback looks up a callback.
func (r *Registry) Callback(name string) (CallbackFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.callbacks[name]
	if !ok {
		return nil, fmt.Errorf("callback %q: %w", name, ErrNotFound)
	}
	return fn, nil
}

// Condition looks up a predicate.
func (r *Registry) Condition(name string) (ConditionFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.conditions[name]
	if !ok {
		return nil, fmt.Errorf("condition %q: %w", name, ErrNotFound)
	}
	return fn, nil
}

// HasCondition reports whether name is a registered predicate.
func (r *Registry) HasCondition(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conditions[name]
	return ok
}

// Names returns the registered callback and condition names, sorted.
func (r *Registry) Names() (callbacks, conditions []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name := range r.callbacks {
		callbacks = append(callbacks, name)
	}
	for name := range r.conditions {
		conditions = append(conditions, name)
	}
	slices.Sort(callbacks)
	slices.Sort(conditions)
	return callbacks, conditions
}
