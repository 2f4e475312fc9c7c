package core

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/internal/primitives"
)

// ErrInvalidScript wraps validation and resolution failures from Compile.
var ErrInvalidScript = errors.New("invalid script")

// Program is a compiled script: a live action tree drawn from a Kit's pool.
//
// The tree belongs to whoever runs or releases Root. Once Root has been
// released, Root and every action returned by Action are invalid.
type Program struct {
	Script     primitives.Script
	Version    string
	Root       actionkit.Action
	Blackboard *primitives.Blackboard

	kit    *actionkit.Kit
	byID   map[string]actionkit.Action
	labels map[actionkit.Action]string
}

// Action returns the live action compiled from the node with id.
func (p *Program) Action(id string) (actionkit.Action, bool) {
	a, ok := p.byID[id]
	return a, ok
}

// Label returns the script path of a, or "" when a is not part of the
// program.
func (p *Program) Label(a actionkit.Action) string {
	return p.labels[a]
}

// Run schedules Root on the kit's driver.
func (p *Program) Run(owner actionkit.Owner, opts ...actionkit.RunOption) actionkit.Action {
	return p.kit.Run(p.Root, owner, opts...)
}

type compiler struct {
	kit     *actionkit.Kit
	runner  CallbackRunner
	eval    ConditionEvaluator
	bb      *primitives.Blackboard
	onError func(error)
	logger  *slog.Logger

	prog *Program
}

// Compile validates script, resolves every callback and condition it names,
// and builds the action tree from kit. Nothing is built when an error is
// returned.
func Compile(kit *actionkit.Kit, script primitives.Script, opts ...Option) (*Program, error) {
	c := &compiler{kit: kit}
	for _, opt := range opts {
		opt(c)
	}
	if c.bb == nil {
		c.bb = primitives.NewBlackboard()
	}
	if c.onError == nil {
		c.onError = func(err error) { panic(err) }
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := c.check(&script); err != nil {
		return nil, fmt.Errorf("%w: script %s: %w", ErrInvalidScript, script.ID, err)
	}

	c.prog = &Program{
		Script:     script,
		Version:    primitives.ComputeVersion(&script),
		Blackboard: c.bb,
		kit:        kit,
		byID:       make(map[string]actionkit.Action),
		labels:     make(map[actionkit.Action]string),
	}
	c.prog.Root = c.build(script.Root.Label(), script.Root)

	c.logger.Debug("script compiled",
		"script", script.ID,
		"version", c.prog.Version,
		"actions", len(c.prog.labels))
	return c.prog, nil
}

// check resolves every reference up front so that build cannot fail halfway
// and leak pooled actions.
func (c *compiler) check(script *primitives.Script) error {
	callbacks, conditions := script.References()
	if len(callbacks) > 0 && c.runner == nil {
		return ErrNoRunner
	}
	if len(conditions) > 0 && c.eval == nil {
		return ErrNoEvaluator
	}
	if chk, ok := c.runner.(Checker); ok {
		for _, name := range callbacks {
			if err := chk.Check(name); err != nil {
				return err
			}
		}
	}
	if chk, ok := c.eval.(Checker); ok {
		for _, cond := range conditions {
			if err := chk.Check(cond); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *compiler) build(path string, n *primitives.ActionConfig) actionkit.Action {
	var a actionkit.Action
	switch n.Kind {
	case primitives.Callback:
		a = c.kit.Callback(c.callback(n.Callback))
	case primitives.Condition:
		a = c.kit.Condition(c.condition(n.Condition))
	case primitives.Delay:
		a = c.kit.Delay(n.Duration.Std(), c.callback(n.Callback))
	case primitives.DelayFrame:
		a = c.kit.DelayFrame(n.Frames, c.callback(n.Callback))
	case primitives.Sequence:
		s := c.kit.Sequence()
		for i, child := range n.Children {
			s.Append(c.build(childPath(path, i, child), child))
		}
		a = s
	case primitives.Parallel:
		p := c.kit.Parallel()
		for i, child := range n.Children {
			p.Append(c.build(childPath(path, i, child), child))
		}
		a = p
	case primitives.Repeat:
		count := n.Count
		if count == 0 {
			count = actionkit.Forever
		}
		r := c.kit.Repeat(count)
		if len(n.Children) == 1 {
			r.Wrap(c.build(childPath(path, 0, n.Children[0]), n.Children[0]))
		} else {
			for i, child := range n.Children {
				r.Append(c.build(childPath(path, i, child), child))
			}
		}
		a = r
	}

	c.prog.labels[a] = path
	if n.ID != "" {
		c.prog.byID[n.ID] = a
	}
	return a
}

func childPath(parent string, i int, n *primitives.ActionConfig) string {
	if n.ID != "" {
		return parent + "/" + n.ID
	}
	return fmt.Sprintf("%s/%d:%s", parent, i, n.Kind)
}

func (c *compiler) callback(name string) func() {
	if name == "" {
		return nil
	}
	runner, bb, onError := c.runner, c.bb, c.onError
	return func() {
		if err := runner.Run(bb, name); err != nil {
			onError(fmt.Errorf("callback %q: %w", name, err))
		}
	}
}

func (c *compiler) condition(cond string) func() bool {
	eval, bb, onError := c.eval, c.bb, c.onError
	return func() bool {
		ok, err := eval.Eval(bb, cond)
		if err != nil {
			onError(fmt.Errorf("condition %q: %w", cond, err))
			return false
		}
		return ok
	}
}
