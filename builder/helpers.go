// Package builder constructs action scripts declaratively and compiles them
// into live actions.
//
//	root := builder.Sequence(
//		builder.Callback("spawn"),
//		builder.Delay(time.Second, builder.Then("flash")),
//		builder.Repeat(3, builder.Callback("blink"), builder.NextFrame()),
//		builder.Condition("hp <= 0"),
//	)
//	prog, err := builder.Compile(kit, reg, builder.Script("intro", root))
package builder

import (
	"time"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/internal/core"
	"github.com/comalice/actionkit/internal/extensibility"
	"github.com/comalice/actionkit/internal/primitives"
)

// Node is one node of a script tree.
type Node = *primitives.ActionConfig

// Option pattern for configuring nodes
type Option func(*primitives.ActionConfig)

// ID names a node so it can be looked up after compilation.
func ID(id string) Option {
	return func(n *primitives.ActionConfig) { n.ID = id }
}

// Then names the callback a delay runs when it elapses.
func Then(name string) Option {
	return func(n *primitives.ActionConfig) { n.Callback = name }
}

func node(kind primitives.ActionKind, opts []Option) Node {
	n := primitives.NewActionConfig(kind)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func Callback(name string, opts ...Option) Node {
	n := node(primitives.Callback, opts)
	n.Callback = name
	return n
}

// Condition waits until cond holds. cond is a registered predicate name or
// an expression over the blackboard.
func Condition(cond string, opts ...Option) Node {
	n := node(primitives.Condition, opts)
	n.Condition = cond
	return n
}

func Delay(d time.Duration, opts ...Option) Node {
	n := node(primitives.Delay, opts)
	n.Duration = primitives.Duration(d)
	return n
}

func DelayFrame(frames int, opts ...Option) Node {
	n := node(primitives.DelayFrame, opts)
	n.Frames = frames
	return n
}

// NextFrame waits one frame.
func NextFrame(opts ...Option) Node {
	return DelayFrame(1, opts...)
}

func Sequence(children ...Node) Node {
	return composite(primitives.Sequence, children)
}

func Parallel(children ...Node) Node {
	return composite(primitives.Parallel, children)
}

// Repeat runs children count times, as a sequence when there are several.
// A count of zero repeats forever.
func Repeat(count int, children ...Node) Node {
	n := composite(primitives.Repeat, children)
	n.Count = count
	return n
}

// Forever is Repeat(0, children...).
func Forever(children ...Node) Node {
	return Repeat(0, children...)
}

// Named sets the ID of a composite, which take children rather than options.
func Named(id string, n Node) Node {
	n.ID = id
	return n
}

func composite(kind primitives.ActionKind, children []Node) Node {
	n := primitives.NewActionConfig(kind)
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// Script wraps root in a script. The version is the content hash.
func Script(id string, root Node) primitives.Script {
	s := primitives.Script{ID: id, Root: root}
	s.Version = primitives.ComputeVersion(&s)
	return s
}

// Compile compiles script against reg with the stock runner and evaluator:
// callbacks resolve in reg, conditions are registered predicates or
// expressions. Extra options are applied after the defaults.
func Compile(kit *actionkit.Kit, reg *core.Registry, script primitives.Script, opts ...core.Option) (*core.Program, error) {
	all := append([]core.Option{
		core.WithCallbackRunner(extensibility.NewDefaultCallbackRunner(reg)),
		core.WithConditionEvaluator(extensibility.NewExpressionEvaluator(reg)),
	}, opts...)
	return core.Compile(kit, script, all...)
}
