// Package core compiles scripts into live action trees.
//
// Names in a script are resolved through pluggable components: a
// CallbackRunner for callbacks, a ConditionEvaluator for conditions. Both
// see the Blackboard the program was compiled with. Implementations live in
// internal/extensibility; persistence and visualization in
// internal/production.
package core

import (
	"context"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/internal/primitives"
)

// CallbackRunner runs a named callback.
type CallbackRunner interface {
	Run(bb *primitives.Blackboard, name string) error
}

// ConditionEvaluator evaluates a condition, either a registered name or an
// expression, depending on the implementation.
type ConditionEvaluator interface {
	Eval(bb *primitives.Blackboard, cond string) (bool, error)
}

// Checker is implemented by runners and evaluators that can reject a name
// or expression before anything runs. Compile calls it for every reference
// in the script.
type Checker interface {
	Check(name string) error
}

// Persister stores scripts by ID.
type Persister interface {
	Save(ctx context.Context, script primitives.Script) error
	Load(ctx context.Context, scriptID string) (primitives.Script, error)
}

// Visualizer renders scripts and live action trees.
type Visualizer interface {
	ExportDOT(root actionkit.Action, label func(actionkit.Action) string) string
	ExportJSON(script primitives.Script) ([]byte, error)
}
