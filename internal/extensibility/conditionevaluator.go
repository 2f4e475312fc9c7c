package extensibility

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/comalice/actionkit/internal/core"
	"github.com/comalice/actionkit/internal/primitives"
)

// DefaultConditionEvaluator evaluates predicates registered in a
// core.Registry. Unregistered names are errors.
type DefaultConditionEvaluator struct {
	Registry *core.Registry
}

func NewDefaultConditionEvaluator(reg *core.Registry) *DefaultConditionEvaluator {
	return &DefaultConditionEvaluator{Registry: reg}
}

func (e *DefaultConditionEvaluator) Eval(bb *primitives.Blackboard, name string) (bool, error) {
	fn, err := e.Registry.Condition(name)
	if err != nil {
		return false, err
	}
	return fn(bb), nil
}

// Check implements core.Checker.
func (e *DefaultConditionEvaluator) Check(name string) error {
	_, err := e.Registry.Condition(name)
	return err
}

// ExpressionEvaluator evaluates expr-lang expressions such as
// "score > 10 && door == 'open'" against a snapshot of the blackboard.
// Blackboard keys are the expression's variables; missing keys are nil.
//
// When a Registry is set, a condition that names a registered predicate
// calls it instead of being parsed as an expression.
//
// Compiled programs are cached per expression. Safe for concurrent use.
type ExpressionEvaluator struct {
	Registry *core.Registry

	mu       sync.RWMutex
	programs map[string]*vm.Program
}

// NewExpressionEvaluator returns an evaluator; reg may be nil.
func NewExpressionEvaluator(reg *core.Registry) *ExpressionEvaluator {
	return &ExpressionEvaluator{
		Registry: reg,
		programs: make(map[string]*vm.Program),
	}
}

func (e *ExpressionEvaluator) Eval(bb *primitives.Blackboard, cond string) (bool, error) {
	if e.Registry != nil && e.Registry.HasCondition(cond) {
		fn, err := e.Registry.Condition(cond)
		if err != nil {
			return false, err
		}
		return fn(bb), nil
	}

	program, err := e.program(cond)
	if err != nil {
		return false, err
	}
	env := map[string]any{}
	if bb != nil {
		env = bb.Snapshot()
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", cond, err)
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("evaluate %q: non-boolean result %T", cond, result)
	}
	return b, nil
}

// Check compiles cond, reporting syntax errors before anything runs.
func (e *ExpressionEvaluator) Check(cond string) error {
	if e.Registry != nil && e.Registry.HasCondition(cond) {
		return nil
	}
	_, err := e.program(cond)
	return err
}

func (e *ExpressionEvaluator) program(cond string) (*vm.Program, error) {
	e.mu.RLock()
	p, ok := e.programs[cond]
	e.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := expr.Compile(cond,
		expr.Env(map[string]any{}),
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", cond, err)
	}

	e.mu.Lock()
	if e.programs == nil {
		e.programs = make(map[string]*vm.Program)
	}
	e.programs[cond] = p
	e.mu.Unlock()
	return p, nil
}
