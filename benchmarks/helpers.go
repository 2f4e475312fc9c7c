// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/builder"
	"github.com/comalice/actionkit/internal/core"
	"github.com/comalice/actionkit/internal/primitives"
)

// GenFlatScript creates a sequence of n "tick" callbacks.
func GenFlatScript(n int) primitives.Script {
	if n < 1 {
		n = 1
	}
	children := make([]builder.Node, n)
	for i := range children {
		children[i] = builder.Callback("tick")
	}
	return builder.Script(fmt.Sprintf("flat_%d", n), builder.Sequence(children...))
}

// GenDeepScript nests depth sequences, each holding one delay frame and the
// next level.
func GenDeepScript(depth int) primitives.Script {
	if depth < 1 {
		depth = 1
	}
	node := builder.Sequence(builder.NextFrame(builder.Then("tick")))
	for i := 1; i < depth; i++ {
		node = builder.Sequence(builder.NextFrame(), node)
	}
	return builder.Script(fmt.Sprintf("deep_%d", depth), node)
}

// GenWideScript creates a parallel of n delays of increasing length.
func GenWideScript(n int) primitives.Script {
	if n < 1 {
		n = 1
	}
	children := make([]builder.Node, n)
	for i := range children {
		children[i] = builder.Delay(time.Duration(i+1)*time.Millisecond, builder.Then("tick"))
	}
	return builder.Script(fmt.Sprintf("wide_%d", n), builder.Parallel(children...))
}

// TickRegistry registers a "tick" callback that increments *count.
func TickRegistry(count *int) *core.Registry {
	reg := core.NewRegistry()
	if err := reg.RegisterCallback("tick", func(*primitives.Blackboard) error {
		*count++
		return nil
	}); err != nil {
		panic(err)
	}
	return reg
}

// GenScriptYAML generates YAML bytes for a flat or deep script.
func GenScriptYAML(size int, hierarchical bool) []byte {
	var script primitives.Script
	if hierarchical {
		script = GenDeepScript(size)
	} else {
		script = GenFlatScript(size)
	}
	data, err := yaml.Marshal(script)
	if err != nil {
		panic(err)
	}
	return data
}

// BuildDelays builds a sequence of n one-millisecond delays from kit.
func BuildDelays(kit *actionkit.Kit, n int) *actionkit.Sequence {
	s := kit.Sequence()
	for i := 0; i < n; i++ {
		s.Delay(time.Millisecond)
	}
	return s
}

// BuildDelaysUnpooled is BuildDelays without a pool.
func BuildDelaysUnpooled(n int) *actionkit.Sequence {
	children := make([]actionkit.Action, n)
	for i := range children {
		children[i] = actionkit.NewDelay(time.Millisecond, nil)
	}
	return actionkit.NewSequence(children...)
}
