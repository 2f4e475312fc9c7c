package primitives

import "time"

// ScriptBuilder builds a Script fluently. Composite nodes push onto a stack
// and later nodes are added to the innermost open composite until Up pops it.
type ScriptBuilder struct {
	script *Script
	stack  []*ActionConfig
}

// NewScriptBuilder creates a builder for a script whose root is a sequence.
func NewScriptBuilder(id string) *ScriptBuilder {
	root := NewActionConfig(Sequence)
	return &ScriptBuilder{
		script: &Script{ID: id, Root: root},
		stack:  []*ActionConfig{root},
	}
}

func (b *ScriptBuilder) top() *ActionConfig {
	return b.stack[len(b.stack)-1]
}

func (b *ScriptBuilder) add(n *ActionConfig) *ScriptBuilder {
	b.top().AddChild(n)
	return b
}

func (b *ScriptBuilder) push(n *ActionConfig) *ScriptBuilder {
	b.top().AddChild(n)
	b.stack = append(b.stack, n)
	return b
}

// Version sets the script version.
func (b *ScriptBuilder) Version(v string) *ScriptBuilder {
	b.script.Version = v
	return b
}

// ID names the most recently opened composite.
func (b *ScriptBuilder) ID(id string) *ScriptBuilder {
	b.top().ID = id
	return b
}

func (b *ScriptBuilder) Callback(name string) *ScriptBuilder {
	return b.add(&ActionConfig{Kind: Callback, Callback: name})
}

func (b *ScriptBuilder) Condition(cond string) *ScriptBuilder {
	return b.add(&ActionConfig{Kind: Condition, Condition: cond})
}

// Delay adds a delay; then optionally names its completion callback.
func (b *ScriptBuilder) Delay(d time.Duration, then ...string) *ScriptBuilder {
	n := &ActionConfig{Kind: Delay, Duration: Duration(d)}
	if len(then) > 0 {
		n.Callback = then[0]
	}
	return b.add(n)
}

func (b *ScriptBuilder) DelayFrame(frames int, then ...string) *ScriptBuilder {
	n := &ActionConfig{Kind: DelayFrame, Frames: frames}
	if len(then) > 0 {
		n.Callback = then[0]
	}
	return b.add(n)
}

// Sequence opens a nested sequence.
func (b *ScriptBuilder) Sequence() *ScriptBuilder {
	return b.push(NewActionConfig(Sequence))
}

// Parallel opens a nested parallel.
func (b *ScriptBuilder) Parallel() *ScriptBuilder {
	return b.push(NewActionConfig(Parallel))
}

// Repeat opens a nested repeat; count zero repeats forever.
func (b *ScriptBuilder) Repeat(count int) *ScriptBuilder {
	return b.push(&ActionConfig{Kind: Repeat, Count: count})
}

// Up closes the innermost open composite. The root stays open.
func (b *ScriptBuilder) Up() *ScriptBuilder {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return b
}

// Build validates and returns the script.
func (b *ScriptBuilder) Build() (Script, error) {
	if err := b.script.Validate(); err != nil {
		return Script{}, err
	}
	return *b.script, nil
}
