package actionkit

import "time"

type Kind int

const (
	KindCallback Kind = iota
	KindCondition
	KindDelay
	KindDelayFrame
	KindSequence
	KindParallel
	KindRepeat
	kindCount
)

var kindNames = [...]string{
	KindCallback:   "callback",
	KindCondition:  "condition",
	KindDelay:      "delay",
	KindDelayFrame: "delay_frame",
	KindSequence:   "sequence",
	KindParallel:   "parallel",
	KindRepeat:     "repeat",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Action is a unit of work advanced one tick at a time by a Driver or by a
// parent composite.
//
// Tick returns true once the action has finished. Calling Tick again after
// that is a no-op that keeps returning true. A paused action returns false
// without changing state. Ticking an action that has not been started
// starts it first.
type Action interface {
	Kind() Kind

	Start()
	Tick(dt time.Duration) bool
	Stop()
	Reset()
	Release()

	Pause()
	Resume()

	Started() bool
	Finished() bool
	Stopped() bool
	Paused() bool
	Deinited() bool

	state() *base
}

// Composite is implemented by actions that own child actions.
type Composite interface {
	Action
	Children() []Action
}

// hooks is the per-kind behavior plugged into base.
type hooks interface {
	Action
	onStart()
	onTick(dt time.Duration) bool
	onStop()
	onReset()
	onRelease()
}

// base carries the lifecycle flags shared by every kind and implements the
// lifecycle state machine around the kind's hooks.
type base struct {
	kind Kind
	self hooks
	pool *Pool

	started  bool
	finished bool
	stopped  bool
	paused   bool
	deinited bool
}

func (b *base) init(kind Kind, self hooks) {
	b.kind = kind
	b.self = self
}

func (b *base) state() *base { return b }

func (b *base) Kind() Kind { return b.kind }

func (b *base) Started() bool  { return b.started }
func (b *base) Finished() bool { return b.finished }
func (b *base) Stopped() bool  { return b.stopped }
func (b *base) Paused() bool   { return b.paused }
func (b *base) Deinited() bool { return b.deinited }

func (b *base) Pause()  { b.paused = true }
func (b *base) Resume() { b.paused = false }

func (b *base) Start() {
	if b.deinited {
		fail("start", b.kind, ErrReleased)
	}
	if b.started && !b.finished {
		fail("start", b.kind, ErrAlreadyStarted)
	}
	b.started = true
	b.finished = false
	b.stopped = false
	b.self.onStart()
}

func (b *base) Tick(dt time.Duration) bool {
	if b.deinited {
		fail("tick", b.kind, ErrReleased)
	}
	if b.finished {
		return true
	}
	if !b.started {
		b.Start()
	}
	if b.paused {
		return false
	}
	// A Stop issued from inside onTick wins over whatever onTick reports.
	if b.self.onTick(dt) && !b.stopped {
		b.finished = true
	}
	return b.finished
}

// Stop finishes the action without running completion callbacks. Stopped
// reports true until the action is started, reset or released again.
func (b *base) Stop() {
	if b.deinited || b.finished {
		return
	}
	b.stopped = true
	b.self.onStop()
	b.finished = true
}

func (b *base) Reset() {
	if b.deinited {
		fail("reset", b.kind, ErrReleased)
	}
	b.started = false
	b.finished = false
	b.stopped = false
	b.paused = false
	b.self.onReset()
}

func (b *base) Release() {
	if b.deinited {
		fail("release", b.kind, ErrDoubleRelease)
	}
	b.self.onRelease()
	b.started = false
	b.finished = false
	b.stopped = false
	b.paused = false
	b.deinited = true
	if b.pool != nil {
		b.pool.put(b)
	}
}

// revive prepares a pooled instance for reuse.
func (b *base) revive() {
	b.deinited = false
	b.started = false
	b.finished = false
	b.stopped = false
	b.paused = false
	b.self.onReset()
}
