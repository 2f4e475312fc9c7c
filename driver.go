package actionkit

import (
	"context"
	"log/slog"
	"time"
)

// Phase names a host frame event that ticks scheduled actions.
type Phase int

const (
	PhaseUpdate Phase = iota
	PhaseFixedUpdate
	PhaseLateUpdate
	PhaseGUI
	phaseCount
)

var phaseNames = [...]string{
	PhaseUpdate:      "update",
	PhaseFixedUpdate: "fixed_update",
	PhaseLateUpdate:  "late_update",
	PhaseGUI:         "gui",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// LifecycleKind classifies a Lifecycle record.
type LifecycleKind int

const (
	LifecycleScheduled LifecycleKind = iota
	LifecycleCompleted
	LifecycleCancelled
)

func (k LifecycleKind) String() string {
	switch k {
	case LifecycleScheduled:
		return "scheduled"
	case LifecycleCompleted:
		return "completed"
	case LifecycleCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Lifecycle records a top-level action entering or leaving a Driver.
type Lifecycle struct {
	Kind      LifecycleKind
	Phase     Phase
	Frame     uint64
	Action    Kind
	Timestamp time.Time
}

// Publisher receives Lifecycle records from a Driver.
type Publisher interface {
	Publish(ctx context.Context, rec Lifecycle) error
}

// Driver ticks top-level actions once per occurrence of the phase they were
// scheduled on, in scheduling order, and recycles them when they finish.
//
// A Driver is single-threaded: every method must be called from the
// goroutine that owns the host frame loop. Panics raised by callbacks and
// predicates propagate out of the phase call and abort the rest of that
// pass; hosts that want per-action isolation must recover around the call.
type Driver struct {
	queues [phaseCount][]*entry
	hooks  [phaseCount]Event
	quit   Event
	frames [phaseCount]uint64
	// passes counts the passes in flight per phase; sweeps of a phase wait
	// until its outermost pass returns.
	passes [phaseCount]int

	logger    *slog.Logger
	publisher Publisher
}

type entry struct {
	action     Action
	phase      Phase
	onComplete func()
	detach     func()
	done       bool
	completed  bool
}

// NewDriver returns a Driver with no scheduled actions. Pool options are
// ignored.
func NewDriver(opts ...Option) *Driver {
	return newDriver(newConfig(opts))
}

func newDriver(cfg config) *Driver {
	return &Driver{
		logger:    cfg.logger,
		publisher: cfg.publisher,
	}
}

// Run starts a and schedules it. When owner is non-nil, its teardown stops
// the action; the driver then releases it on the next pass of its phase
// without calling the completion callback. Run panics if a is already
// running or has been released.
func (d *Driver) Run(a Action, owner Owner, opts ...RunOption) Action {
	if a == nil {
		fail("run", Kind(-1), ErrNilAction)
	}
	cfg := runConfig{phase: PhaseUpdate}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.phase < 0 || cfg.phase >= phaseCount {
		cfg.phase = PhaseUpdate
	}

	a.Start()

	e := &entry{action: a, phase: cfg.phase, onComplete: cfg.onComplete}
	d.queues[cfg.phase] = append(d.queues[cfg.phase], e)
	if owner != nil {
		e.detach = owner.OnTeardown(func() {
			if !e.done {
				e.action.Stop()
			}
		})
	}

	d.logger.Debug("action scheduled", "kind", a.Kind(), "phase", cfg.phase)
	d.publish(LifecycleScheduled, e)
	return a
}

func (d *Driver) Update(dt time.Duration)      { d.Tick(PhaseUpdate, dt) }
func (d *Driver) FixedUpdate(dt time.Duration) { d.Tick(PhaseFixedUpdate, dt) }
func (d *Driver) LateUpdate(dt time.Duration)  { d.Tick(PhaseLateUpdate, dt) }
func (d *Driver) GUI(dt time.Duration)         { d.Tick(PhaseGUI, dt) }

// Tick runs one pass of phase: the phase's bare hooks fire first, then every
// action scheduled on the phase before the pass began is ticked once.
func (d *Driver) Tick(phase Phase, dt time.Duration) {
	if phase < 0 || phase >= phaseCount {
		return
	}
	d.frames[phase]++
	d.hooks[phase].Trigger(dt)

	d.passes[phase]++
	defer func() {
		d.passes[phase]--
		d.sweep(phase)
	}()
	n := len(d.queues[phase])
	for i := 0; i < n && i < len(d.queues[phase]); i++ {
		e := d.queues[phase][i]
		if e.done {
			continue
		}
		if e.action.Finished() {
			e.done = true
			continue
		}
		if !e.action.Tick(dt) {
			continue
		}
		e.done = true
		if e.action.Stopped() {
			continue
		}
		e.completed = true
		if e.onComplete != nil {
			e.onComplete()
		}
	}
}

// sweep drops finished entries from phase and recycles their actions. It is
// a no-op while a pass of phase is running.
func (d *Driver) sweep(phase Phase) {
	if d.passes[phase] > 0 {
		return
	}
	q := d.queues[phase]
	kept := q[:0]
	for _, e := range q {
		if !e.done {
			kept = append(kept, e)
			continue
		}
		d.retire(e)
	}
	for i := len(kept); i < len(q); i++ {
		q[i] = nil
	}
	d.queues[phase] = kept
}

func (d *Driver) retire(e *entry) {
	if e.detach != nil {
		e.detach()
		e.detach = nil
	}
	kind := LifecycleCancelled
	if e.completed {
		kind = LifecycleCompleted
	}
	d.logger.Debug("action retired", "kind", e.action.Kind(), "phase", e.phase, "outcome", kind)
	d.publish(kind, e)
	if !e.action.Deinited() {
		e.action.Release()
	}
}

// Quit handles application teardown: quit hooks fire, then every scheduled
// action is stopped and released without completion callbacks. Called from
// inside a pass, the actions are stopped at once and released when the pass
// returns.
func (d *Driver) Quit() {
	d.quit.Trigger(0)
	for phase := range d.queues {
		for _, e := range d.queues[phase] {
			if !e.done {
				e.action.Stop()
				e.done = true
			}
		}
		d.sweep(Phase(phase))
	}
	d.logger.Debug("driver quit")
}

// Active returns the number of actions scheduled on phase.
func (d *Driver) Active(phase Phase) int {
	if phase < 0 || phase >= phaseCount {
		return 0
	}
	return len(d.queues[phase])
}

// Frame returns how many passes phase has run.
func (d *Driver) Frame(phase Phase) uint64 {
	if phase < 0 || phase >= phaseCount {
		return 0
	}
	return d.frames[phase]
}

func (d *Driver) OnUpdate() *Event          { return &d.hooks[PhaseUpdate] }
func (d *Driver) OnFixedUpdate() *Event     { return &d.hooks[PhaseFixedUpdate] }
func (d *Driver) OnLateUpdate() *Event      { return &d.hooks[PhaseLateUpdate] }
func (d *Driver) OnGUI() *Event             { return &d.hooks[PhaseGUI] }
func (d *Driver) OnApplicationQuit() *Event { return &d.quit }

func (d *Driver) publish(kind LifecycleKind, e *entry) {
	if d.publisher == nil {
		return
	}
	rec := Lifecycle{
		Kind:      kind,
		Phase:     e.phase,
		Frame:     d.frames[e.phase],
		Action:    e.action.Kind(),
		Timestamp: time.Now(),
	}
	if err := d.publisher.Publish(context.Background(), rec); err != nil {
		d.logger.Warn("publish lifecycle", "kind", kind, "error", err)
	}
}
