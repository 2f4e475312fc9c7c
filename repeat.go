package actionkit

import "time"

// Forever is the repeat count for a Repeat that never finishes on its own.
const Forever = -1

// Repeat runs its child count times, resetting it before every iteration.
// A count of zero or less repeats forever. The next iteration begins on the
// tick after the previous one finished; unlike Sequence, Repeat never
// cascades within a tick.
type Repeat struct {
	base
	chain[*Repeat]

	count int
	done  int
	child Action
	inner bool // child is a Sequence created for chained appends
}

func newRepeat(k *Kit) *Repeat {
	r := &Repeat{count: Forever}
	r.init(KindRepeat, r)
	r.chain = chain[*Repeat]{head: r, kit: k}
	return r
}

// NewRepeat returns an unpooled Repeat over child.
func NewRepeat(count int, child Action) *Repeat {
	r := newRepeat(nil)
	r.count = count
	if child != nil {
		r.Wrap(child)
	}
	return r
}

// Count returns the configured repetitions; zero or less means forever.
func (r *Repeat) Count() int { return r.count }

// Completed returns the iterations finished since the last start.
func (r *Repeat) Completed() int { return r.done }

// Child returns the wrapped action, or nil.
func (r *Repeat) Child() Action { return r.child }

func (r *Repeat) Children() []Action {
	if r.child == nil {
		return nil
	}
	return []Action{r.child}
}

// Wrap sets the repeated action. Chained appends made afterwards are
// sequenced after it.
func (r *Repeat) Wrap(a Action) *Repeat {
	if a == nil {
		fail("wrap", r.kind, ErrNilAction)
	}
	if r.child != nil {
		fail("wrap", r.kind, ErrWrapped)
	}
	r.child = a
	r.inner = false
	return r
}

func (r *Repeat) appendChild(a Action) {
	if a == nil {
		fail("append", r.kind, ErrNilAction)
	}
	switch {
	case r.child == nil:
		r.child = r.kit.Sequence()
		r.inner = true
	case !r.inner:
		seq := r.kit.Sequence()
		seq.appendChild(r.child)
		r.child = seq
		r.inner = true
	}
	r.child.(*Sequence).appendChild(a)
}

func (r *Repeat) onStart() {
	r.done = 0
	if r.child != nil {
		r.child.Reset()
		r.child.Start()
	}
}

func (r *Repeat) onTick(dt time.Duration) bool {
	if r.child == nil {
		return true
	}
	if !r.child.Tick(dt) || r.stopped {
		return false
	}
	r.done++
	if r.count > 0 && r.done >= r.count {
		return true
	}
	r.child.Reset()
	r.child.Start()
	return false
}

func (r *Repeat) onStop() {
	if r.child != nil {
		r.child.Stop()
	}
}

func (r *Repeat) onReset() {
	r.done = 0
	if r.child != nil {
		r.child.Reset()
	}
}

func (r *Repeat) onRelease() {
	if r.child != nil {
		r.child.Release()
	}
	r.child = nil
	r.inner = false
	r.count = Forever
	r.done = 0
}
