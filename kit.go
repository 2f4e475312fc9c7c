package actionkit

import "time"

// Kit bundles the Pool actions are drawn from and the Driver they run on.
// All construction entry points live here so that lifetime and test
// isolation stay explicit: two kits share nothing.
//
// A nil *Kit still constructs actions (unpooled) but cannot run them.
type Kit struct {
	pool   *Pool
	driver *Driver
}

// New returns a Kit with a fresh Pool and Driver.
func New(opts ...Option) *Kit {
	cfg := newConfig(opts)
	pool := cfg.pool
	if pool == nil {
		pool = NewPool()
	}
	return &Kit{
		pool:   pool,
		driver: newDriver(cfg),
	}
}

func (k *Kit) Pool() *Pool {
	if k == nil {
		return nil
	}
	return k.pool
}

func (k *Kit) Driver() *Driver {
	if k == nil {
		return nil
	}
	return k.driver
}

func (k *Kit) Callback(fn func()) *Callback {
	c := acquire(k.Pool(), KindCallback, newCallback)
	c.fn = fn
	return c
}

func (k *Kit) Condition(pred func() bool) *Condition {
	c := acquire(k.Pool(), KindCondition, newCondition)
	c.pred = pred
	return c
}

// Delay returns a Delay of d. onDone may be nil.
func (k *Kit) Delay(d time.Duration, onDone func()) *Delay {
	a := acquire(k.Pool(), KindDelay, newDelay)
	a.duration = d
	a.onDone = onDone
	return a
}

// DelayFrame returns an action that finishes after frames ticks. onDone may
// be nil.
func (k *Kit) DelayFrame(frames int, onDone func()) *DelayFrame {
	a := acquire(k.Pool(), KindDelayFrame, newDelayFrame)
	a.frames = frames
	a.onDone = onDone
	return a
}

// NextFrame is DelayFrame(1, onDone).
func (k *Kit) NextFrame(onDone func()) *DelayFrame {
	return k.DelayFrame(1, onDone)
}

// Sequence returns an empty Sequence ready for chaining.
func (k *Kit) Sequence() *Sequence {
	s := acquire(k.Pool(), KindSequence, func() *Sequence { return newSequence(k) })
	s.kit = k
	return s
}

// Parallel returns an empty Parallel ready for chaining.
func (k *Kit) Parallel() *Parallel {
	p := acquire(k.Pool(), KindParallel, func() *Parallel { return newParallel(k) })
	p.kit = k
	return p
}

// Repeat returns an empty Repeat that runs its child count times; zero or
// less repeats forever.
func (k *Kit) Repeat(count int) *Repeat {
	r := acquire(k.Pool(), KindRepeat, func() *Repeat { return newRepeat(k) })
	r.kit = k
	r.count = count
	return r
}

func (k *Kit) RepeatForever() *Repeat {
	return k.Repeat(Forever)
}

// Run schedules a on the kit's driver. See Driver.Run.
func (k *Kit) Run(a Action, owner Owner, opts ...RunOption) Action {
	d := k.Driver()
	if d == nil {
		kind := Kind(-1)
		if a != nil {
			kind = a.Kind()
		}
		fail("run", kind, ErrNoDriver)
	}
	return d.Run(a, owner, opts...)
}
