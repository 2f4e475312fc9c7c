package actionkit

import "time"

// Callback runs fn on its first tick and finishes immediately.
// A panic in fn propagates out of Tick and leaves the action unfinished.
type Callback struct {
	base
	fn func()
}

func newCallback() *Callback {
	c := &Callback{}
	c.init(KindCallback, c)
	return c
}

// NewCallback returns an unpooled Callback.
func NewCallback(fn func()) *Callback {
	c := newCallback()
	c.fn = fn
	return c
}

func (c *Callback) onStart() {}

func (c *Callback) onTick(time.Duration) bool {
	if c.fn != nil {
		c.fn()
	}
	return true
}

func (c *Callback) onStop()    {}
func (c *Callback) onReset()   {}
func (c *Callback) onRelease() { c.fn = nil }

// Condition finishes on the first tick its predicate reports true.
type Condition struct {
	base
	pred func() bool
}

func newCondition() *Condition {
	c := &Condition{}
	c.init(KindCondition, c)
	return c
}

// NewCondition returns an unpooled Condition. A nil predicate is satisfied
// immediately.
func NewCondition(pred func() bool) *Condition {
	c := newCondition()
	c.pred = pred
	return c
}

func (c *Condition) onStart() {}

func (c *Condition) onTick(time.Duration) bool {
	return c.pred == nil || c.pred()
}

func (c *Condition) onStop()    {}
func (c *Condition) onReset()   {}
func (c *Condition) onRelease() { c.pred = nil }
