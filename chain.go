package actionkit

import "time"

// container is a composite that accepts appended children.
type container interface {
	Action
	appendChild(Action)
}

// chain provides the fluent construction methods shared by Sequence,
// Parallel and Repeat. Every method appends to the composite under
// construction and returns it for further chaining.
type chain[T container] struct {
	head T
	kit  *Kit
}

// Append adds already constructed actions. The composite takes ownership and
// releases them when it is released.
func (c *chain[T]) Append(actions ...Action) T {
	for _, a := range actions {
		c.head.appendChild(a)
	}
	return c.head
}

func (c *chain[T]) Callback(fn func()) T {
	c.head.appendChild(c.kit.Callback(fn))
	return c.head
}

func (c *chain[T]) Condition(pred func() bool) T {
	c.head.appendChild(c.kit.Condition(pred))
	return c.head
}

// Delay appends a Delay; then runs when it elapses.
func (c *chain[T]) Delay(d time.Duration, then ...func()) T {
	c.head.appendChild(c.kit.Delay(d, join(then)))
	return c.head
}

func (c *chain[T]) DelayFrame(frames int, then ...func()) T {
	c.head.appendChild(c.kit.DelayFrame(frames, join(then)))
	return c.head
}

func (c *chain[T]) NextFrame(then ...func()) T {
	c.head.appendChild(c.kit.NextFrame(join(then)))
	return c.head
}

// Sequence appends a nested Sequence populated by build.
func (c *chain[T]) Sequence(build func(*Sequence)) T {
	s := c.kit.Sequence()
	if build != nil {
		build(s)
	}
	c.head.appendChild(s)
	return c.head
}

// Parallel appends a nested Parallel populated by build.
func (c *chain[T]) Parallel(build func(*Parallel)) T {
	p := c.kit.Parallel()
	if build != nil {
		build(p)
	}
	c.head.appendChild(p)
	return c.head
}

// Repeat appends a nested Repeat populated by build.
func (c *chain[T]) Repeat(count int, build func(*Repeat)) T {
	r := c.kit.Repeat(count)
	if build != nil {
		build(r)
	}
	c.head.appendChild(r)
	return c.head
}

// Run schedules the composite on the kit's driver. See Driver.Run.
func (c *chain[T]) Run(owner Owner, opts ...RunOption) T {
	c.kit.Run(c.head, owner, opts...)
	return c.head
}

func join(fns []func()) func() {
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	return func() {
		for _, fn := range fns {
			if fn != nil {
				fn()
			}
		}
	}
}
