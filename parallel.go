package actionkit

import (
	"slices"
	"time"
)

// Parallel ticks every unfinished child once per tick, in registration
// order, and finishes when all of them have finished. Children that finish
// early stay in the list until the Parallel is released.
type Parallel struct {
	base
	chain[*Parallel]

	children []Action
}

func newParallel(k *Kit) *Parallel {
	p := &Parallel{}
	p.init(KindParallel, p)
	p.chain = chain[*Parallel]{head: p, kit: k}
	return p
}

// NewParallel returns an unpooled Parallel over children.
func NewParallel(children ...Action) *Parallel {
	p := newParallel(nil)
	for _, c := range children {
		p.appendChild(c)
	}
	return p
}

// Children returns a copy of the child list.
func (p *Parallel) Children() []Action { return slices.Clone(p.children) }

func (p *Parallel) appendChild(a Action) {
	if a == nil {
		fail("append", p.kind, ErrNilAction)
	}
	p.children = append(p.children, a)
}

func (p *Parallel) onStart() {
	for _, c := range p.children {
		c.Start()
	}
}

func (p *Parallel) onTick(dt time.Duration) bool {
	done := true
	for _, c := range p.children {
		if c.Finished() {
			continue
		}
		if !c.Tick(dt) {
			done = false
		}
		if p.stopped {
			return false
		}
	}
	return done
}

func (p *Parallel) onStop() {
	for _, c := range p.children {
		c.Stop()
	}
}

func (p *Parallel) onReset() {
	for _, c := range p.children {
		c.Reset()
	}
}

func (p *Parallel) onRelease() {
	for i, c := range p.children {
		c.Release()
		p.children[i] = nil
	}
	p.children = p.children[:0]
}
