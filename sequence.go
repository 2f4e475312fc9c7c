package actionkit

import (
	"slices"
	"time"
)

// Sequence runs its children one after another. At most one child is
// current; children before it have finished and children after it have not
// been started.
//
// When the current child finishes, the next one is started and ticked in the
// same outer tick, so chains of instantly satisfied children (callbacks,
// zero delays, true conditions) complete without costing extra frames.
// Cascaded children are ticked with a zero delta: the frame's elapsed time
// belongs to the child that was current when the tick began.
type Sequence struct {
	base
	chain[*Sequence]

	children []Action
	index    int
}

func newSequence(k *Kit) *Sequence {
	s := &Sequence{}
	s.init(KindSequence, s)
	s.chain = chain[*Sequence]{head: s, kit: k}
	return s
}

// NewSequence returns an unpooled Sequence over children.
func NewSequence(children ...Action) *Sequence {
	s := newSequence(nil)
	for _, c := range children {
		s.appendChild(c)
	}
	return s
}

// Children returns a copy of the child list.
func (s *Sequence) Children() []Action { return slices.Clone(s.children) }

// Current returns the index of the running child, or len(Children()) once
// every child has finished.
func (s *Sequence) Current() int { return s.index }

func (s *Sequence) appendChild(a Action) {
	if a == nil {
		fail("append", s.kind, ErrNilAction)
	}
	s.children = append(s.children, a)
}

func (s *Sequence) onStart() {
	s.index = 0
	if len(s.children) > 0 {
		s.children[0].Start()
	}
}

func (s *Sequence) onTick(dt time.Duration) bool {
	for s.index < len(s.children) {
		if !s.children[s.index].Tick(dt) {
			return false
		}
		if s.stopped {
			return false
		}
		s.index++
		dt = 0
		if s.index < len(s.children) {
			s.children[s.index].Start()
		}
	}
	return true
}

func (s *Sequence) onStop() {
	if s.index < len(s.children) {
		s.children[s.index].Stop()
	}
}

func (s *Sequence) onReset() {
	s.index = 0
	for _, c := range s.children {
		c.Reset()
	}
}

func (s *Sequence) onRelease() {
	for i, c := range s.children {
		c.Release()
		s.children[i] = nil
	}
	s.children = s.children[:0]
	s.index = 0
}
