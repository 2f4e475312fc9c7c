package actionkit

import "sync"

// Owner is anything whose teardown should cancel the actions bound to it.
// OnTeardown registers fn to run when the owner is torn down and returns a
// function that unregisters it.
type Owner interface {
	OnTeardown(fn func()) (cancel func())
}

// Scope is an explicit Owner: a cancellation scope closed by the host.
//
// Registration is safe from any goroutine, but Close runs the teardown hooks
// on the calling goroutine. Hooks registered by a Driver stop actions, so
// close a scope on the goroutine that drives ticks.
type Scope struct {
	mu     sync.Mutex
	hooks  []*teardown
	closed bool
}

type teardown struct {
	fn func()
}

func NewScope() *Scope {
	return &Scope{}
}

// OnTeardown implements Owner. On a closed scope fn runs immediately.
func (s *Scope) OnTeardown(fn func()) (cancel func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		fn()
		return func() {}
	}
	t := &teardown{fn: fn}
	s.hooks = append(s.hooks, t)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, h := range s.hooks {
			if h == t {
				s.hooks = append(s.hooks[:i], s.hooks[i+1:]...)
				return
			}
		}
	}
}

// Close runs every registered hook once, in registration order. Later calls
// do nothing.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	hooks := s.hooks
	s.hooks = nil
	s.mu.Unlock()

	for _, h := range hooks {
		h.fn()
	}
}

func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Len returns the number of pending hooks.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hooks)
}
