package realtime

import "time"

// Step runs one frame with delta dt on the calling goroutine. It must not be
// called while the loop goroutine is running; use it to drive a Loop from a
// host's own frame callback or from tests. Panics propagate.
func (l *Loop) Step(dt time.Duration) {
	// Phase 1: calls handed over from other goroutines
	posts := l.collectPosts()
	sortPosts(posts)
	for _, p := range posts {
		p.fn()
	}

	// Phase 2: fixed updates
	l.fixedUpdates(dt)

	// Phase 3: variable-rate phases
	l.driver.Update(dt)
	l.driver.LateUpdate(dt)
	l.driver.GUI(dt)

	l.frame.Add(1)
}

func (l *Loop) fixedUpdates(dt time.Duration) {
	if dt > 0 {
		l.accumulator += dt
	}
	steps := 0
	for l.accumulator >= l.cfg.FixedStep {
		if steps == l.cfg.MaxFixedSteps {
			dropped := l.accumulator - l.accumulator%l.cfg.FixedStep
			l.accumulator %= l.cfg.FixedStep
			l.logger.Debug("fixed update backlog dropped", "frame", l.frame.Load(), "dropped", dropped)
			return
		}
		l.driver.FixedUpdate(l.cfg.FixedStep)
		l.accumulator -= l.cfg.FixedStep
		steps++
	}
}
