package testutil

import (
	"time"

	"github.com/comalice/actionkit"
)

// Host is anything that can run one host frame of a given delta. Both
// DriverHost and realtime.Loop satisfy it, so the same scenario can be
// stepped through either.
type Host interface {
	Step(dt time.Duration)
}

// DriverHost runs a bare Driver through the phases of one frame in the order
// a game host would: fixed update, update, late update, GUI.
type DriverHost struct {
	Driver *actionkit.Driver
}

// NewDriverHost wraps d.
func NewDriverHost(d *actionkit.Driver) *DriverHost {
	return &DriverHost{Driver: d}
}

func (h *DriverHost) Step(dt time.Duration) {
	h.Driver.FixedUpdate(dt)
	h.Driver.Update(dt)
	h.Driver.LateUpdate(dt)
	h.Driver.GUI(dt)
}

// Stepper advances a Host with a fixed, deterministic delta.
type Stepper struct {
	Host    Host
	Delta   time.Duration
	Elapsed time.Duration
	Frames  int
}

// NewStepper returns a Stepper that advances host by delta per frame.
func NewStepper(host Host, delta time.Duration) *Stepper {
	return &Stepper{Host: host, Delta: delta}
}

// Step runs n frames.
func (s *Stepper) Step(n int) {
	for i := 0; i < n; i++ {
		s.Host.Step(s.Delta)
		s.Elapsed += s.Delta
		s.Frames++
	}
}

// Until steps frames until done reports true or max frames have run. It
// returns the frames stepped by this call and whether done was satisfied.
func (s *Stepper) Until(done func() bool, max int) (int, bool) {
	for i := 0; i < max; i++ {
		if done() {
			return i, true
		}
		s.Step(1)
	}
	return max, done()
}

// TickAll ticks a once per delta and returns what each tick reported.
func TickAll(a actionkit.Action, deltas ...time.Duration) []bool {
	out := make([]bool, len(deltas))
	for i, dt := range deltas {
		out[i] = a.Tick(dt)
	}
	return out
}

// Recorder collects labels in call order; its methods build callbacks.
type Recorder struct {
	Calls []string
}

// Mark returns a callback that appends label.
func (r *Recorder) Mark(label string) func() {
	return func() {
		r.Calls = append(r.Calls, label)
	}
}

// Counter returns a callback that increments *n.
func Counter(n *int) func() {
	return func() {
		*n++
	}
}
