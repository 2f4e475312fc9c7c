package actionkit

import "time"

// Delay accumulates tick deltas and finishes once the total reaches its
// duration, calling its optional callback exactly once. A non-positive
// duration finishes on the first tick.
type Delay struct {
	base
	duration time.Duration
	elapsed  time.Duration
	onDone   func()
}

func newDelay() *Delay {
	d := &Delay{}
	d.init(KindDelay, d)
	return d
}

// NewDelay returns an unpooled Delay.
func NewDelay(duration time.Duration, onDone func()) *Delay {
	d := newDelay()
	d.duration = duration
	d.onDone = onDone
	return d
}

// Duration returns the configured target.
func (d *Delay) Duration() time.Duration { return d.duration }

// Elapsed returns the time accumulated since the last start.
func (d *Delay) Elapsed() time.Duration { return d.elapsed }

func (d *Delay) onStart() { d.elapsed = 0 }

func (d *Delay) onTick(dt time.Duration) bool {
	d.elapsed += dt
	if d.elapsed < d.duration {
		return false
	}
	if d.onDone != nil {
		d.onDone()
	}
	return true
}

func (d *Delay) onStop()  {}
func (d *Delay) onReset() { d.elapsed = 0 }

func (d *Delay) onRelease() {
	d.duration = 0
	d.elapsed = 0
	d.onDone = nil
}

// DelayFrame counts ticks, ignoring their delta, and finishes once the count
// reaches its target. A target of zero or one finishes on the first tick.
type DelayFrame struct {
	base
	frames int
	count  int
	onDone func()
}

func newDelayFrame() *DelayFrame {
	d := &DelayFrame{}
	d.init(KindDelayFrame, d)
	return d
}

// NewDelayFrame returns an unpooled DelayFrame.
func NewDelayFrame(frames int, onDone func()) *DelayFrame {
	d := newDelayFrame()
	d.frames = frames
	d.onDone = onDone
	return d
}

func (d *DelayFrame) Frames() int { return d.frames }

// Count returns the ticks seen since the last start.
func (d *DelayFrame) Count() int { return d.count }

func (d *DelayFrame) onStart() { d.count = 0 }

func (d *DelayFrame) onTick(time.Duration) bool {
	d.count++
	if d.count < d.frames {
		return false
	}
	if d.onDone != nil {
		d.onDone()
	}
	return true
}

func (d *DelayFrame) onStop()  {}
func (d *DelayFrame) onReset() { d.count = 0 }

func (d *DelayFrame) onRelease() {
	d.frames = 0
	d.count = 0
	d.onDone = nil
}
