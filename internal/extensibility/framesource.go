package extensibility

import (
	"sync"
	"time"
)

// ChannelFrameSource feeds frame deltas sent on a channel. Useful when the
// host already has its own vsync or render callback.
type ChannelFrameSource struct {
	ch chan time.Duration
}

// NewChannelFrameSource wraps ch. Closing ch ends the loop reading it.
func NewChannelFrameSource(ch chan time.Duration) *ChannelFrameSource {
	return &ChannelFrameSource{ch: ch}
}

func (s *ChannelFrameSource) Frames() <-chan time.Duration {
	return s.ch
}

// TimerFrameSource emits one frame per tick of a time.Ticker, carrying the
// wall-clock time since the previous frame. Frames are dropped, not queued,
// when the reader falls behind; the next delivered delta covers the gap.
type TimerFrameSource struct {
	ch       chan time.Duration
	ticker   *time.Ticker
	stop     chan struct{}
	stopOnce sync.Once
}

// NewTimerFrameSource starts emitting frames every interval.
func NewTimerFrameSource(interval time.Duration) *TimerFrameSource {
	s := &TimerFrameSource{
		ch:     make(chan time.Duration, 1),
		ticker: time.NewTicker(interval),
		stop:   make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *TimerFrameSource) run() {
	last := time.Now()
	var pending time.Duration
	for {
		select {
		case now := <-s.ticker.C:
			pending += now.Sub(last)
			last = now
			select {
			case s.ch <- pending:
				pending = 0
			default:
			}
		case <-s.stop:
			s.ticker.Stop()
			close(s.ch)
			return
		}
	}
}

func (s *TimerFrameSource) Frames() <-chan time.Duration {
	return s.ch
}

// Stop stops the ticker and closes the frame channel. Safe to call twice.
func (s *TimerFrameSource) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
