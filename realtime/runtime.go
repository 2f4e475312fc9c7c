package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/comalice/actionkit"
)

var (
	ErrQueueFull   = errors.New("post queue full")
	ErrNilFunc     = errors.New("nil func")
	ErrRunning     = errors.New("loop already running")
	ErrFramePanic  = errors.New("frame panicked")
	ErrNotRunning  = errors.New("loop not running")
	ErrSourceEnded = errors.New("frame source closed")
)

// FrameSource supplies frame deltas in place of the loop's own ticker. The
// loop runs one frame per value received and stops when the channel closes.
type FrameSource interface {
	Frames() <-chan time.Duration
}

// Option configures a Loop.
type Option func(*Loop)

// WithFrameSource drives frames from src instead of a ticker at TickRate.
func WithFrameSource(src FrameSource) Option {
	return func(l *Loop) {
		l.source = src
	}
}

// WithLogger sets the loop's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// Loop owns a Driver and runs its frames.
type Loop struct {
	driver *actionkit.Driver
	cfg    Config
	logger *slog.Logger
	source FrameSource

	mu    sync.Mutex
	posts []posted
	seq   uint64

	// loop goroutine only
	accumulator time.Duration

	frame atomic.Uint64

	runMu   sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}

	errMu sync.Mutex
	err   error
}

// NewLoop creates a loop around driver. Invalid config fields fall back to
// their defaults.
func NewLoop(driver *actionkit.Driver, cfg Config, opts ...Option) *Loop {
	if err := cfg.Validate(); err != nil {
		cfg = Config{}
	}
	cfg = cfg.withDefaults()
	l := &Loop{
		driver: driver,
		cfg:    cfg,
		posts:  make([]posted, 0, cfg.MaxPostsPerFrame),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}
	return l
}

func (l *Loop) Driver() *actionkit.Driver { return l.driver }

func (l *Loop) Config() Config { return l.cfg }

// Start launches the frame goroutine.
func (l *Loop) Start(ctx context.Context) error {
	l.runMu.Lock()
	defer l.runMu.Unlock()
	if l.stopped != nil {
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.stopped = make(chan struct{})
	l.setErr(nil)

	go l.run(ctx, l.stopped)

	l.logger.Info("loop started", "tick_rate", l.cfg.TickRate, "fixed_step", l.cfg.FixedStep)
	return nil
}

// Stop ends the frame goroutine, waits for it, then quits the driver so
// every remaining action is released. It returns the error that ended the
// loop, if any.
func (l *Loop) Stop() error {
	l.runMu.Lock()
	defer l.runMu.Unlock()
	if l.stopped == nil {
		return ErrNotRunning
	}
	l.cancel()
	<-l.stopped
	l.stopped = nil
	l.cancel = nil

	l.driver.Quit()
	l.logger.Info("loop stopped", "frames", l.frame.Load())
	return l.Err()
}

// Done is closed when the frame goroutine exits. It is nil before Start.
func (l *Loop) Done() <-chan struct{} {
	l.runMu.Lock()
	defer l.runMu.Unlock()
	return l.stopped
}

// Err returns what ended the last run: a recovered frame panic or a closed
// frame source. It is nil while running and after a clean Stop.
func (l *Loop) Err() error {
	l.errMu.Lock()
	defer l.errMu.Unlock()
	return l.err
}

func (l *Loop) setErr(err error) {
	l.errMu.Lock()
	l.err = err
	l.errMu.Unlock()
}

func (l *Loop) run(ctx context.Context, stopped chan struct{}) {
	defer close(stopped)

	if l.source != nil {
		frames := l.source.Frames()
		for {
			select {
			case <-ctx.Done():
				return
			case dt, ok := <-frames:
				if !ok {
					l.fail(ErrSourceEnded)
					return
				}
				if err := l.safeStep(dt); err != nil {
					l.fail(err)
					return
				}
			}
		}
	}

	ticker := time.NewTicker(l.cfg.TickRate)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := l.safeStep(dt); err != nil {
				l.fail(err)
				return
			}
		}
	}
}

func (l *Loop) fail(err error) {
	l.logger.Error("loop ended", "frame", l.frame.Load(), "error", err)
	l.setErr(err)
}

// safeStep runs a frame, converting a panic into an error.
func (l *Loop) safeStep(dt time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: frame %d: %v", ErrFramePanic, l.frame.Load(), r)
		}
	}()
	l.Step(dt)
	return nil
}

// Post queues fn to run on the loop goroutine at the start of the next
// frame. Safe for concurrent use. It fails with ErrQueueFull when
// MaxPostsPerFrame calls are already waiting.
func (l *Loop) Post(fn func()) error {
	return l.enqueue(fn, 0, true)
}

// PostWithPriority is Post with an explicit priority; higher runs first.
func (l *Loop) PostWithPriority(fn func(), priority int) error {
	return l.enqueue(fn, priority, true)
}

// Owner returns a scope that is closed on the loop goroutine once ctx is
// done. Bind actions to it to cancel them with ctx.
func (l *Loop) Owner(ctx context.Context) *actionkit.Scope {
	scope := actionkit.NewScope()
	context.AfterFunc(ctx, func() {
		_ = l.enqueue(scope.Close, math.MaxInt, false)
	})
	return scope
}

// Frame returns the number of frames run.
func (l *Loop) Frame() uint64 {
	return l.frame.Load()
}
