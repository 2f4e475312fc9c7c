package production

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/comalice/actionkit"
)

// ChannelPublisher forwards driver lifecycle records to a Go channel.
// Publishing never blocks: records are dropped and counted when the channel
// is full.
type ChannelPublisher struct {
	ch      chan<- actionkit.Lifecycle
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- actionkit.Lifecycle) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, rec actionkit.Lifecycle) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.dropped.Add(1)
		return nil
	}
	select {
	case p.ch <- rec:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.dropped.Add(1)
		return nil
	}
}

// Dropped returns how many records were discarded.
func (p *ChannelPublisher) Dropped() uint64 {
	return p.dropped.Load()
}

// Close closes the output channel. Later publishes are dropped.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	return nil
}

// LogPublisher writes lifecycle records to a structured logger at debug level.
type LogPublisher struct {
	Logger *slog.Logger
}

func (p LogPublisher) Publish(ctx context.Context, rec actionkit.Lifecycle) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.DebugContext(ctx, "action "+rec.Kind.String(),
		"kind", rec.Action.String(),
		"phase", rec.Phase.String(),
		"frame", rec.Frame,
	)
	return nil
}

// MultiPublisher fans a record out to every publisher, returning the first
// error after all have been called.
type MultiPublisher []actionkit.Publisher

func (m MultiPublisher) Publish(ctx context.Context, rec actionkit.Lifecycle) error {
	var first error
	for _, p := range m {
		if err := p.Publish(ctx, rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}
