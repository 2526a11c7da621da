package ingest

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/ynqa/logu/internal/state"
)

const (
	defaultTrainInterval    = 10 * time.Millisecond
	defaultRetrievalTimeout = 10 * time.Millisecond
)

// Coordinator owns the bounded queue between the input reader and the
// cluster tree, and applies queued lines to the store on a fixed cadence.
// It is the tree's only writer.
type Coordinator struct {
	store    *state.Store
	queue    chan []string
	interval time.Duration
	logger   *zap.Logger

	// Clock is swappable so tests can drive training ticks deterministically.
	Clock clock.Clock
}

// NewCoordinator returns a coordinator applying lines to store every
// interval, buffering up to queueSize tokenized lines in between.
func NewCoordinator(store *state.Store, queueSize int, interval time.Duration, logger *zap.Logger) *Coordinator {
	if queueSize < 1 {
		queueSize = 1
	}
	if interval <= 0 {
		interval = defaultTrainInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		store:    store,
		queue:    make(chan []string, queueSize),
		interval: interval,
		logger:   logger,
		Clock:    clock.New(),
	}
}

// Enqueue hands one tokenized line to the training side, blocking while the
// queue is full. Blocking is the backpressure contract: a slow trainer slows
// the reader down instead of dropping lines. Enqueue returns the context
// error once cancelled.
func (c *Coordinator) Enqueue(ctx context.Context, tokens []string) error {
	select {
	case c.queue <- tokens:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run applies queued lines until ctx is cancelled, waking every interval and
// draining everything pending at that moment in arrival order. Cancellation
// is observed between batches, never mid-line, so the tree is structurally
// sound on shutdown. The returned error is ctx.Err().
func (c *Coordinator) Run(ctx context.Context) error {
	ticker := c.Clock.Ticker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.drainPending()
		}
	}
}

// QueueStats reports the pending line count and the queue capacity.
func (c *Coordinator) QueueStats() (depth, capacity int) {
	return len(c.queue), cap(c.queue)
}

// drainPending applies every line that was queued when the tick fired.
// Lines arriving mid-drain wait for the next tick.
func (c *Coordinator) drainPending() {
	pending := len(c.queue)
	for i := 0; i < pending; i++ {
		tokens := <-c.queue
		id, created := c.store.Train(tokens)
		if created {
			c.logger.Debug("new cluster", zap.Uint64("id", id), zap.Int("tokens", len(tokens)))
		}
	}
	if pending > 0 {
		c.logger.Debug("applied batch", zap.Int("lines", pending))
	}
}
