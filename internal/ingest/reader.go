package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ynqa/logu/internal/drain"
	"github.com/ynqa/logu/internal/state"
)

// Reader tokenizes input lines and feeds them to the coordinator. A helper
// goroutine owns the blocking scan; the Run loop waits on it with a bounded
// timeout so cancellation is observed even when the stream goes quiet.
type Reader struct {
	source  io.Reader
	coord   *Coordinator
	store   *state.Store
	timeout time.Duration
	logger  *zap.Logger
}

// NewReader returns a reader feeding coord from source. timeout bounds each
// wait for the next line.
func NewReader(source io.Reader, coord *Coordinator, store *state.Store, timeout time.Duration, logger *zap.Logger) *Reader {
	if timeout <= 0 {
		timeout = defaultRetrievalTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		source:  source,
		coord:   coord,
		store:   store,
		timeout: timeout,
		logger:  logger,
	}
}

// Run reads until the stream ends or ctx is cancelled. Undecodable lines are
// counted and skipped. A clean end of input is not an error: the store is
// flagged and Run returns nil, leaving the rest of the pipeline up for
// inspection. A failed read is fatal and returned.
func (r *Reader) Run(ctx context.Context) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(r.source)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- err
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					err = fmt.Errorf("read input: %w", err)
					r.store.Fail(err)
					return err
				default:
					r.store.MarkInputDone()
					r.logger.Debug("input finished")
					return nil
				}
			}
			if !utf8.ValidString(text) {
				r.store.MarkSkipped()
				r.logger.Debug("skipped undecodable line", zap.Int("bytes", len(text)))
				continue
			}
			if err := r.coord.Enqueue(ctx, drain.Tokenize(text)); err != nil {
				return err
			}
		case <-time.After(r.timeout):
			// A quiet stream is a normal outcome; loop and re-check.
		}
	}
}
