package ingest

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"go.uber.org/zap"
)

func TestReaderEnqueuesUntilEOF(t *testing.T) {
	store := newTestStore()
	coord := NewCoordinator(store, 8, 10*time.Millisecond, zap.NewNop())
	r := NewReader(strings.NewReader("alpha start\nbeta stop\n"), coord, store, 5*time.Millisecond, zap.NewNop())

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if depth, _ := coord.QueueStats(); depth != 2 {
		t.Fatalf("queue depth = %d, want 2", depth)
	}
	snap := store.Snapshot()
	if !snap.InputDone {
		t.Fatal("InputDone = false after EOF, want true")
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestReaderSkipsUndecodableLines(t *testing.T) {
	store := newTestStore()
	coord := NewCoordinator(store, 8, 10*time.Millisecond, zap.NewNop())
	input := "good line\n\xff\xfe\xfd\nanother good line\n"
	r := NewReader(strings.NewReader(input), coord, store, 5*time.Millisecond, zap.NewNop())

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if depth, _ := coord.QueueStats(); depth != 2 {
		t.Fatalf("queue depth = %d, want 2 decodable lines", depth)
	}
	if got := store.Snapshot().Skipped; got != 1 {
		t.Fatalf("Skipped = %d, want 1", got)
	}
}

func TestReaderScanFailureIsFatal(t *testing.T) {
	store := newTestStore()
	coord := NewCoordinator(store, 8, 10*time.Millisecond, zap.NewNop())
	cause := errors.New("device gone")
	source := io.MultiReader(strings.NewReader("one fine line\n"), iotest.ErrReader(cause))
	r := NewReader(source, coord, store, 5*time.Millisecond, zap.NewNop())

	err := r.Run(context.Background())
	if !errors.Is(err, cause) {
		t.Fatalf("Run() error = %v, want wrapped %v", err, cause)
	}

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatal("LastError = nil, want recorded read failure")
	}
	if snap.InputDone {
		t.Fatal("InputDone = true after failure, want false")
	}
	if depth, _ := coord.QueueStats(); depth != 1 {
		t.Fatalf("queue depth = %d, want the line read before the failure", depth)
	}
}

func TestReaderObservesCancellationOnQuietStream(t *testing.T) {
	store := newTestStore()
	coord := NewCoordinator(store, 8, 10*time.Millisecond, zap.NewNop())
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()
	r := NewReader(pr, coord, store, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	// Let a few poll timeouts elapse before cancelling.
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not observe cancellation")
	}
}

func TestReaderBlankLinesAreEnqueued(t *testing.T) {
	store := newTestStore()
	coord := NewCoordinator(store, 8, 10*time.Millisecond, zap.NewNop())
	r := NewReader(strings.NewReader("\n   \n"), coord, store, 5*time.Millisecond, zap.NewNop())

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Blank lines tokenize to empty sequences but still count as input.
	if depth, _ := coord.QueueStats(); depth != 2 {
		t.Fatalf("queue depth = %d, want 2", depth)
	}
	if got := store.Snapshot().Skipped; got != 0 {
		t.Fatalf("Skipped = %d, want 0", got)
	}
}
