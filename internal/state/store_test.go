package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/ynqa/logu/internal/drain"
)

func newStore() *Store {
	return New(drain.New(drain.DefaultOptions()))
}

func TestStore_TrainAssignsSequence(t *testing.T) {
	s := newStore()

	s.Train(drain.Tokenize("listening on port 8080"))
	s.Train(drain.Tokenize("listening on port 9090"))
	s.Train(drain.Tokenize("shutting down"))

	snap := s.Snapshot()
	if snap.Applied != 3 {
		t.Fatalf("Applied = %d, want 3", snap.Applied)
	}
	if len(snap.Clusters) != 2 {
		t.Fatalf("snapshot clusters = %d, want 2", len(snap.Clusters))
	}
	for _, c := range snap.Clusters {
		if len(c.Template) == 2 && c.LastSeq != 3 {
			t.Errorf("short cluster LastSeq = %d, want 3", c.LastSeq)
		}
		if len(c.Template) == 4 && c.LastSeq != 2 {
			t.Errorf("long cluster LastSeq = %d, want 2", c.LastSeq)
		}
	}
}

func TestStore_SnapshotClone(t *testing.T) {
	s := newStore()
	s.Train(drain.Tokenize("request served in 5ms"))

	snap := s.Snapshot()
	if len(snap.Clusters) != 1 {
		t.Fatalf("snapshot clusters = %d, want 1", len(snap.Clusters))
	}

	// Returned snapshot should be independent of the stored tree.
	snap.Clusters[0].Template[0] = "mutated"
	snap2 := s.Snapshot()
	if got := snap2.Clusters[0].Template[0]; got != "request" {
		t.Fatalf("Snapshot should clone templates; got %q want %q", got, "request")
	}
}

func TestStore_CountersAndFlags(t *testing.T) {
	s := newStore()

	snap := s.Snapshot()
	if snap.Skipped != 0 || snap.InputDone || snap.LastError != nil {
		t.Fatalf("zero snapshot = %+v, want empty counters", snap)
	}

	s.MarkSkipped()
	s.MarkSkipped()
	s.MarkInputDone()

	snap = s.Snapshot()
	if snap.Skipped != 2 {
		t.Fatalf("Skipped = %d, want 2", snap.Skipped)
	}
	if !snap.InputDone {
		t.Fatal("InputDone = false, want true")
	}
}

func TestStore_FailKeepsData(t *testing.T) {
	s := newStore()
	s.Train(drain.Tokenize("worker started"))
	prev := s.Snapshot()

	origErr := errors.New("read stdin: broken pipe")
	s.Fail(origErr)

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Clusters, prev.Clusters) {
		t.Fatalf("clusters changed on error: got %#v want %#v", snap.Clusters, prev.Clusters)
	}
	if snap.LastError == nil || snap.LastError.Error() != origErr.Error() {
		t.Fatalf("LastError = %v, want %v", snap.LastError, origErr)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}

	// nil is not an error and must not clear the recorded one.
	s.Fail(nil)
	if snap := s.Snapshot(); snap.LastError == nil {
		t.Fatal("LastError cleared by Fail(nil)")
	}
}

func TestStore_ConcurrentReaders(t *testing.T) {
	s := newStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.Train(drain.Tokenize("tick from writer"))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			snap := s.Snapshot()
			if snap.Applied > 0 && len(snap.Clusters) == 0 {
				t.Error("snapshot observed applied lines with no clusters")
				return
			}
		}
	}()
	wg.Wait()

	snap := s.Snapshot()
	if snap.Applied != 500 {
		t.Fatalf("Applied = %d, want 500", snap.Applied)
	}
}
