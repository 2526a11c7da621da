package state

import (
	"fmt"
	"sync"

	"github.com/ynqa/logu/internal/drain"
)

// Snapshot is a point-in-time copy of everything the renderer needs.
type Snapshot struct {
	// Clusters holds every live cluster, unordered and deep-copied.
	Clusters []drain.Cluster
	// Applied counts lines fed to the tree; it doubles as the latest
	// ingestion sequence number.
	Applied uint64
	// Skipped counts lines dropped before training, such as undecodable
	// input.
	Skipped uint64
	// InputDone reports that the input stream ended cleanly.
	InputDone bool
	// LastError is the most recent pipeline failure, nil while healthy.
	LastError error
}

// Store guards the cluster tree between the training writer and the
// rendering reader. Its zero value is not usable; construct with New.
type Store struct {
	mu      sync.RWMutex
	tree    *drain.Tree
	seq     uint64
	skipped uint64
	done    bool
	lastErr error
}

// New returns a store owning tree.
func New(tree *drain.Tree) *Store {
	return &Store{tree: tree}
}

// Train assigns the next ingestion sequence number to one tokenized line and
// feeds it to the tree. It reports the id of the cluster the line landed in
// and whether this call created it. Train is the single write path.
func (s *Store) Train(tokens []string) (id uint64, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return s.tree.Train(tokens, s.seq)
}

// MarkSkipped counts a line that was dropped before training.
func (s *Store) MarkSkipped() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skipped++
}

// MarkInputDone records that the input stream ended cleanly.
func (s *Store) MarkInputDone() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.done = true
}

// Fail records a fatal pipeline error for display. Cluster data is kept so
// the final view remains meaningful.
func (s *Store) Fail(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = err
}

// Snapshot returns an independent copy of the current state. The lock is
// held only while copying; callers filter and sort on their own time.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Clusters:  s.tree.Clusters(),
		Applied:   s.seq,
		Skipped:   s.skipped,
		InputDone: s.done,
	}
	if s.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", s.lastErr)
	}
	return snap
}
