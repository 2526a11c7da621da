// Package state provides the guarded shared store between training and
// rendering.
//
// # Overview
//
// The cluster tree is mutation-heavy and not safe for concurrent use, so the
// pipeline funnels all access through a Store: the training goroutine is the
// single writer, the render loop is a reader, and a sync.RWMutex keeps the
// two honest. The store also owns the ingestion sequence counter and the
// bookkeeping the header displays (lines applied, lines skipped, input
// finished, last fatal error).
//
// # Architecture
//
//	Trainer (coordinator):          Renderer (UI tick):
//	┌──────────────────┐           ┌──────────────────┐
//	│ drain queue      │           │                  │
//	│   ↓ per line     │           │ store.Snapshot() │
//	│ store.Train()    │──(mutex)─→│   ↓              │
//	│   ↓              │           │ project + draw   │
//	│ repeat…          │           │                  │
//	└──────────────────┘           └──────────────────┘
//
// # Snapshot Semantics
//
// Snapshot copies everything out under the read lock - cluster templates
// included - and never holds the lock while the caller filters or sorts.
// A snapshot is therefore safe to keep, mutate, or hand to another
// goroutine, and is allowed to be up to one training tick stale.
//
// # Sequence Numbers
//
// Train assigns sequence numbers itself, under the same lock that orders the
// tree mutations. That makes "applied count" and "recency of each cluster"
// agree by construction: cluster eviction inside the tree compares the very
// numbers the header reports.
//
// # Error Semantics
//
// Fail records a fatal pipeline error without discarding mined data; the
// final screen keeps showing the clusters found so far alongside the error.
// Recoverable conditions (skipped lines, timeouts, backpressure) never pass
// through Fail.
package state
