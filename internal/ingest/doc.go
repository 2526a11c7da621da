// Package ingest moves lines from the input stream into the cluster tree.
//
// # Overview
//
// Two of the pipeline's three concurrent units live here:
//
//	input stream → Reader → bounded queue → Coordinator → store.Train
//
// The Reader turns raw input into tokenized lines; the Coordinator owns the
// queue between them and is the single writer of the cluster tree. The
// third unit, rendering, only ever reads store snapshots.
//
// # Decoupled Cadences
//
// Raw input arrival and tree mutation run on independent rhythms. The
// Reader enqueues as lines arrive; the Coordinator wakes on its training
// interval and drains whatever is pending in one batch, in arrival order.
// Arrival order matters: template widening and recency eviction are both
// order-sensitive, so the queue is the only path into the tree and batches
// never reorder.
//
// # Backpressure
//
// The queue is a fixed-capacity channel and Enqueue blocks when it is full.
// Under sustained overload the reader therefore slows to the trainer's pace
// instead of growing memory or dropping lines; completeness is worth more
// than producer latency here. The trade is end-to-end latency, bounded by
// queue capacity times per-line training cost.
//
// # Bounded Waits
//
// The Reader never parks indefinitely on the stream. A helper goroutine
// owns the blocking scan and hands lines over a channel; the Run loop waits
// at most the retrieval timeout before re-checking cancellation, so a quiet
// stream cannot delay shutdown. Timeouts are normal outcomes, not errors.
//
// # Stream End and Failure
//
// A clean end of input flags the store and ends the Reader without failing
// the pipeline: the view stays up so mined templates can be inspected
// after, say, `cat access.log | logu`. A read failure is fatal: it is
// recorded in the store for the final frame and returned, which tears the
// pipeline down. Undecodable lines sit between the two: counted, skipped,
// never fatal.
//
// # Deterministic Tests
//
// The Coordinator ticks off a swappable clock (benbjohnson/clock), so tests
// drive training cadence with a mock instead of sleeping through real
// intervals.
package ingest
