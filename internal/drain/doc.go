// Package drain implements online log template mining with a fixed-depth
// parse tree, after the Drain algorithm (He et al., ICWS 2017).
//
// # Overview
//
// Log streams repeat a small set of message shapes with varying parameters:
//
//	connected to 10.0.0.1
//	connected to 10.0.0.2
//	user davidoh logged in
//
// The tree clusters each incoming line into the template it matches,
// generalizing parameter positions to a wildcard marker:
//
//	connected to <*>        (size 2)
//	user davidoh logged in  (size 1)
//
// Mining is incremental: every line updates the tree in one pass, there is
// no batch phase, and counts are available at any moment while the stream is
// still arriving.
//
// # Tree Structure
//
// The tree has three kinds of levels with a hard depth bound:
//
//	root
//	└── token count (one branch per distinct line length)
//	    └── token-keyed levels (at most MaxNodeDepth, keyed on the
//	        leading tokens; bounded fan-out per node)
//	        └── leaf (clusters for lines that routed here)
//
// Routing by length first means clusters never mix lengths, so template
// positions always align one-to-one with line positions. A line of length L
// then descends min(MaxNodeDepth, L) - 1 token-keyed levels (none when that
// is not positive); the final token never keys a level, which keeps trailing
// parameters from splitting otherwise-identical shapes.
//
// # Matching
//
// At the leaf the line is scored against each resident cluster: similarity
// is the fraction of positions where the template holds the same literal or
// already holds the wildcard. The best cluster at or above SimTh absorbs
// the line; every position where the two disagree is widened to the
// wildcard marker. Widening is one-way - a wildcard position never narrows
// back to a literal - so a template only ever generalizes.
//
// If no cluster qualifies, the line founds a new cluster whose template is
// the line verbatim.
//
// # Bounded Memory
//
// Two bounds keep an adversarial stream (random identifiers in leading
// positions, unbounded message variety) from growing the tree without
// limit:
//
//   - MaxChildren caps the exact-match branches per node. Once a node is
//     full, unseen tokens share a single wildcard branch, so high-variety
//     positions converge into one subtree instead of fanning out.
//   - MaxClusters caps the clusters one leaf retains. A full leaf evicts
//     its least-recently-matched cluster (smallest LastSeq) before
//     admitting a new one, dropping stale shapes first.
//
// With ParametrizeNumbers set, tokens containing digits are treated as
// parameters during routing and never become branch keys at all.
//
// # Concurrency
//
// Tree does no locking. Train mutates shared node and cluster state, so one
// goroutine must own training; Clusters copies data out and is meant to be
// called from the same owner (a guarded store wraps the tree for
// cross-goroutine use).
//
// # Usage
//
//	tree := drain.New(drain.Options{SimTh: 0.4, MaxNodeDepth: 2})
//	var seq uint64
//	for line := range lines {
//		seq++
//		tree.Train(drain.Tokenize(line), seq)
//	}
//	for _, c := range tree.Clusters() {
//		fmt.Printf("%6d  %s\n", c.Size, c)
//	}
package drain
