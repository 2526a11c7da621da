// Package app provides the orchestration layer for the logu application.
//
// # Overview
//
// This package wires together configuration, ingestion, mining state, and
// the UI to create the complete logu experience. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Open the optional debug log and build the zap logger
//  2. Load saved preferences for the color theme
//  3. Resolve the input source (file or standard input)
//  4. Build the cluster tree, shared store, coordinator, and reader
//  5. Launch the ingestion units under an errgroup
//  6. Start the TUI on the calling goroutine and block until it exits
//  7. Cancel the ingestion units and collect their verdict
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> logging.Open()          Debug diagnostics sink
//	       ├─────> prefs.Load()            Saved theme
//	       ├─────> drain.New()             Cluster tree
//	       ├─────> state.New()             Shared store
//	       ├─────> ingest.NewCoordinator() Queue and training ticks
//	       ├─────> ingest.NewReader()      Line intake
//	       └─────> ui.Run()                Start TUI (blocks)
//
//	Pipeline (errgroup):
//	┌─────────────────────────────────────────────┐
//	│ reader.Run()       lines ──> coordinator    │
//	│ coordinator.Run()  ticks ──> store.Train()  │
//	│     └─> UI reads store.Snapshot()           │
//	└─────────────────────────────────────────────┘
//
// # Shutdown
//
// Three things end a run, and they all converge on context cancellation:
//
//   - The user quits: ui.Run returns, Run cancels the pipeline context,
//     both units return the cancellation, and Run reports success.
//   - The input fails: the reader records the error in the store and
//     returns it, the errgroup cancels its context, the UI notices on its
//     next tick and quits, and Run reports the reader's error.
//   - The process is signaled: the parent context cancels, everything
//     winds down the same way, and Run reports success.
//
// Cancellation itself is never an error. Run filters context.Canceled out
// of the errgroup verdict so an orderly shutdown exits zero.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Debug log file cannot be opened
//   - Input file cannot be opened
//   - The input stream fails mid-read
//   - The terminal cannot be initialized
//
// Recoverable conditions (the run continues):
//   - Preferences file missing or malformed (defaults apply)
//   - Undecodable input lines (counted and skipped)
//   - End of input (the display stays up over the final state)
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (drain, ingest, state, view, ui).
// The app package simply connects these pieces.
package app
