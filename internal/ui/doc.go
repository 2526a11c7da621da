// Package ui provides the terminal user interface for logu.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea's Model/Update/View loop. The model keeps a
// point-in-time snapshot of the mining state and re-renders on a fixed tick,
// so the display cadence stays decoupled from the ingestion and training
// cadences. The interface is read-only: it never feeds anything back into
// the pipeline.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: The Bubble Tea model, message handling, and the main Run function
//   - clusters.go: Cluster table rendering with wildcard highlighting
//   - header.go: Status bar and command hints bar
//   - help.go: Help overlay modal
//   - keys.go: Keyboard bindings
//   - theme.go: Color themes and Lipgloss style construction
//
// # Layout
//
// The screen is a single view with four bands:
//
//   - Status bar: logo, input state, line/cluster/queue counters, rate
//   - Column header: COUNT and TEMPLATE titles
//   - Cluster rows: a scrollable viewport, one cluster per line
//   - Command bar: key hints and the active theme name
//
// Rows are sorted by match count descending so the dominant templates stay
// at the top of the screen while mining continues.
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program in the alternate screen
//  2. A tick command fires at the render interval and fetches a snapshot
//  3. Snapshot messages project clusters into rows and refresh the viewport
//  4. Key messages scroll, freeze the display, cycle themes, or quit
//  5. When the pipeline context is canceled, the next tick quits the program
//
// # Freezing
//
// Space freezes the display: ticks stop fetching snapshots, so the visible
// rows hold still while ingestion and training continue underneath. Pressing
// Space again fetches immediately and resumes the refresh loop.
//
// # Key Bindings
//
//   - j/k or arrows: Scroll one line
//   - g/G: Jump to top/bottom
//   - pgup/pgdown, ctrl+u/ctrl+d: Page and half-page scrolling
//   - Space: Freeze/resume the display
//   - T: Cycle theme (persisted to prefs)
//   - h or ?: Toggle help overlay
//   - q or Ctrl+C: Quit
//
// # Themes
//
// Three built-in themes are available (Nightfox, Kanagawa, Slate). The
// selected theme is saved through the prefs package and restored on the
// next run.
package ui
