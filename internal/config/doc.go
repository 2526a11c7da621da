// Package config resolves the process configuration for a run.
//
// # Overview
//
// Every tunable - mining thresholds, pipeline cadences, queue capacity,
// presentation options - lives in one Config struct that is resolved once at
// startup and treated as immutable afterwards. Resolution is layered:
//
//  1. Default() supplies the documented default for every option
//  2. Load() overlays values from an optional TOML file
//  3. main applies explicitly-set command-line flags on top
//  4. Validate() normalizes the result and rejects mistakes
//
// # Configuration File
//
// The default location is ~/.config/logu/config.toml; a missing file is not
// an error. Durations are written as integer milliseconds. Example:
//
//	retrieval_timeout_ms = 10
//	render_interval_ms = 100
//	train_interval_ms = 10
//	cluster_size_th = 2
//	max_clusters = 50
//	max_node_depth = 2
//	sim_th = 0.4
//	max_children = 100
//	param_str = "<*>"
//	parametrize_numbers = false
//	queue_size = 8192
//	input = "/var/log/app.log"
//	theme = "Nightfox"
//	debug_log = "~/.cache/logu/debug.log"
//
// Absent keys keep their defaults; keys explicitly set to zero are honored
// (max_node_depth = 0 routes by line length alone, max_clusters = 0 lifts
// the retention and display caps).
//
// # Validation
//
// Validate distinguishes recoverable sloppiness from outright mistakes.
// Non-positive cadences, an empty wildcard marker, or a non-positive queue
// size silently snap back to their defaults; an out-of-range similarity
// threshold, a negative tree depth, or a zero branch bound abort startup
// with an error, since mining would be meaningless under them.
//
// # Path Expansion
//
// The config path and the debug_log value expand a leading tilde and resolve
// to absolute paths; everything else is used verbatim.
package config
