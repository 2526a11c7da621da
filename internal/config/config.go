package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ynqa/logu/internal/drain"
)

// Config carries every tunable for one run. It is resolved once at startup
// (defaults, then config file, then command-line flags) and immutable after.
type Config struct {
	// RetrievalTimeout is the longest one input poll waits for a line
	// before re-checking cancellation.
	RetrievalTimeout time.Duration
	// RenderInterval is the snapshot projection and redraw cadence.
	RenderInterval time.Duration
	// TrainInterval is the queue drain and tree mutation cadence.
	TrainInterval time.Duration

	// ClusterSizeTh hides clusters matched fewer times than this.
	ClusterSizeTh uint64
	// MaxClusters bounds clusters retained per leaf and rows shown; zero
	// means unbounded.
	MaxClusters int
	// MaxNodeDepth is the number of token-keyed tree levels beneath the
	// length level.
	MaxNodeDepth int
	// SimTh is the minimum similarity for a line to join a cluster.
	SimTh float64
	// MaxChildren bounds exact-keyed branches per tree node.
	MaxChildren int
	// ParamStr renders wildcard template positions.
	ParamStr string
	// ParametrizeNumbers routes digit-bearing tokens through the wildcard
	// branch during descent.
	ParametrizeNumbers bool

	// QueueSize is the pending-line queue capacity; a full queue blocks
	// the reader.
	QueueSize int
	// InputPath reads lines from a file instead of standard input.
	InputPath string
	// Theme names the colour theme; empty falls back to saved preferences.
	Theme string
	// DebugLogPath appends zap diagnostics to this file; empty disables.
	DebugLogPath string
}

const (
	defaultConfigPath = "~/.config/logu/config.toml"

	DefaultRetrievalTimeout = 10 * time.Millisecond
	DefaultRenderInterval   = 100 * time.Millisecond
	DefaultTrainInterval    = 10 * time.Millisecond
	DefaultQueueSize        = 8192
)

// Default returns the documented defaults for every option.
func Default() Config {
	return Config{
		RetrievalTimeout: DefaultRetrievalTimeout,
		RenderInterval:   DefaultRenderInterval,
		TrainInterval:    DefaultTrainInterval,
		MaxNodeDepth:     drain.DefaultMaxNodeDepth,
		SimTh:            drain.DefaultSimTh,
		MaxChildren:      drain.DefaultMaxChildren,
		ParamStr:         drain.DefaultParamStr,
		QueueSize:        DefaultQueueSize,
	}
}

// Load reads the config file at path, falling back to defaults when the file
// is missing. An empty path means the default location. Absent keys keep
// their defaults; durations are written as integer milliseconds.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		RetrievalTimeoutMS *int64   `toml:"retrieval_timeout_ms"`
		RenderIntervalMS   *int64   `toml:"render_interval_ms"`
		TrainIntervalMS    *int64   `toml:"train_interval_ms"`
		ClusterSizeTh      *uint64  `toml:"cluster_size_th"`
		MaxClusters        *int     `toml:"max_clusters"`
		MaxNodeDepth       *int     `toml:"max_node_depth"`
		SimTh              *float64 `toml:"sim_th"`
		MaxChildren        *int     `toml:"max_children"`
		ParamStr           *string  `toml:"param_str"`
		ParametrizeNumbers *bool    `toml:"parametrize_numbers"`
		QueueSize          *int     `toml:"queue_size"`
		Input              *string  `toml:"input"`
		Theme              *string  `toml:"theme"`
		DebugLog           *string  `toml:"debug_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.RetrievalTimeoutMS != nil {
		cfg.RetrievalTimeout = time.Duration(*raw.RetrievalTimeoutMS) * time.Millisecond
	}
	if raw.RenderIntervalMS != nil {
		cfg.RenderInterval = time.Duration(*raw.RenderIntervalMS) * time.Millisecond
	}
	if raw.TrainIntervalMS != nil {
		cfg.TrainInterval = time.Duration(*raw.TrainIntervalMS) * time.Millisecond
	}
	if raw.ClusterSizeTh != nil {
		cfg.ClusterSizeTh = *raw.ClusterSizeTh
	}
	if raw.MaxClusters != nil {
		cfg.MaxClusters = *raw.MaxClusters
	}
	if raw.MaxNodeDepth != nil {
		cfg.MaxNodeDepth = *raw.MaxNodeDepth
	}
	if raw.SimTh != nil {
		cfg.SimTh = *raw.SimTh
	}
	if raw.MaxChildren != nil {
		cfg.MaxChildren = *raw.MaxChildren
	}
	if raw.ParamStr != nil {
		cfg.ParamStr = *raw.ParamStr
	}
	if raw.ParametrizeNumbers != nil {
		cfg.ParametrizeNumbers = *raw.ParametrizeNumbers
	}
	if raw.QueueSize != nil {
		cfg.QueueSize = *raw.QueueSize
	}
	if raw.Input != nil {
		cfg.InputPath = mustExpand(strings.TrimSpace(*raw.Input))
	}
	if raw.Theme != nil {
		cfg.Theme = strings.TrimSpace(*raw.Theme)
	}
	if raw.DebugLog != nil {
		cfg.DebugLogPath = mustExpand(strings.TrimSpace(*raw.DebugLog))
	}

	return cfg, nil
}

// Validate normalizes recoverable fields and rejects values that can only be
// mistakes. It is called once, after flags are applied.
func (c *Config) Validate() error {
	if c.RetrievalTimeout <= 0 {
		c.RetrievalTimeout = DefaultRetrievalTimeout
	}
	if c.RenderInterval <= 0 {
		c.RenderInterval = DefaultRenderInterval
	}
	if c.TrainInterval <= 0 {
		c.TrainInterval = DefaultTrainInterval
	}
	if c.SimTh <= 0 || c.SimTh > 1 {
		return fmt.Errorf("sim-th must be in (0, 1], got %v", c.SimTh)
	}
	if c.MaxNodeDepth < 0 {
		return fmt.Errorf("max-node-depth must be at least 0, got %d", c.MaxNodeDepth)
	}
	if c.MaxChildren < 1 {
		return fmt.Errorf("max-children must be at least 1, got %d", c.MaxChildren)
	}
	if c.MaxClusters < 0 {
		c.MaxClusters = 0
	}
	if c.QueueSize < 1 {
		c.QueueSize = DefaultQueueSize
	}
	if strings.TrimSpace(c.ParamStr) == "" {
		c.ParamStr = drain.DefaultParamStr
	}
	return nil
}

// TreeOptions maps the mining fields onto the cluster tree's options.
func (c Config) TreeOptions() drain.Options {
	return drain.Options{
		SimTh:              c.SimTh,
		MaxNodeDepth:       c.MaxNodeDepth,
		MaxChildren:        c.MaxChildren,
		MaxClusters:        c.MaxClusters,
		ParamStr:           c.ParamStr,
		ParametrizeNumbers: c.ParametrizeNumbers,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	if path == "" {
		return ""
	}
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
