package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ynqa/logu/internal/config"
	"github.com/ynqa/logu/internal/drain"
	"github.com/ynqa/logu/internal/ingest"
	"github.com/ynqa/logu/internal/logging"
	"github.com/ynqa/logu/internal/prefs"
	"github.com/ynqa/logu/internal/state"
	"github.com/ynqa/logu/internal/ui"
	"github.com/ynqa/logu/internal/view"
)

// Options configure the logu application.
type Options struct {
	Config    config.Config
	Input     io.Reader // nil opens Config.InputPath, or standard input
	PrefsPath string    // empty uses default ~/.config/logu/prefs.toml
}

// Run boots the logu TUI and mines the input stream until the user quits,
// the context is cancelled, or the input fails.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config

	logger, closeLogger, err := logging.Open(cfg.DebugLogPath)
	if err != nil {
		return err
	}
	defer closeLogger()

	userPrefs := prefs.Load(opts.PrefsPath)
	themeName := cfg.Theme
	if themeName == "" {
		themeName = userPrefs.Theme
	}

	source := opts.Input
	if source == nil {
		if cfg.InputPath != "" {
			f, err := os.Open(cfg.InputPath)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			source = f
		} else {
			source = os.Stdin
		}
	}

	store := state.New(drain.New(cfg.TreeOptions()))
	coordinator := ingest.NewCoordinator(store, cfg.QueueSize, cfg.TrainInterval, logger)
	reader := ingest.NewReader(source, coordinator, store, cfg.RetrievalTimeout, logger)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error { return reader.Run(gctx) })
	g.Go(func() error { return coordinator.Run(gctx) })

	logger.Debug("pipeline started",
		zap.Duration("train_interval", cfg.TrainInterval),
		zap.Duration("render_interval", cfg.RenderInterval),
		zap.Int("queue_size", cfg.QueueSize),
	)

	uiErr := ui.Run(ui.Options{
		Context:        gctx,
		Store:          store,
		QueueStats:     coordinator.QueueStats,
		RenderInterval: cfg.RenderInterval,
		View: view.Options{
			ClusterSizeTh: cfg.ClusterSizeTh,
			MaxClusters:   cfg.MaxClusters,
		},
		ParamStr:  cfg.ParamStr,
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
	})

	// The UI is down; stop the pipeline and collect what it died of.
	cancel()
	pipelineErr := ignoreCanceled(g.Wait())

	logger.Debug("pipeline stopped", zap.Error(pipelineErr))

	if uiErr != nil {
		return fmt.Errorf("run ui: %w", uiErr)
	}
	return pipelineErr
}

// ignoreCanceled drops context cancellation, which marks an orderly
// shutdown rather than a failure.
func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
