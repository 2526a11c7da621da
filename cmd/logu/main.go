package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/ynqa/logu/internal/app"
	"github.com/ynqa/logu/internal/config"
	"github.com/ynqa/logu/internal/drain"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config file path (optional)")

	retrievalTimeout := flag.Duration("retrieval-timeout", config.DefaultRetrievalTimeout, "max wait per input poll before re-checking cancellation")
	renderInterval := flag.Duration("render-interval", config.DefaultRenderInterval, "snapshot and redraw cadence")
	trainInterval := flag.Duration("train-interval", config.DefaultTrainInterval, "queue drain and training cadence")
	clusterSizeTh := flag.Uint64("cluster-size-th", 0, "hide clusters matched fewer times than this")
	maxClusters := flag.Int("max-clusters", 0, "cap on clusters kept per leaf and rows shown (0 = unbounded)")
	maxNodeDepth := flag.Int("max-node-depth", drain.DefaultMaxNodeDepth, "token-keyed tree levels beneath the length level")
	simTh := flag.Float64("sim-th", drain.DefaultSimTh, "minimum similarity to join an existing cluster")
	maxChildren := flag.Int("max-children", drain.DefaultMaxChildren, "exact branches per node before wildcard overflow")
	paramStr := flag.String("param-str", drain.DefaultParamStr, "wildcard token rendering")
	parametrizeNumbers := flag.Bool("parametrize-numbers", false, "route digit-bearing tokens via the wildcard edge")
	queueSize := flag.Int("queue-size", config.DefaultQueueSize, "pending-line queue capacity")
	inputPath := flag.String("input", "", "read log lines from a file instead of stdin")
	theme := flag.String("theme", "", "color theme (Nightfox, Kanagawa, Slate)")
	debugLog := flag.String("debug-log", "", "append debug diagnostics to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logu: %v\n", err)
		return 1
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "retrieval-timeout":
			cfg.RetrievalTimeout = *retrievalTimeout
		case "render-interval":
			cfg.RenderInterval = *renderInterval
		case "train-interval":
			cfg.TrainInterval = *trainInterval
		case "cluster-size-th":
			cfg.ClusterSizeTh = *clusterSizeTh
		case "max-clusters":
			cfg.MaxClusters = *maxClusters
		case "max-node-depth":
			cfg.MaxNodeDepth = *maxNodeDepth
		case "sim-th":
			cfg.SimTh = *simTh
		case "max-children":
			cfg.MaxChildren = *maxChildren
		case "param-str":
			cfg.ParamStr = *paramStr
		case "parametrize-numbers":
			cfg.ParametrizeNumbers = *parametrizeNumbers
		case "queue-size":
			cfg.QueueSize = *queueSize
		case "input":
			cfg.InputPath = *inputPath
		case "theme":
			cfg.Theme = *theme
		case "debug-log":
			cfg.DebugLogPath = *debugLog
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "logu: %v\n", err)
		return 2
	}

	// An interactive stdin has nothing to mine.
	if cfg.InputPath == "" && (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "logu: stdin is a terminal; pipe log lines in or pass -input")
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "logu: %v\n", err)
		return 1
	}
	return 0
}
