package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ynqa/logu/internal/config"
)

func TestIgnoreCanceled(t *testing.T) {
	cause := errors.New("read input: boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"canceled", context.Canceled, nil},
		{"wrapped canceled", fmt.Errorf("unit: %w", context.Canceled), nil},
		{"real error", cause, cause},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ignoreCanceled(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ignoreCanceled(%v) = %v, want nil", tt.in, got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("ignoreCanceled(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRunRejectsMissingInputFile(t *testing.T) {
	cfg := config.Default()
	cfg.InputPath = filepath.Join(t.TempDir(), "absent.log")

	err := Run(context.Background(), Options{
		Config:    cfg,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	if err == nil || !strings.Contains(err.Error(), "open input") {
		t.Fatalf("Run() error = %v, want open input failure", err)
	}
}

func TestRunRejectsUnwritableDebugLog(t *testing.T) {
	cfg := config.Default()
	cfg.DebugLogPath = filepath.Join(t.TempDir(), "missing", "debug.log")

	err := Run(context.Background(), Options{
		Config:    cfg,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	if err == nil || !strings.Contains(err.Error(), "open debug log") {
		t.Fatalf("Run() error = %v, want open debug log failure", err)
	}
}
