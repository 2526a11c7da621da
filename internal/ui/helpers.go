package ui

import (
	"fmt"
	"time"
)

// lineRate tracks the ingestion rate across snapshots.
type lineRate struct {
	lastApplied uint64
	lastAt      time.Time
	perSecond   float64
}

// Observe records the applied line count at the given instant and updates
// the rate estimate.
func (r *lineRate) Observe(applied uint64, now time.Time) {
	if r.lastAt.IsZero() {
		r.lastApplied = applied
		r.lastAt = now
		return
	}

	dt := now.Sub(r.lastAt).Seconds()
	if dt <= 0 {
		return
	}

	// A smaller counter means the store was replaced; restart the window.
	if applied < r.lastApplied {
		r.lastApplied = applied
		r.lastAt = now
		r.perSecond = 0
		return
	}

	r.perSecond = float64(applied-r.lastApplied) / dt
	r.lastApplied = applied
	r.lastAt = now
}

// PerSecond returns the most recent rate estimate.
func (r lineRate) PerSecond() float64 {
	return r.perSecond
}

// formatRate formats a lines-per-second rate for the status bar.
func formatRate(perSecond float64) string {
	switch {
	case perSecond >= 1000:
		return fmt.Sprintf("%.1fk l/s", perSecond/1000)
	case perSecond >= 10:
		return fmt.Sprintf("%.0f l/s", perSecond)
	default:
		return fmt.Sprintf("%.1f l/s", perSecond)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
