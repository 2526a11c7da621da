package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"zero", "abcdef", 0, ""},
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"tiny", "abcdef", 2, "ab"},
		{"ellipsis", "abcdefgh", 6, "abc..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.max); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"slow", 0.4, "0.4 l/s"},
		{"single_digit", 9.94, "9.9 l/s"},
		{"double_digit", 10, "10 l/s"},
		{"hundreds", 999.4, "999 l/s"},
		{"thousands", 1500, "1.5k l/s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatRate(tc.in); got != tc.want {
				t.Fatalf("formatRate(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLineRate(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var r lineRate

	// First observation only seeds the window.
	r.Observe(100, base)
	if got := r.PerSecond(); got != 0 {
		t.Fatalf("rate after seed = %v, want 0", got)
	}

	// 50 lines over half a second.
	r.Observe(150, base.Add(500*time.Millisecond))
	if got := r.PerSecond(); got != 100 {
		t.Fatalf("rate = %v, want 100", got)
	}

	// No progress.
	r.Observe(150, base.Add(time.Second))
	if got := r.PerSecond(); got != 0 {
		t.Fatalf("idle rate = %v, want 0", got)
	}

	// A counter going backwards restarts the window.
	r.Observe(10, base.Add(2*time.Second))
	if got := r.PerSecond(); got != 0 {
		t.Fatalf("rate after reset = %v, want 0", got)
	}
	r.Observe(20, base.Add(3*time.Second))
	if got := r.PerSecond(); got != 10 {
		t.Fatalf("rate after reset window = %v, want 10", got)
	}
}

func TestLineRateIgnoresZeroElapsed(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var r lineRate
	r.Observe(100, base)
	r.Observe(200, base.Add(time.Second))
	want := r.PerSecond()

	// Same instant again: the estimate must not change.
	r.Observe(999, base.Add(time.Second))
	if got := r.PerSecond(); got != want {
		t.Fatalf("rate after zero elapsed = %v, want %v", got, want)
	}
}
