package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the status bar with mining statistics.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	compact := m.width < 100

	var parts []string

	// Logo
	parts = append(parts, bg.Render("logu", styles.Logo))

	// Input state indicator
	if m.snapshot.InputDone {
		parts = append(parts, bg.Render("● EOF", styles.MutedText))
	} else {
		parts = append(parts, bg.Render("● LIVE", styles.SuccessText))
	}

	// Applied line count
	linesLabel := "Lines:"
	if compact {
		linesLabel = "L:"
	}
	parts = append(parts,
		bg.Render(linesLabel, styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.snapshot.Applied), styles.Text),
	)

	// Skipped count (only if non-zero)
	if m.snapshot.Skipped > 0 {
		skippedLabel := "Skipped:"
		if compact {
			skippedLabel = "S:"
		}
		parts = append(parts,
			bg.Render(skippedLabel, styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.snapshot.Skipped), styles.WarningText),
		)
	}

	// Cluster count, split into visible/total when the projection hides rows
	clustersLabel := "Clusters:"
	if compact {
		clustersLabel = "C:"
	}
	visible := len(m.rows)
	clusterCount := fmt.Sprintf("%d", m.total)
	if visible != m.total {
		clusterCount = fmt.Sprintf("%d/%d", visible, m.total)
	}
	parts = append(parts,
		bg.Render(clustersLabel, styles.MutedText)+bg.Space()+
			bg.Render(clusterCount, styles.Text),
	)

	// Ingestion queue depth
	if m.capacity > 0 {
		queueLabel := "Queue:"
		if compact {
			queueLabel = "Q:"
		}
		depthStyle := styles.Text
		if m.depth >= m.capacity {
			depthStyle = styles.DangerText
		}
		parts = append(parts,
			bg.Render(queueLabel, styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d/%d", m.depth, m.capacity), depthStyle),
		)
	}

	// Ingestion rate
	if rate := m.rate.PerSecond(); rate > 0 {
		parts = append(parts, bg.Render(formatRate(rate), styles.FaintText))
	}

	// Frozen indicator
	if m.frozen {
		parts = append(parts, bg.Render("FROZEN", styles.WarningText.Bold(true)))
	}

	// Error indicator
	if m.snapshot.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText),
		)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderFooter renders the command hints bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	freezeLabel := "Freeze"
	if m.frozen {
		freezeLabel = "Resume"
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"Space", freezeLabel},
		{"j/k", "Scroll"},
		{"g/G", "Top/Bottom"},
		{"?", "Help"},
		{"q", "Quit"},
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, sep))
}
