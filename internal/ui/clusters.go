package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ynqa/logu/internal/drain"
)

// renderColumnHeader renders the column titles above the cluster rows.
func (m Model) renderColumnHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	countCol := fmt.Sprintf("%*s", m.countColWidth(), "COUNT")
	header := bg.Render(countCol, styles.MutedText.Bold(true)) + bg.Spaces(2) +
		bg.Render("TEMPLATE", styles.MutedText.Bold(true))

	return styles.SurfaceAlt.Width(m.width).Render(header)
}

// renderRows renders all visible cluster rows for the viewport.
func (m Model) renderRows() string {
	if len(m.rows) == 0 {
		return m.renderEmpty()
	}

	countWidth := m.countColWidth()
	lines := make([]string, 0, len(m.rows))
	for _, c := range m.rows {
		lines = append(lines, m.formatClusterRow(c, countWidth))
	}

	return strings.Join(lines, "\n")
}

// renderEmpty renders the placeholder shown before any cluster exists.
func (m Model) renderEmpty() string {
	styles := m.theme.Styles()

	msg := "Waiting for log lines..."
	if m.snapshot.InputDone {
		msg = "No log lines received"
	}

	return lipgloss.Place(
		m.width,
		m.viewport.Height,
		lipgloss.Center,
		lipgloss.Center,
		styles.MutedText.Render(msg),
	)
}

// formatClusterRow formats one cluster as "COUNT  TEMPLATE" with wildcard
// tokens highlighted.
func (m Model) formatClusterRow(c drain.Cluster, countWidth int) string {
	styles := m.theme.Styles()

	count := fmt.Sprintf("%*d", countWidth, c.Size)

	templateWidth := max(m.width-countWidth-2, 10)
	tokens := fitTokens(c.Template, templateWidth)
	rendered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == m.paramStr {
			rendered = append(rendered, styles.AccentText.Render(tok))
		} else {
			rendered = append(rendered, styles.Text.Render(tok))
		}
	}

	return styles.SuccessText.Render(count) + "  " + strings.Join(rendered, " ")
}

// countColWidth returns the width of the count column. Rows are sorted by
// count descending, so the first row carries the widest value.
func (m Model) countColWidth() int {
	w := len("COUNT")
	if len(m.rows) > 0 {
		if n := len(fmt.Sprintf("%d", m.rows[0].Size)); n > w {
			w = n
		}
	}
	return w
}

// fitTokens returns the leading tokens whose space-joined form fits within
// width, appending an ellipsis marker when the tail is dropped.
func fitTokens(tokens []string, width int) []string {
	if width <= 0 {
		return nil
	}

	used := 0
	for i, tok := range tokens {
		need := len(tok)
		if i > 0 {
			need++ // joining space
		}
		if used+need > width {
			out := append([]string{}, tokens[:i]...)
			// Trim further until the marker itself fits.
			for len(out) > 0 && used+2 > width {
				last := out[len(out)-1]
				out = out[:len(out)-1]
				used -= len(last)
				if len(out) > 0 {
					used--
				}
			}
			return append(out, "…")
		}
		used += need
	}

	return tokens
}
