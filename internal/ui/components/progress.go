package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ben-spoonradio/examdrill/internal/ui/theme"
)

// ProgressBar displays completion as a count plus a horizontal bar.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a progress bar for done of total items.
func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// Count returns the "N / M" text without the bar, for tight spots like
// the header.
func (p ProgressBar) Count() string {
	return fmt.Sprintf("%d / %d", p.Done, p.Total)
}

// View renders the count followed by the bar.
func (p ProgressBar) View() string {
	count := lipgloss.NewStyle().Foreground(theme.Text).Render(p.Count())

	barWidth := p.Width - lipgloss.Width(count) - 2
	if barWidth < 4 {
		return count
	}

	var ratio float64
	if p.Total > 0 {
		ratio = float64(p.Done) / float64(p.Total)
	}
	filled := int(float64(barWidth) * ratio)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return count + "  " + bar
}
