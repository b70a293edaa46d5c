package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ben-spoonradio/examdrill/internal/ui/components"
	"github.com/ben-spoonradio/examdrill/internal/ui/layout"
	"github.com/ben-spoonradio/examdrill/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	state := s.state

	var b strings.Builder

	// Info line: position on the left, source on the right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", state.Cursor+1, len(state.Questions)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("set: %s", s.source))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(s.renderChecklist())
	b.WriteString("\n")
	b.WriteString(s.renderDetail(width, height))

	return b.String()
}

// renderChecklist renders the question list with cursor and marks.
func (s *SessionScreen) renderChecklist() string {
	state := s.state

	items := make([]components.ChecklistItem, len(state.Questions))
	for i, q := range state.Questions {
		meta := string(q.Difficulty)
		if q.Category != "" {
			meta += " · " + q.Category
		}
		items[i] = components.ChecklistItem{
			Title: q.Title,
			Meta:  meta,
			Done:  state.Completed(q.ID),
		}
	}

	list := components.Checklist{Items: items, Cursor: state.Cursor}
	return list.View()
}

// renderDetail renders the card for the question under the cursor.
// Step lists are dropped on short terminals to keep the checklist
// visible.
func (s *SessionScreen) renderDetail(width, height int) string {
	q := s.state.Current()

	var lines []string

	if q.Description != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(q.Description))
	}

	if len(q.Steps) > 0 && !layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) {
		lines = append(lines, "")
		for i, step := range q.Steps {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d. %s", i+1, step)))
		}
	}

	if q.EstimatedTime != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("estimated: "+q.EstimatedTime))
	}

	if len(lines) == 0 {
		return ""
	}

	cardWidth := min(width-6, 70)
	if cardWidth < 20 {
		cardWidth = 20
	}

	card := theme.Card.Width(cardWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
