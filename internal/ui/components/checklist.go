package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/ben-spoonradio/examdrill/internal/ui/theme"
)

// ChecklistItem is one row of the session checklist.
type ChecklistItem struct {
	Title string
	Meta  string // dim tag after the title, e.g. difficulty and category
	Done  bool
}

// Checklist renders the question list with completion marks. It holds
// no input state; the session screen owns the cursor.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist over the given items.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		mark := theme.Pending.Render("[ ]")
		if item.Done {
			mark = theme.Done.Render("[✓]")
		}

		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == c.Cursor:
			titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case item.Done:
			titleStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		line := fmt.Sprintf("%s%s %s", prefix, mark, titleStyle.Render(item.Title))
		if item.Meta != "" {
			line += "  " + theme.Hint.Render(item.Meta)
		}
		s += line + "\n"
	}
	return s
}
