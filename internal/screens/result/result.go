package result

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/screen"
	"github.com/ben-spoonradio/examdrill/internal/ui/components"
	"github.com/ben-spoonradio/examdrill/internal/ui/layout"
	"github.com/ben-spoonradio/examdrill/internal/ui/theme"
)

const sparkleInterval = 400 * time.Millisecond

// sparkle frames cycle around the banner on a clean sweep
var sparkleFrames = []string{"★", "✦"}

type sparkleTickMsg time.Time

// ResultScreen shows how the session ended. It is the last screen;
// dismissing it exits the program.
type ResultScreen struct {
	summary   *exam.Summary
	tickCount int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for an ended session.
func New(summary *exam.Summary) *ResultScreen {
	return &ResultScreen{summary: summary}
}

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Exit"},
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	// Only the full sweep earns the sparkle animation.
	if r.summary.Outcome == exam.OutcomeAllComplete {
		return sparkleTick()
	}
	return nil
}

func sparkleTick() tea.Cmd {
	return tea.Tick(sparkleInterval, func(t time.Time) tea.Msg {
		return sparkleTickMsg(t)
	})
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case sparkleTickMsg:
		r.tickCount++
		return r, sparkleTick()

	case tea.KeyPressMsg:
		return r, tea.Quit
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	sum := r.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(r.banner()))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Completed %d of %d        Time on the clock: %s of %s",
		sum.Completed, sum.Total,
		components.FormatClock(sum.Elapsed), components.FormatClock(sum.Duration))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Questions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, q := range sum.Questions {
		mark := theme.Pending.Render("[ ]")
		when := theme.Pending.Render("  —  ")
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if q.Done {
			mark = theme.Done.Render("[✓]")
			when = lipgloss.NewStyle().Foreground(theme.Secondary).
				Render("at " + components.FormatClock(q.MarkedAfter))
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		line := fmt.Sprintf("%s %s  %s", mark, style.Render(q.Title), when)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("press enter to exit")))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// banner returns the outcome headline, with cycling sparkles when every
// question was completed in time.
func (r *ResultScreen) banner() string {
	switch r.summary.Outcome {
	case exam.OutcomeAllComplete:
		frame := sparkleFrames[r.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)
		headline := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("All drills complete!")
		return s1 + "  " + headline + "  " + s2
	case exam.OutcomeTimedOut:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("Time's up!")
	default:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render("Session ended")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
