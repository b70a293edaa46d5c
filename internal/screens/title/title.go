package title

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/router"
	"github.com/ben-spoonradio/examdrill/internal/screen"
	"github.com/ben-spoonradio/examdrill/internal/ui/layout"
	"github.com/ben-spoonradio/examdrill/internal/ui/theme"
)

const tickInterval = 500 * time.Millisecond

type tickMsg time.Time

// TitleScreen explains the rules and waits for the first key press,
// which starts the clock.
type TitleScreen struct {
	sessionFactory func() screen.Screen
	cfg            exam.Config
	source         string
	tickCount      int
	transitioned   bool
}

var _ screen.Screen = (*TitleScreen)(nil)
var _ screen.KeyHintProvider = (*TitleScreen)(nil)

// New creates a TitleScreen. sessionFactory builds the session screen
// at the moment the learner begins, so the timer starts then, not at
// program launch.
func New(cfg exam.Config, source string, sessionFactory func() screen.Screen) *TitleScreen {
	return &TitleScreen{
		sessionFactory: sessionFactory,
		cfg:            cfg,
		source:         source,
	}
}

func (t *TitleScreen) Title() string {
	return ""
}

func (t *TitleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "any key", Description: "Begin"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (t *TitleScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(ts time.Time) tea.Msg {
		return tickMsg(ts)
	})
}

func (t *TitleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		t.tickCount++
		return t, tea.Tick(tickInterval, func(ts time.Time) tea.Msg {
			return tickMsg(ts)
		})

	case tea.KeyPressMsg:
		return t, t.begin()
	}

	return t, nil
}

// begin hands off to the session screen exactly once.
func (t *TitleScreen) begin() tea.Cmd {
	if t.transitioned {
		return nil
	}
	t.transitioned = true
	sessionScreen := t.sessionFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sessionScreen}
	}
}

func (t *TitleScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	mins := int(t.cfg.Duration.Minutes())
	subtitle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d drills. %d minutes. Go.", t.cfg.QuestionCount, mins))
	sections = append(sections, subtitle)
	sections = append(sections, "")

	rules := []string{
		"↑/↓  move between questions",
		"Enter  mark the question complete (or unmark it)",
		"Q  end the session early",
	}
	ruleStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	for _, r := range rules {
		sections = append(sections, ruleStyle.Render(r))
	}
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question set: %s", t.source)))
	sections = append(sections, "")

	// Pulse the hint on alternate ticks.
	hintStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if t.tickCount%2 == 1 {
		hintStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	sections = append(sections, hintStyle.Render("press any key to begin"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
