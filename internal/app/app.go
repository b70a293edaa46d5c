package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/question"
	"github.com/ben-spoonradio/examdrill/internal/router"
	"github.com/ben-spoonradio/examdrill/internal/screen"
	"github.com/ben-spoonradio/examdrill/internal/screens/session"
	"github.com/ben-spoonradio/examdrill/internal/screens/title"
	"github.com/ben-spoonradio/examdrill/internal/store"
	"github.com/ben-spoonradio/examdrill/internal/ui/layout"
)

// Config carries everything the screen flow needs.
type Config struct {
	// Exam sets question count and time limit.
	Exam exam.Config

	// Pool is the full loaded question set; each session draws from it.
	Pool []question.Record

	// Source names where Pool came from, for display.
	Source string

	// Results records finished sessions. Nil disables history.
	Results store.ResultRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model starting at the title screen. The
// session is built the moment the learner begins, so the draw and the
// clock both happen then.
func newAppModel(cfg Config) AppModel {
	titleScreen := title.New(cfg.Exam, cfg.Source, func() screen.Screen {
		drawn := question.Select(cfg.Pool, cfg.Exam.QuestionCount, nil)
		state := exam.NewState(cfg.Exam, drawn, time.Now())
		return session.New(state, cfg.Source, cfg.Results)
	})
	return AppModel{
		router: router.New(titleScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if sp, ok := active.(screen.HeaderStatusProvider); ok {
		status = sp.HeaderStatus()
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(cfg Config) error {
	p := tea.NewProgram(newAppModel(cfg))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
