package session

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/router"
	"github.com/ben-spoonradio/examdrill/internal/screen"
	"github.com/ben-spoonradio/examdrill/internal/screens/result"
	"github.com/ben-spoonradio/examdrill/internal/store"
	"github.com/ben-spoonradio/examdrill/internal/ui/components"
	"github.com/ben-spoonradio/examdrill/internal/ui/layout"
)

// tickInterval is how often the countdown redraws. The deadline check
// runs on the same cadence, so a timeout is detected within 250ms.
const tickInterval = 250 * time.Millisecond

// SessionScreen runs the active drill session: checklist, cursor, and
// countdown. When the session reaches a terminal state it records the
// result and replaces itself with the result screen.
type SessionScreen struct {
	state   *exam.State
	source  string
	results store.ResultRepo // nil when history is unavailable
	keys    keyMap
	clock   func() time.Time
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.HeaderStatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen over an already-started state. source
// names where the question set came from; results may be nil.
func New(state *exam.State, source string, results store.ResultRepo) *SessionScreen {
	return &SessionScreen{
		state:   state,
		source:  source,
		results: results,
		keys:    defaultKeyMap(),
		clock:   time.Now,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *SessionScreen) Title() string {
	return "Session"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Toggle complete"},
		{Key: "Q", Description: "End session"},
	}
}

// HeaderStatus puts the countdown and completion count in the header.
func (s *SessionScreen) HeaderStatus() string {
	countdown := components.Countdown{Remaining: s.state.Remaining(s.clock())}
	progress := components.NewProgressBar(s.state.CompletedCount(), len(s.state.Questions), 0)
	return countdown.View() + "   " + progress.Count()
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		s.state.Tick(s.clock())
		if s.state.Outcome.Terminal() {
			return s.finish()
		}
		return s, tickCmd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.state.Outcome.Terminal() {
		// A terminal tick is already on its way to the result screen.
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Up):
		s.state.MoveCursor(-1)
	case key.Matches(msg, s.keys.Down):
		s.state.MoveCursor(1)
	case key.Matches(msg, s.keys.Toggle):
		s.state.ToggleCurrent(s.clock())
		if s.state.Outcome.Terminal() {
			return s.finish()
		}
	case key.Matches(msg, s.keys.Quit):
		s.state.Quit()
		return s.finish()
	}

	return s, nil
}

// finish records the result and hands off to the result screen. The
// history write is best effort; a broken database never blocks the
// result display.
func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	summary := exam.BuildSummary(s.state, s.source, s.clock())

	if s.results != nil {
		_ = s.results.Append(context.Background(), summary)
	}

	resultScreen := result.New(summary)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultScreen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
