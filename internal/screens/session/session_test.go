package session

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/question"
	"github.com/ben-spoonradio/examdrill/internal/router"
	"github.com/ben-spoonradio/examdrill/internal/screen"
	"github.com/ben-spoonradio/examdrill/internal/screens/result"
)

var testStart = time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

// fakeClock lets tests move session time by hand.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// recordingRepo implements store.ResultRepo and captures appends.
type recordingRepo struct {
	appended []*exam.Summary
}

func (r *recordingRepo) Append(_ context.Context, sum *exam.Summary) error {
	r.appended = append(r.appended, sum)
	return nil
}
func (r *recordingRepo) Recent(context.Context, int) ([]exam.Summary, error) { return nil, nil }
func (r *recordingRepo) Clear(context.Context) error                         { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen(n int) (*SessionScreen, *fakeClock, *recordingRepo) {
	state := exam.NewState(exam.DefaultConfig(), question.BuiltinSet()[:n], testStart)
	clock := &fakeClock{now: testStart}
	repo := &recordingRepo{}
	s := New(state, "builtin", repo)
	s.clock = clock.Now
	return s, clock, repo
}

// expectResultHandoff runs cmd and asserts it replaces the session with
// the result screen.
func expectResultHandoff(t *testing.T, cmd tea.Cmd) *result.ResultScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a handoff command")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	rs, ok := replace.Screen.(*result.ResultScreen)
	if !ok {
		t.Fatalf("expected a result screen, got %T", replace.Screen)
	}
	return rs
}

func TestSessionScreen_Title(t *testing.T) {
	s, _, _ := testSessionScreen(5)
	if s.Title() != "Session" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session")
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestSessionScreen_CursorKeys(t *testing.T) {
	s, _, _ := testSessionScreen(3)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	ss := scr.(*SessionScreen)
	if ss.state.Cursor != 2 {
		t.Errorf("cursor = %d after two downs, want 2", ss.state.Cursor)
	}

	// Bottom edge holds.
	scr, _ = ss.Update(specialKey(tea.KeyDown))
	ss = scr.(*SessionScreen)
	if ss.state.Cursor != 2 {
		t.Errorf("cursor = %d past bottom, want 2", ss.state.Cursor)
	}

	scr, _ = ss.Update(specialKey(tea.KeyUp))
	ss = scr.(*SessionScreen)
	if ss.state.Cursor != 1 {
		t.Errorf("cursor = %d after up, want 1", ss.state.Cursor)
	}

	// Vim keys work too.
	scr, _ = ss.Update(keyPress('k'))
	ss = scr.(*SessionScreen)
	if ss.state.Cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", ss.state.Cursor)
	}
}

func TestSessionScreen_ToggleShowsMark(t *testing.T) {
	s, clock, _ := testSessionScreen(3)
	clock.now = testStart.Add(30 * time.Second)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.state.CompletedCount() != 1 {
		t.Fatalf("completed = %d after enter, want 1", ss.state.CompletedCount())
	}
	if view := ss.View(80, 18); !strings.Contains(view, "[✓]") {
		t.Error("expected a done mark in the view after toggling")
	}

	// Toggling again unmarks.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)
	if ss.state.CompletedCount() != 0 {
		t.Errorf("completed = %d after second enter, want 0", ss.state.CompletedCount())
	}
}

func TestSessionScreen_IgnoresUnboundKeys(t *testing.T) {
	s, _, _ := testSessionScreen(3)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('x'))
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)

	if ss.state.Cursor != 0 || ss.state.CompletedCount() != 0 || ss.state.Outcome.Terminal() {
		t.Error("unbound keys must not change the session")
	}
}

func TestSessionScreen_QuitRecordsAndHandsOff(t *testing.T) {
	s, clock, repo := testSessionScreen(3)
	clock.now = testStart.Add(time.Minute)

	_, cmd := s.Update(keyPress('q'))
	expectResultHandoff(t, cmd)

	if s.state.Outcome != exam.OutcomeQuit {
		t.Errorf("outcome = %v, want quit", s.state.Outcome)
	}
	if len(repo.appended) != 1 {
		t.Fatalf("appended %d summaries, want 1", len(repo.appended))
	}
	sum := repo.appended[0]
	if sum.Outcome != exam.OutcomeQuit || sum.Elapsed != time.Minute {
		t.Errorf("stored outcome/elapsed = %v/%v, want quit/1m", sum.Outcome, sum.Elapsed)
	}
}

func TestSessionScreen_TimeoutOnTick(t *testing.T) {
	s, clock, repo := testSessionScreen(3)

	// Mid-session tick keeps the loop alive.
	clock.now = testStart.Add(time.Minute)
	_, cmd := s.Update(tickMsg(clock.now))
	if cmd == nil {
		t.Fatal("expected a follow-up tick")
	}
	if s.state.Outcome.Terminal() {
		t.Fatal("session must still be running mid-way")
	}

	// Past the deadline the tick ends the session.
	clock.now = testStart.Add(exam.DefaultDuration + 100*time.Millisecond)
	_, cmd = s.Update(tickMsg(clock.now))
	expectResultHandoff(t, cmd)

	if s.state.Outcome != exam.OutcomeTimedOut {
		t.Errorf("outcome = %v, want timed-out", s.state.Outcome)
	}
	if len(repo.appended) != 1 || repo.appended[0].Outcome != exam.OutcomeTimedOut {
		t.Fatalf("expected one timed-out summary appended")
	}
	// Elapsed is capped at the configured duration.
	if repo.appended[0].Elapsed != exam.DefaultDuration {
		t.Errorf("elapsed = %v, want %v", repo.appended[0].Elapsed, exam.DefaultDuration)
	}
}

func TestSessionScreen_CompletingEverythingEndsTheSession(t *testing.T) {
	s, clock, repo := testSessionScreen(2)

	var scr screen.Screen = s
	clock.now = testStart.Add(20 * time.Second)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyDown))

	clock.now = testStart.Add(45 * time.Second)
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	expectResultHandoff(t, cmd)

	if s.state.Outcome != exam.OutcomeAllComplete {
		t.Errorf("outcome = %v, want all-complete", s.state.Outcome)
	}
	if len(repo.appended) != 1 {
		t.Fatalf("appended %d summaries, want 1", len(repo.appended))
	}
	sum := repo.appended[0]
	if sum.Completed != 2 || sum.Total != 2 {
		t.Errorf("stored completed/total = %d/%d, want 2/2", sum.Completed, sum.Total)
	}
	if sum.Questions[1].MarkedAfter != 45*time.Second {
		t.Errorf("second mark at %v, want 45s", sum.Questions[1].MarkedAfter)
	}
}

func TestSessionScreen_NilRepoStillHandsOff(t *testing.T) {
	state := exam.NewState(exam.DefaultConfig(), question.BuiltinSet()[:2], testStart)
	s := New(state, "builtin", nil)
	clock := &fakeClock{now: testStart}
	s.clock = clock.Now

	_, cmd := s.Update(keyPress('q'))
	expectResultHandoff(t, cmd)
}

func TestSessionScreen_HeaderStatus(t *testing.T) {
	s, clock, _ := testSessionScreen(5)

	status := s.HeaderStatus()
	if !strings.Contains(status, "5:00") {
		t.Errorf("header status %q missing full clock", status)
	}
	if !strings.Contains(status, "0 / 5") {
		t.Errorf("header status %q missing progress", status)
	}

	clock.now = testStart.Add(61 * time.Second)
	if status := s.HeaderStatus(); !strings.Contains(status, "3:59") {
		t.Errorf("header status %q, want 3:59 after 61s", status)
	}
}

func TestSessionScreen_ViewShowsQuestionDetail(t *testing.T) {
	s, _, _ := testSessionScreen(5)

	view := s.View(80, 40)
	if !strings.Contains(view, "Question 1 of 5") {
		t.Errorf("view missing position line:\n%s", view)
	}
	if !strings.Contains(view, "set: builtin") {
		t.Errorf("view missing source line:\n%s", view)
	}
	first := s.state.Questions[0]
	if !strings.Contains(view, first.Title) {
		t.Errorf("view missing current question title:\n%s", view)
	}
}
