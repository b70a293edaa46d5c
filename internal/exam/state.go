package exam

import (
	"time"

	"github.com/google/uuid"

	"github.com/ben-spoonradio/examdrill/internal/question"
)

// Outcome is the disposition of a session. A session starts Running and
// ends in exactly one of the other three states; once there, the state
// no longer mutates.
type Outcome int

const (
	OutcomeRunning     Outcome = iota
	OutcomeAllComplete         // every question marked before the deadline
	OutcomeTimedOut            // deadline passed first
	OutcomeQuit                // learner quit early
)

// String returns the label used in logs, the result screen, and the
// history table.
func (o Outcome) String() string {
	switch o {
	case OutcomeAllComplete:
		return "all-complete"
	case OutcomeTimedOut:
		return "timed-out"
	case OutcomeQuit:
		return "quit"
	}
	return "running"
}

// Terminal reports whether the session has ended.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// OutcomeFromString parses a stored outcome label back to the Outcome
// type. Unknown labels map to OutcomeRunning.
func OutcomeFromString(s string) Outcome {
	switch s {
	case "all-complete":
		return OutcomeAllComplete
	case "timed-out":
		return OutcomeTimedOut
	case "quit":
		return OutcomeQuit
	}
	return OutcomeRunning
}

// State tracks one live session. All times flow in through method
// parameters so the clock stays out of the state itself.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Questions is the drawn set in presentation order, fixed for the
	// life of the session.
	Questions []question.Record

	// Cursor indexes the highlighted question.
	Cursor int

	// CompletedAt records when each question (keyed by record ID) was
	// marked done. Unmarking deletes the entry.
	CompletedAt map[int]time.Time

	// StartedAt is when the session began.
	StartedAt time.Time

	// Deadline is StartedAt plus the configured duration.
	Deadline time.Time

	// Outcome is OutcomeRunning until a terminal event.
	Outcome Outcome
}

// NewState starts a session over the already-drawn questions.
func NewState(cfg Config, questions []question.Record, now time.Time) *State {
	return &State{
		SessionID:   uuid.NewString(),
		Questions:   questions,
		CompletedAt: make(map[int]time.Time),
		StartedAt:   now,
		Deadline:    now.Add(cfg.Duration),
	}
}

// Current returns the record under the cursor.
func (s *State) Current() question.Record {
	return s.Questions[s.Cursor]
}

// MoveCursor shifts the highlight by delta, stopping at the ends of the
// list. Moving past either end is a no-op, not a wrap.
func (s *State) MoveCursor(delta int) {
	if s.Outcome.Terminal() {
		return
	}
	next := s.Cursor + delta
	if next < 0 {
		next = 0
	}
	if max := len(s.Questions) - 1; next > max {
		next = max
	}
	s.Cursor = next
}

// ToggleCurrent flips the completion mark on the question under the
// cursor. Marking the last open question ends the session with
// OutcomeAllComplete, so that final mark cannot be taken back.
func (s *State) ToggleCurrent(now time.Time) {
	if s.Outcome.Terminal() || len(s.Questions) == 0 {
		return
	}
	id := s.Current().ID
	if _, done := s.CompletedAt[id]; done {
		delete(s.CompletedAt, id)
		return
	}
	s.CompletedAt[id] = now
	if s.AllComplete() {
		s.Outcome = OutcomeAllComplete
	}
}

// Completed reports whether the question with the given ID is marked.
func (s *State) Completed(id int) bool {
	_, ok := s.CompletedAt[id]
	return ok
}

// CompletedCount returns how many questions are currently marked.
func (s *State) CompletedCount() int {
	return len(s.CompletedAt)
}

// AllComplete reports whether every question is marked.
func (s *State) AllComplete() bool {
	return len(s.Questions) > 0 && len(s.CompletedAt) == len(s.Questions)
}

// Remaining returns the time left on the clock, floored at zero. It is
// always recomputed from the deadline, never accumulated, so a slow or
// dropped tick cannot skew it.
func (s *State) Remaining(now time.Time) time.Duration {
	left := s.Deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Tick advances the clock check. Once now reaches the deadline the
// session ends with OutcomeTimedOut.
func (s *State) Tick(now time.Time) {
	if s.Outcome.Terminal() {
		return
	}
	if !now.Before(s.Deadline) {
		s.Outcome = OutcomeTimedOut
	}
}

// Quit ends the session early with OutcomeQuit.
func (s *State) Quit() {
	if s.Outcome.Terminal() {
		return
	}
	s.Outcome = OutcomeQuit
}
