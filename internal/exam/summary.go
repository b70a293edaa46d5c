package exam

import (
	"time"

	"github.com/ben-spoonradio/examdrill/internal/question"
)

// Summary holds what the result screen shows and what the history
// table records.
type Summary struct {
	SessionID string
	Source    string // question source the set came from
	StartedAt time.Time
	Duration  time.Duration // configured time limit
	Elapsed   time.Duration // start to terminal event, capped at Duration
	Outcome   Outcome
	Completed int
	Total     int
	Questions []QuestionResult
}

// QuestionResult is one question's line on the result screen.
type QuestionResult struct {
	ID         int
	Title      string
	Difficulty question.Difficulty
	Category   string
	Done       bool
	// MarkedAfter is how far into the session the mark landed. Zero
	// when the question was never marked.
	MarkedAfter time.Duration
}

// BuildSummary creates a Summary from an ended session. endedAt is when
// the terminal event landed; for timeouts it may trail the deadline by
// up to one tick, so elapsed is capped at the configured duration.
func BuildSummary(state *State, source string, endedAt time.Time) *Summary {
	duration := state.Deadline.Sub(state.StartedAt)
	elapsed := endedAt.Sub(state.StartedAt)
	if elapsed > duration {
		elapsed = duration
	}
	if elapsed < 0 {
		elapsed = 0
	}

	results := make([]QuestionResult, 0, len(state.Questions))
	for _, q := range state.Questions {
		qr := QuestionResult{
			ID:         q.ID,
			Title:      q.Title,
			Difficulty: q.Difficulty,
			Category:   q.Category,
		}
		if markedAt, ok := state.CompletedAt[q.ID]; ok {
			qr.Done = true
			qr.MarkedAfter = markedAt.Sub(state.StartedAt)
		}
		results = append(results, qr)
	}

	return &Summary{
		SessionID: state.SessionID,
		Source:    source,
		StartedAt: state.StartedAt,
		Duration:  duration,
		Elapsed:   elapsed,
		Outcome:   state.Outcome,
		Completed: state.CompletedCount(),
		Total:     len(state.Questions),
		Questions: results,
	}
}
