package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "examdrill.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSummary(id string, startedAt time.Time) *exam.Summary {
	return &exam.Summary{
		SessionID: id,
		Source:    "builtin",
		StartedAt: startedAt,
		Duration:  5 * time.Minute,
		Elapsed:   90 * time.Second,
		Outcome:   exam.OutcomeQuit,
		Completed: 1,
		Total:     2,
		Questions: []exam.QuestionResult{
			{ID: 1, Title: "Open launcher", Difficulty: question.DifficultyEasy, Category: "launcher", Done: true, MarkedAfter: 30 * time.Second},
			{ID: 2, Title: "Paste from history", Difficulty: question.DifficultyMedium, Category: "clipboard"},
		},
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestResultAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	startedAt := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	want := testSummary("session-1", startedAt)
	if err := repo.Append(ctx, want); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d summaries, want 1", len(got))
	}

	sum := got[0]
	if sum.SessionID != want.SessionID {
		t.Errorf("session id = %q, want %q", sum.SessionID, want.SessionID)
	}
	if sum.Source != want.Source {
		t.Errorf("source = %q, want %q", sum.Source, want.Source)
	}
	if sum.Outcome != exam.OutcomeQuit {
		t.Errorf("outcome = %v, want quit", sum.Outcome)
	}
	if !sum.StartedAt.Equal(want.StartedAt) {
		t.Errorf("started at = %v, want %v", sum.StartedAt, want.StartedAt)
	}
	if sum.Duration != want.Duration || sum.Elapsed != want.Elapsed {
		t.Errorf("duration/elapsed = %v/%v, want %v/%v", sum.Duration, sum.Elapsed, want.Duration, want.Elapsed)
	}
	if sum.Completed != 1 || sum.Total != 2 {
		t.Errorf("completed/total = %d/%d, want 1/2", sum.Completed, sum.Total)
	}

	if len(sum.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(sum.Questions))
	}
	q := sum.Questions[0]
	if q.ID != 1 || q.Title != "Open launcher" || q.Difficulty != question.DifficultyEasy || !q.Done {
		t.Errorf("first question round-trip mismatch: %+v", q)
	}
	if q.MarkedAfter != 30*time.Second {
		t.Errorf("marked after = %v, want 30s", q.MarkedAfter)
	}
	if sum.Questions[1].Done {
		t.Errorf("second question should be unmarked")
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"oldest", "middle", "newest"} {
		sum := testSummary(id, base.Add(time.Duration(i)*time.Hour))
		if err := repo.Append(ctx, sum); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	got, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}
	if got[0].SessionID != "newest" || got[1].SessionID != "middle" {
		t.Errorf("order = %q, %q; want newest, middle", got[0].SessionID, got[1].SessionID)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	startedAt := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	if err := repo.Append(ctx, testSummary("session-1", startedAt)); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d summaries after clear, want 0", len(got))
	}

	var leftover int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM result_questions").Scan(&leftover); err != nil {
		t.Fatalf("count result questions: %v", err)
	}
	if leftover != 0 {
		t.Errorf("got %d leftover question rows, want 0", leftover)
	}
}
