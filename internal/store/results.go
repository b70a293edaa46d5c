package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/question"
)

// ResultRepo records finished sessions and reads them back for the
// history command.
type ResultRepo interface {
	// Append stores one finished session.
	Append(ctx context.Context, sum *exam.Summary) error

	// Recent returns the most recent sessions, newest first.
	// limit <= 0 means no limit.
	Recent(ctx context.Context, limit int) ([]exam.Summary, error)

	// Clear deletes the whole history.
	Clear(ctx context.Context) error
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, sum *exam.Summary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO results (session_id, source, outcome, started_at_ms, duration_ms, elapsed_ms, completed, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.SessionID,
		sum.Source,
		sum.Outcome.String(),
		sum.StartedAt.UnixMilli(),
		sum.Duration.Milliseconds(),
		sum.Elapsed.Milliseconds(),
		sum.Completed,
		sum.Total,
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}

	for _, q := range sum.Questions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO result_questions (session_id, question_id, title, difficulty, category, done, marked_after_ms)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sum.SessionID,
			q.ID,
			q.Title,
			string(q.Difficulty),
			q.Category,
			q.Done,
			q.MarkedAfter.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("insert result question: %w", err)
		}
	}

	return tx.Commit()
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]exam.Summary, error) {
	query := `SELECT session_id, source, outcome, started_at_ms, duration_ms, elapsed_ms, completed, total
		 FROM results ORDER BY started_at_ms DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var sums []exam.Summary
	for rows.Next() {
		var (
			sum        exam.Summary
			outcome    string
			startedMs  int64
			durationMs int64
			elapsedMs  int64
		)
		if err := rows.Scan(&sum.SessionID, &sum.Source, &outcome, &startedMs, &durationMs, &elapsedMs, &sum.Completed, &sum.Total); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		sum.Outcome = exam.OutcomeFromString(outcome)
		sum.StartedAt = time.UnixMilli(startedMs).UTC()
		sum.Duration = time.Duration(durationMs) * time.Millisecond
		sum.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		sums = append(sums, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	for i := range sums {
		questions, err := r.questionsFor(ctx, sums[i].SessionID)
		if err != nil {
			return nil, err
		}
		sums[i].Questions = questions
	}
	return sums, nil
}

func (r *resultRepo) questionsFor(ctx context.Context, sessionID string) ([]exam.QuestionResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question_id, title, difficulty, category, done, marked_after_ms
		 FROM result_questions WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query result questions: %w", err)
	}
	defer rows.Close()

	var results []exam.QuestionResult
	for rows.Next() {
		var (
			qr            exam.QuestionResult
			difficulty    string
			markedAfterMs int64
		)
		if err := rows.Scan(&qr.ID, &qr.Title, &difficulty, &qr.Category, &qr.Done, &markedAfterMs); err != nil {
			return nil, fmt.Errorf("scan result question: %w", err)
		}
		qr.Difficulty = question.Difficulty(difficulty)
		qr.MarkedAfter = time.Duration(markedAfterMs) * time.Millisecond
		results = append(results, qr)
	}
	return results, rows.Err()
}

func (r *resultRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM result_questions"); err != nil {
		return fmt.Errorf("clear result questions: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM results"); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}
