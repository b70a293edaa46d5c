package exam

import "time"

const (
	// DefaultQuestionCount is how many questions a session draws from
	// the loaded pool.
	DefaultQuestionCount = 5

	// DefaultDuration is the session time limit.
	DefaultDuration = 5 * time.Minute
)

// Config controls how a session is assembled.
type Config struct {
	// QuestionCount is the number of questions to draw. Draws are
	// capped at the pool size.
	QuestionCount int

	// Duration is the wall-clock time limit for the session.
	Duration time.Duration
}

// DefaultConfig returns the standard five questions in five minutes.
func DefaultConfig() Config {
	return Config{
		QuestionCount: DefaultQuestionCount,
		Duration:      DefaultDuration,
	}
}
