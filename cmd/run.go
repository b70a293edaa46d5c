package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ben-spoonradio/examdrill/internal/app"
	"github.com/ben-spoonradio/examdrill/internal/exam"
	"github.com/ben-spoonradio/examdrill/internal/question"
	"github.com/ben-spoonradio/examdrill/internal/ui/layout"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runApp checks the terminal, loads the question pool, opens the store,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if err := checkTerminal(); err != nil {
		return err
	}

	cfg := exam.Config{
		QuestionCount: viper.GetInt("questions"),
		Duration:      viper.GetDuration("duration"),
	}
	if cfg.QuestionCount <= 0 {
		return fmt.Errorf("questions must be positive, got %d", cfg.QuestionCount)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", cfg.Duration)
	}

	sources := question.DefaultSources(".")
	if path := viper.GetString("source"); path != "" {
		// An explicit source replaces the default chain; only the
		// built-in set remains as fallback.
		src, err := question.SourceForPath(path)
		if err != nil {
			return err
		}
		sources = []question.Source{src}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	pool, sourceName, err := question.NewStore(logger, sources...).Load()
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	opts := app.Config{
		Exam:   cfg,
		Pool:   pool,
		Source: sourceName,
	}

	if st, err := openStore(cmd); err != nil {
		fmt.Fprintln(os.Stderr, "Session history unavailable:", err)
		fmt.Fprintln(os.Stderr, "Results will not be recorded.")
	} else {
		defer st.Close()
		opts.Results = st.Results()
	}

	return app.Run(opts)
}

// checkTerminal rejects non-interactive stdout and terminals smaller than
// the minimum drawable frame, before the program takes over the screen.
func checkTerminal() error {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return fmt.Errorf("examdrill needs an interactive terminal")
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	if w < layout.MinWidth || h < layout.MinHeight {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, layout.MinWidth, layout.MinHeight)
	}
	return nil
}
