package components

import (
	"strings"
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Minute, "5:00"},
		{4*time.Minute + 59*time.Second, "4:59"},
		{61 * time.Second, "1:01"},
		{9 * time.Second, "0:09"},
		{0, "0:00"},
		{-3 * time.Second, "0:00"},
		// Sub-second remainders truncate down, so 4:59.7 shows 4:59.
		{4*time.Minute + 59*time.Second + 700*time.Millisecond, "4:59"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestChecklistMarks(t *testing.T) {
	c := NewChecklist([]ChecklistItem{
		{Title: "First drill", Done: true},
		{Title: "Second drill"},
	})
	c.Cursor = 1

	view := c.View()
	if !strings.Contains(view, "[✓]") {
		t.Errorf("expected a done mark in:\n%s", view)
	}
	if !strings.Contains(view, "[ ]") {
		t.Errorf("expected a pending mark in:\n%s", view)
	}
	if !strings.Contains(view, "▸") {
		t.Errorf("expected a cursor marker in:\n%s", view)
	}
	if strings.Index(view, "[✓]") > strings.Index(view, "[ ]") {
		t.Errorf("done mark should be on the first row:\n%s", view)
	}
}

func TestProgressBarCount(t *testing.T) {
	p := NewProgressBar(3, 5, 40)
	if got := p.Count(); got != "3 / 5" {
		t.Errorf("Count() = %q, want %q", got, "3 / 5")
	}
	if view := p.View(); !strings.Contains(view, "3 / 5") {
		t.Errorf("expected count in bar view:\n%s", view)
	}

	// Narrow widths drop the bar but keep the count.
	narrow := NewProgressBar(1, 5, 8)
	if view := narrow.View(); !strings.Contains(view, "1 / 5") {
		t.Errorf("expected count at narrow width:\n%s", view)
	}
}
