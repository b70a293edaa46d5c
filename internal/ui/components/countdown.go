package components

import (
	"fmt"
	"time"

	"github.com/ben-spoonradio/examdrill/internal/ui/theme"
)

// UrgentThreshold is when the countdown switches to the urgent style.
const UrgentThreshold = time.Minute

// FormatClock renders a duration as m:ss, the way a wall timer would.
// Negative durations clamp to 0:00.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Countdown displays the remaining session time.
type Countdown struct {
	Remaining time.Duration
}

// View renders the clock, switching to the urgent style in the final
// minute.
func (c Countdown) View() string {
	text := FormatClock(c.Remaining)
	if c.Remaining < UrgentThreshold {
		return theme.Urgent.Render(text)
	}
	return theme.Clock.Render(text)
}
