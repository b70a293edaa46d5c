package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ben-spoonradio/examdrill/internal/ui/layout"
)

// Screen is the contract every application screen implements. The app
// model owns the frame; screens render only their content area.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content, excluding header and footer.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that want their
// own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HeaderStatusProvider is an optional interface for screens that put
// live status in the header's right corner, like the session countdown.
type HeaderStatusProvider interface {
	HeaderStatus() string
}
