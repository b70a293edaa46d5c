package title

import (
	"charm.land/lipgloss/v2"

	"github.com/ben-spoonradio/examdrill/internal/ui/theme"
)

const bannerArt = `
███████╗██╗  ██╗ █████╗ ███╗   ███╗██████╗ ██████╗ ██╗██╗     ██╗
██╔════╝╚██╗██╔╝██╔══██╗████╗ ████║██╔══██╗██╔══██╗██║██║     ██║
█████╗   ╚███╔╝ ███████║██╔████╔██║██║  ██║██████╔╝██║██║     ██║
██╔══╝   ██╔██╗ ██╔══██║██║╚██╔╝██║██║  ██║██╔══██╗██║██║     ██║
███████╗██╔╝ ██╗██║  ██║██║ ╚═╝ ██║██████╔╝██║  ██║██║███████╗███████╗
╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

const bannerCompact = "E X A M D R I L L"

// RenderBanner returns the EXAMDRILL banner styled in the primary
// color. Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
