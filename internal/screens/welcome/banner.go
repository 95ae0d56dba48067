package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/ui/theme"
)

// Block-letter title shown on the welcome screen.
const bannerFull = ` ██╗███╗   ███╗██████╗  █████╗ ██████╗  █████╗
 ██║████╗ ████║██╔══██╗██╔══██╗██╔══██╗██╔══██╗
 ██║██╔████╔██║██████╔╝███████║██████╔╝███████║
 ██║██║╚██╔╝██║██╔═══╝ ██╔══██║██╔══██╗██╔══██║
 ██║██║ ╚═╝ ██║██║     ██║  ██║██║  ██║██║  ██║
 ╚═╝╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "I · M · P · A · R · A"

// RenderBanner renders the title art, falling back to the compact form
// on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 54 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerFull)
}
