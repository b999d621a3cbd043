package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███████╗ ██████╗ ██╗███████╗████████╗██████╗  █████╗ ███╗   ███╗███████╗
 ██╔══██╗██╔════╝██╔════╝ ██║██╔════╝╚══██╔══╝██╔══██╗██╔══██╗████╗ ████║██╔════╝
 ██████╔╝█████╗  ██║  ███╗██║███████╗   ██║   ██████╔╝███████║██╔████╔██║█████╗
 ██╔══██╗██╔══╝  ██║   ██║██║╚════██║   ██║   ██╔══██╗██╔══██║██║╚██╔╝██║██╔══╝
 ██║  ██║███████╗╚██████╔╝██║███████║   ██║   ██║  ██║██║  ██║██║ ╚═╝ ██║███████╗
 ╚═╝  ╚═╝╚══════╝ ╚═════╝ ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝`

const bannerCompact = "R E G I S T R A M E"

// bannerMinWidth is the narrowest terminal that fits the block-letter art.
const bannerMinWidth = 84

// RenderBanner returns the REGISTRAME banner in the primary color, or a
// spaced-letter fallback on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
