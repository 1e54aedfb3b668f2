// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ly1hex/elua/internal/core/domain"
)

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Blue   = lipgloss.Color("#2563EB")
	Violet = lipgloss.Color("#8B5CF6")
	Teal   = lipgloss.Color("#0D9488")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// KindColor returns the color used for a target kind's summary label.
func KindColor(k domain.Kind) lipgloss.Color {
	switch k {
	case domain.KindCompile:
		return Blue
	case domain.KindAssemble:
		return Teal
	case domain.KindDepend:
		return Slate
	case domain.KindLink:
		return Violet
	case domain.KindPhony:
		return Yellow
	default:
		return Green
	}
}
