// Package palette declares the swatch demo's themeable tokens and its
// built-in palettes. Tokens are declared once, here; everything that
// renders resolves them through the store at draw time.
package palette

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tintlab/tint/tint"
)

// Color tokens. Fallbacks are the charm-ish defaults used when no palette
// is installed.
var (
	Primary = tint.NewColorRef("palette.primary", lipgloss.Color("#7571f9"))
	Success = tint.NewColorRef("palette.success", lipgloss.Color("#02bf87"))
	Warning = tint.NewColorRef("palette.warning", lipgloss.Color("#ffaa00"))
	Error   = tint.NewColorRef("palette.error", lipgloss.Color("#ed567a"))

	Text   = tint.NewColorRef("palette.text", lipgloss.Color("252"))
	Muted  = tint.NewColorRef("palette.muted", lipgloss.Color("243"))
	Subtle = tint.NewColorRef("palette.subtle", lipgloss.Color("238"))

	// Border intentionally has no value of its own: it follows Subtle
	// unless a palette overrides it.
	Border = tint.NewColorAlias("palette.border", Subtle)
)

// Style tokens.
var (
	Header = tint.NewStyleRef("palette.header", &tint.TextStyle{Bold: true})

	StatusOK   = tint.NewStyleRef("palette.status_ok", nil)
	StatusWarn = tint.NewStyleRef("palette.status_warn", nil)
	StatusErr  = tint.NewStyleRef("palette.status_err", nil)

	// Emphasis chains to Header so palettes that restyle headers restyle
	// emphasized text for free.
	Emphasis = tint.NewStyleAlias("palette.emphasis", Header)
)

// ColorTokens returns every color token in display order.
func ColorTokens() []tint.ColorRef {
	return []tint.ColorRef{Primary, Success, Warning, Error, Text, Muted, Subtle, Border}
}

// StyleTokens returns every style token in display order.
func StyleTokens() []tint.StyleRef {
	return []tint.StyleRef{Header, StatusOK, StatusWarn, StatusErr, Emphasis}
}
