package palette

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tintlab/tint/tint"
)

// Dark is the default palette: deep background, bright accents.
func Dark() *tint.Map {
	return tint.NewMap("dark",
		tint.SetColor(Primary, lipgloss.Color("#7aa2f7")),
		tint.SetColor(Success, lipgloss.Color("#9ece6a")),
		tint.SetColor(Warning, lipgloss.Color("#e0af68")),
		tint.SetColor(Error, lipgloss.Color("#f7768e")),
		tint.SetColor(Text, lipgloss.Color("#c0caf5")),
		tint.SetColor(Muted, lipgloss.Color("#565f89")),
		tint.SetColor(Subtle, lipgloss.Color("#292e42")),

		tint.SetStyle(Header, tint.TextStyle{Foreground: lipgloss.Color("#7aa2f7"), Bold: true}),
		tint.SetStyle(StatusOK, tint.TextStyle{Foreground: lipgloss.Color("#9ece6a")}),
		tint.SetStyle(StatusWarn, tint.TextStyle{Foreground: lipgloss.Color("#e0af68")}),
		tint.SetStyle(StatusErr, tint.TextStyle{Foreground: lipgloss.Color("#f7768e"), Bold: true}),
	)
}

// Light is a light-background palette. Border gets its own value here
// instead of following Subtle.
func Light() *tint.Map {
	return tint.NewMap("light",
		tint.SetColor(Primary, lipgloss.Color("#5a56e0")),
		tint.SetColor(Success, lipgloss.Color("#02ba84")),
		tint.SetColor(Warning, lipgloss.Color("#df8e1d")),
		tint.SetColor(Error, lipgloss.Color("#ff4672")),
		tint.SetColor(Text, lipgloss.Color("235")),
		tint.SetColor(Muted, lipgloss.Color("243")),
		tint.SetColor(Subtle, lipgloss.Color("#9ca0b0")),
		tint.SetColor(Border, lipgloss.Color("#7c7f93")),

		tint.SetStyle(Header, tint.TextStyle{Foreground: lipgloss.Color("#5a56e0"), Bold: true}),
		tint.SetStyle(StatusOK, tint.TextStyle{Foreground: lipgloss.Color("#02ba84")}),
		tint.SetStyle(StatusWarn, tint.TextStyle{Foreground: lipgloss.Color("#df8e1d")}),
		tint.SetStyle(StatusErr, tint.TextStyle{Foreground: lipgloss.Color("#ff4672"), Bold: true}),
	)
}

// Solarized is the classic solarized-dark palette. Warning is linked to
// Error's token rather than given its own value, matching solarized's
// shared orange family.
func Solarized() *tint.Map {
	return tint.NewMap("solarized",
		tint.SetColor(Primary, lipgloss.Color("#268bd2")),
		tint.SetColor(Success, lipgloss.Color("#859900")),
		tint.SetColor(Error, lipgloss.Color("#cb4b16")),
		tint.LinkColor(Warning, Error),
		tint.SetColor(Text, lipgloss.Color("#839496")),
		tint.SetColor(Muted, lipgloss.Color("#586e75")),
		tint.SetColor(Subtle, lipgloss.Color("#073642")),

		tint.SetStyle(Header, tint.TextStyle{Foreground: lipgloss.Color("#268bd2"), Bold: true}),
		tint.SetStyle(StatusOK, tint.TextStyle{Foreground: lipgloss.Color("#859900")}),
		tint.LinkStyle(StatusWarn, StatusErr),
		tint.SetStyle(StatusErr, tint.TextStyle{Foreground: lipgloss.Color("#cb4b16"), Bold: true}),
	)
}

// Names lists the built-in palettes in cycle order.
func Names() []string {
	return []string{"dark", "light", "solarized"}
}

// ByName returns the named built-in palette.
func ByName(name string) (*tint.Map, bool) {
	switch name {
	case "dark":
		return Dark(), true
	case "light":
		return Light(), true
	case "solarized":
		return Solarized(), true
	default:
		return nil, false
	}
}
