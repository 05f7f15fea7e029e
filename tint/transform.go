package tint

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// mapTerminalColor applies f to every hex-or-ANSI color string carried by
// c. Color types outside lipgloss.Color and lipgloss.AdaptiveColor pass
// through untouched.
func mapTerminalColor(c lipgloss.TerminalColor, f func(string) string) lipgloss.TerminalColor {
	switch v := c.(type) {
	case lipgloss.Color:
		return lipgloss.Color(f(string(v)))
	case lipgloss.AdaptiveColor:
		return lipgloss.AdaptiveColor{Light: f(v.Light), Dark: f(v.Dark)}
	default:
		return c
	}
}

// Lighten returns a color transform that blends resolved colors toward
// white by amount (0 = unchanged, 1 = white). Only hex colors are
// adjusted; ANSI palette indices pass through.
func Lighten(amount float64) ColorTransform {
	return blendTransform(colorful.Color{R: 1, G: 1, B: 1}, amount)
}

// Darken returns a color transform that blends resolved colors toward
// black by amount.
func Darken(amount float64) ColorTransform {
	return blendTransform(colorful.Color{}, amount)
}

func blendTransform(target colorful.Color, amount float64) ColorTransform {
	return func(c lipgloss.TerminalColor) lipgloss.TerminalColor {
		return mapTerminalColor(c, func(s string) string {
			col, err := colorful.Hex(s)
			if err != nil {
				return s
			}
			return col.BlendLab(target, amount).Clamped().Hex()
		})
	}
}

// Downsample returns a color transform that degrades resolved colors to
// what the given terminal profile can display: truecolor hex values become
// ANSI-256 or ANSI-16 indices as needed, and the Ascii profile drops color
// entirely.
func Downsample(p termenv.Profile) ColorTransform {
	return func(c lipgloss.TerminalColor) lipgloss.TerminalColor {
		return mapTerminalColor(c, func(s string) string {
			if s == "" {
				return s
			}
			switch converted := p.Color(s).(type) {
			case termenv.ANSIColor:
				return strconv.Itoa(int(converted))
			case termenv.ANSI256Color:
				return strconv.Itoa(int(converted))
			case termenv.RGBColor:
				return string(converted)
			default:
				return ""
			}
		})
	}
}

// NoColor returns a color transform that maps every resolved color to the
// neutral terminal default.
func NoColor() ColorTransform {
	return func(lipgloss.TerminalColor) lipgloss.TerminalColor {
		return NeutralColor
	}
}

// Monochrome returns a style transform that drops foreground and
// background colors while keeping weight and decoration, for NO_COLOR
// output.
func Monochrome() StyleTransform {
	return func(s TextStyle) TextStyle {
		s.Foreground = nil
		s.Background = nil
		return s
	}
}
