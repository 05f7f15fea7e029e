package tint

import "github.com/charmbracelet/lipgloss"

// TextStyle is the themeable text-style value: colors plus decoration
// flags. It is a plain value type so it can be compared, stored in Maps,
// and merged structurally; Lipgloss converts it for rendering.
type TextStyle struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor

	Bold          bool
	Faint         bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// StylePatch is a partial TextStyle. Nil fields mean "leave the base
// value unchanged"; set fields override.
type StylePatch struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor

	Bold          *bool
	Faint         *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
}

// Bool is a convenience for building StylePatch flag fields.
func Bool(v bool) *bool { return &v }

// Combine merges patch onto base: every field present in patch replaces
// the corresponding field of base, absent fields pass through. It is a
// pure structural merge; neither argument is modified.
func Combine(base TextStyle, patch StylePatch) TextStyle {
	out := base
	if patch.Foreground != nil {
		out.Foreground = patch.Foreground
	}
	if patch.Background != nil {
		out.Background = patch.Background
	}
	if patch.Bold != nil {
		out.Bold = *patch.Bold
	}
	if patch.Faint != nil {
		out.Faint = *patch.Faint
	}
	if patch.Italic != nil {
		out.Italic = *patch.Italic
	}
	if patch.Underline != nil {
		out.Underline = *patch.Underline
	}
	if patch.Strikethrough != nil {
		out.Strikethrough = *patch.Strikethrough
	}
	return out
}

// Lipgloss converts the value into a renderable lipgloss.Style.
func (ts TextStyle) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if ts.Foreground != nil {
		st = st.Foreground(ts.Foreground)
	}
	if ts.Background != nil {
		st = st.Background(ts.Background)
	}
	if ts.Bold {
		st = st.Bold(true)
	}
	if ts.Faint {
		st = st.Faint(true)
	}
	if ts.Italic {
		st = st.Italic(true)
	}
	if ts.Underline {
		st = st.Underline(true)
	}
	if ts.Strikethrough {
		st = st.Strikethrough(true)
	}
	return st
}
