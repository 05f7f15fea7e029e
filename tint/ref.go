// Package tint implements a symbolic-reference theming engine.
//
// Application code declares colors and text styles once, as identity-bearing
// refs, and resolves them at render time against a swappable theme. Call
// sites never change when the theme does; they re-resolve when the Store
// broadcasts a change.
//
// Ref identity is the id string. Two refs with the same id are the same
// reference everywhere a Map lookup happens; ids are expected to be unique
// across the process.
package tint

import "github.com/charmbracelet/lipgloss"

// ColorRef is a named handle for a themeable color. It is immutable and
// carries an optional intrinsic fallback, used when no installed theme
// overrides it. The fallback may itself be another ColorRef.
type ColorRef struct {
	id          string
	fallback    lipgloss.TerminalColor
	fallbackRef *ColorRef
}

// NewColorRef creates a color ref with an optional concrete fallback.
// A nil fallback means the ref has no intrinsic default.
func NewColorRef(id string, fallback lipgloss.TerminalColor) ColorRef {
	return ColorRef{id: id, fallback: fallback}
}

// NewColorAlias creates a color ref whose fallback is another ref.
// Resolution follows the target when no theme overrides the alias.
func NewColorAlias(id string, target ColorRef) ColorRef {
	return ColorRef{id: id, fallbackRef: &target}
}

// ID returns the ref's identity string.
func (r ColorRef) ID() string { return r.id }

func (r ColorRef) String() string { return "color:" + r.id }

// StyleRef is a named handle for a themeable text style, with the same
// identity and fallback semantics as ColorRef.
type StyleRef struct {
	id          string
	fallback    *TextStyle
	fallbackRef *StyleRef
}

// NewStyleRef creates a style ref with an optional concrete fallback.
func NewStyleRef(id string, fallback *TextStyle) StyleRef {
	return StyleRef{id: id, fallback: fallback}
}

// NewStyleAlias creates a style ref whose fallback is another ref.
func NewStyleAlias(id string, target StyleRef) StyleRef {
	return StyleRef{id: id, fallbackRef: &target}
}

// ID returns the ref's identity string.
func (r StyleRef) ID() string { return r.id }

func (r StyleRef) String() string { return "style:" + r.id }
