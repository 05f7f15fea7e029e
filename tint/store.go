package tint

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ColorTransform is applied to the final resolved color of every color
// ref, exactly once, after fallback-chain and indirection traversal.
type ColorTransform func(c lipgloss.TerminalColor) lipgloss.TerminalColor

// StyleTransform is the text-style counterpart of ColorTransform.
type StyleTransform func(s TextStyle) TextStyle

// Store holds the process's theming state: the current theme, the default
// theme, and at most one transform per value kind. Construct one per
// application (or per test) and pass it to whatever renders; there is no
// package-level singleton.
//
// Every setter and clear broadcasts exactly once, synchronously, before
// returning — even when the new value equals the old one. Consumers are
// expected to re-resolve cheaply rather than diff.
//
// A Store is not internally locked. All mutation and resolution must be
// confined to a single goroutine, typically the UI event loop.
type Store struct {
	Notifier

	current  *Map
	defaults *Map

	colorTransform ColorTransform
	styleTransform StyleTransform

	report func(error)
}

// NewStore creates an empty store. The diagnostics reporter defaults to a
// single line on stderr.
func NewStore() *Store {
	return &Store{}
}

// reportErr delivers a resolution failure to the configured reporter, or
// to stderr when none is set.
func (s *Store) reportErr(err error) {
	if s.report != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(os.Stderr, "tint: %v\n", err)
}

// SetCurrent installs m as the current (highest-precedence) theme.
func (s *Store) SetCurrent(m *Map) {
	s.current = m
	s.Broadcast()
}

// ClearCurrent removes the current theme.
func (s *Store) ClearCurrent() {
	s.current = nil
	s.Broadcast()
}

// Current returns the installed current theme, or nil.
func (s *Store) Current() *Map { return s.current }

// SetDefault installs m as the default theme, consulted when the current
// theme has no entry for a ref.
func (s *Store) SetDefault(m *Map) {
	s.defaults = m
	s.Broadcast()
}

// ClearDefault removes the default theme.
func (s *Store) ClearDefault() {
	s.defaults = nil
	s.Broadcast()
}

// Default returns the installed default theme, or nil.
func (s *Store) Default() *Map { return s.defaults }

// SetColorTransform replaces the active color transform.
func (s *Store) SetColorTransform(t ColorTransform) {
	s.colorTransform = t
	s.Broadcast()
}

// ClearColorTransform removes the active color transform.
func (s *Store) ClearColorTransform() {
	s.colorTransform = nil
	s.Broadcast()
}

// SetStyleTransform replaces the active text-style transform.
func (s *Store) SetStyleTransform(t StyleTransform) {
	s.styleTransform = t
	s.Broadcast()
}

// ClearStyleTransform removes the active text-style transform.
func (s *Store) ClearStyleTransform() {
	s.styleTransform = nil
	s.Broadcast()
}

// SetReporter replaces the diagnostics sink used by Color and Style when
// resolution fails. A nil fn restores the stderr default; resolution
// failures are never dropped silently.
func (s *Store) SetReporter(fn func(error)) {
	s.report = fn
}
