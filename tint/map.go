package tint

import "github.com/charmbracelet/lipgloss"

// colorEntry is one override: either a concrete color or a link to
// another ref. Exactly one of the two fields is set.
type colorEntry struct {
	value lipgloss.TerminalColor
	ref   *ColorRef
}

type styleEntry struct {
	value *TextStyle
	ref   *StyleRef
}

// Map is a named, read-only set of overrides from ref identity to a
// concrete value or to another ref. Maps are built once and installed
// wholesale on a Store; changing a theme means installing a different Map,
// never mutating one in place.
//
// Entries are applied in order, so a later entry for the same ref replaces
// an earlier one. Link cycles are not checked here; the resolver detects
// them lazily.
type Map struct {
	name   string
	colors map[string]colorEntry
	styles map[string]styleEntry
}

// Entry is one override handed to NewMap.
type Entry func(*Map)

// NewMap builds a theme map from the given entries.
func NewMap(name string, entries ...Entry) *Map {
	m := &Map{
		name:   name,
		colors: make(map[string]colorEntry),
		styles: make(map[string]styleEntry),
	}
	for _, e := range entries {
		e(m)
	}
	return m
}

// SetColor overrides ref with a concrete color.
func SetColor(ref ColorRef, c lipgloss.TerminalColor) Entry {
	return func(m *Map) { m.colors[ref.id] = colorEntry{value: c} }
}

// LinkColor overrides ref with another ref, to be resolved in turn.
func LinkColor(ref, target ColorRef) Entry {
	return func(m *Map) { m.colors[ref.id] = colorEntry{ref: &target} }
}

// SetStyle overrides ref with a concrete text style.
func SetStyle(ref StyleRef, s TextStyle) Entry {
	return func(m *Map) { m.styles[ref.id] = styleEntry{value: &s} }
}

// LinkStyle overrides ref with another style ref.
func LinkStyle(ref, target StyleRef) Entry {
	return func(m *Map) { m.styles[ref.id] = styleEntry{ref: &target} }
}

// Name returns the map's display name.
func (m *Map) Name() string { return m.name }

// HasColor reports whether the map overrides the given color ref.
func (m *Map) HasColor(ref ColorRef) bool {
	_, ok := m.colors[ref.id]
	return ok
}

// HasStyle reports whether the map overrides the given style ref.
func (m *Map) HasStyle(ref StyleRef) bool {
	_, ok := m.styles[ref.id]
	return ok
}

// Len returns the number of overrides in the map.
func (m *Map) Len() int { return len(m.colors) + len(m.styles) }

func (m *Map) colorFor(id string) (colorEntry, bool) {
	e, ok := m.colors[id]
	return e, ok
}

func (m *Map) styleFor(id string) (styleEntry, bool) {
	e, ok := m.styles[id]
	return e, ok
}
