package tint

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Neutral values substituted on the render path when resolution fails.
// NoColor renders as the terminal default; the zero TextStyle adds nothing.
var (
	NeutralColor = lipgloss.NoColor{}
	NeutralStyle = TextStyle{}
)

// CycleError reports a circular reference chain detected during one
// resolution call. Path holds the ids in traversal order; the last element
// repeats the id that closed the cycle.
type CycleError struct {
	Kind string // "color" or "style"
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular %s reference: %s", e.Kind, strings.Join(e.Path, " -> "))
}

// UnresolvedError reports a ref with no entry in the current theme, no
// entry in the default theme, and no intrinsic fallback.
type UnresolvedError struct {
	Kind string
	ID   string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q: no theme entry and no fallback", e.Kind, e.ID)
}

// ResolveColor computes the concrete color for ref against the store's
// present state. Precedence is fixed: current theme, then default theme,
// then the ref's intrinsic fallback, with indirection followed uniformly at
// every stage. The registered color transform, if any, is applied exactly
// once, to the final concrete value.
//
// The result is not cached; callers that cache per frame must discard on
// every broadcast.
func (s *Store) ResolveColor(ref ColorRef) (lipgloss.TerminalColor, error) {
	c, err := s.resolveColor(ref, make(map[string]struct{}), nil)
	if err != nil {
		return NeutralColor, err
	}
	if s.colorTransform != nil {
		c = s.colorTransform(c)
	}
	return c, nil
}

func (s *Store) resolveColor(ref ColorRef, visited map[string]struct{}, path []string) (lipgloss.TerminalColor, error) {
	if _, seen := visited[ref.id]; seen {
		return nil, &CycleError{Kind: "color", Path: append(path, ref.id)}
	}
	visited[ref.id] = struct{}{}
	path = append(path, ref.id)

	for _, m := range [2]*Map{s.current, s.defaults} {
		if m == nil {
			continue
		}
		if e, ok := m.colorFor(ref.id); ok {
			if e.ref != nil {
				return s.resolveColor(*e.ref, visited, path)
			}
			return e.value, nil
		}
	}

	if ref.fallbackRef != nil {
		return s.resolveColor(*ref.fallbackRef, visited, path)
	}
	if ref.fallback != nil {
		return ref.fallback, nil
	}
	return nil, &UnresolvedError{Kind: "color", ID: ref.id}
}

// Color is the render-path form of ResolveColor: it never fails. On error
// it reports to the store's diagnostics reporter and returns NeutralColor,
// so a broken theme degrades the output instead of crashing the frame.
func (s *Store) Color(ref ColorRef) lipgloss.TerminalColor {
	c, err := s.ResolveColor(ref)
	if err != nil {
		s.reportErr(err)
		return NeutralColor
	}
	return c
}

// ResolveStyle is the text-style counterpart of ResolveColor.
func (s *Store) ResolveStyle(ref StyleRef) (TextStyle, error) {
	st, err := s.resolveStyle(ref, make(map[string]struct{}), nil)
	if err != nil {
		return NeutralStyle, err
	}
	if s.styleTransform != nil {
		st = s.styleTransform(st)
	}
	return st, nil
}

func (s *Store) resolveStyle(ref StyleRef, visited map[string]struct{}, path []string) (TextStyle, error) {
	if _, seen := visited[ref.id]; seen {
		return NeutralStyle, &CycleError{Kind: "style", Path: append(path, ref.id)}
	}
	visited[ref.id] = struct{}{}
	path = append(path, ref.id)

	for _, m := range [2]*Map{s.current, s.defaults} {
		if m == nil {
			continue
		}
		if e, ok := m.styleFor(ref.id); ok {
			if e.ref != nil {
				return s.resolveStyle(*e.ref, visited, path)
			}
			return *e.value, nil
		}
	}

	if ref.fallbackRef != nil {
		return s.resolveStyle(*ref.fallbackRef, visited, path)
	}
	if ref.fallback != nil {
		return *ref.fallback, nil
	}
	return NeutralStyle, &UnresolvedError{Kind: "style", ID: ref.id}
}

// Style is the render-path form of ResolveStyle: it never fails. On error
// it reports and returns NeutralStyle.
func (s *Store) Style(ref StyleRef) TextStyle {
	st, err := s.ResolveStyle(ref)
	if err != nil {
		s.reportErr(err)
		return NeutralStyle
	}
	return st
}
