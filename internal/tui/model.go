// Package tui implements the swatch browser: a bubbletea view over a tint
// store. The model owns all store mutation, so the engine's single-goroutine
// contract holds; re-renders are driven by the store's own notifications
// rather than by the key handlers knowing what changed.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tintlab/tint/internal/palette"
	"github.com/tintlab/tint/tint"
)

// ThemeChangedMsg re-enters the update loop after a store broadcast, so
// every view renders against the fresh theme state.
type ThemeChangedMsg struct{}

var titler = cases.Title(language.English)

const sampleText = "The quick brown fox jumps over the lazy dog"

// transform cycle entries for the x key.
type namedTransform struct {
	name string
	fn   tint.ColorTransform
}

var transforms = []namedTransform{
	{name: "none", fn: nil},
	{name: "dim", fn: tint.Darken(0.35)},
	{name: "ansi256", fn: tint.Downsample(termenv.ANSI256)},
}

// Model is the swatch browser.
type Model struct {
	store *tint.Store

	themes       []string
	themeIdx     int
	defaultOn    bool
	transformIdx int

	keys    KeyMap
	help    help.Model
	changes chan struct{}
	width   int
}

// New creates a model over store. The store is expected to already hold
// the initial current and default themes; themeName seeds the cycle
// position.
func New(store *tint.Store, themeName string) *Model {
	m := &Model{
		store:     store,
		themes:    palette.Names(),
		defaultOn: store.Default() != nil,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		changes:   make(chan struct{}, 8),
	}
	for i, name := range m.themes {
		if name == themeName {
			m.themeIdx = i
		}
	}
	store.Subscribe(m.notifyChange)
	return m
}

// notifyChange is the store listener: it must not block, because broadcasts
// are synchronous inside the update loop that also drains the channel.
func (m *Model) notifyChange() {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return ThemeChangedMsg{}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ThemeChangedMsg:
		// Nothing to recompute: View re-resolves every token each frame.
		return m, m.waitForChange()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTheme):
			m.themeIdx = (m.themeIdx + 1) % len(m.themes)
			if theme, ok := palette.ByName(m.themes[m.themeIdx]); ok {
				m.store.SetCurrent(theme)
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleDefault):
			m.defaultOn = !m.defaultOn
			if m.defaultOn {
				m.store.SetDefault(palette.Dark())
			} else {
				m.store.ClearDefault()
			}
			return m, nil

		case key.Matches(msg, m.keys.CycleTransform):
			m.transformIdx = (m.transformIdx + 1) % len(transforms)
			if fn := transforms[m.transformIdx].fn; fn != nil {
				m.store.SetColorTransform(fn)
			} else {
				m.store.ClearColorTransform()
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

// ThemeName returns the name of the palette at the current cycle position.
func (m *Model) ThemeName() string { return m.themes[m.themeIdx] }

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.store.Style(palette.Header).Lipgloss().Render("swatch"))
	b.WriteString("\n\n")
	b.WriteString(renderTokens(m.store))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) statusLine() string {
	defaultState := "off"
	if m.defaultOn {
		defaultState = "on"
	}
	status := fmt.Sprintf("theme: %s  default: %s  transform: %s",
		titler.String(m.ThemeName()), defaultState, transforms[m.transformIdx].name)
	return m.store.Style(palette.Emphasis).Lipgloss().Render(status)
}

// renderTokens renders every declared token through the store. Shared with
// the non-TTY static output path.
func renderTokens(store *tint.Store) string {
	var b strings.Builder

	for _, ref := range palette.ColorTokens() {
		c := store.Color(ref)
		block := lipgloss.NewStyle().Foreground(c).Render("██████")
		fmt.Fprintf(&b, "%s  %s  %v\n", padToken(ref.ID()), block, c)
	}
	b.WriteString("\n")
	for _, ref := range palette.StyleTokens() {
		st := store.Style(ref)
		fmt.Fprintf(&b, "%s  %s\n", padToken(ref.ID()), st.Lipgloss().Render(sampleText))
	}
	return b.String()
}

const tokenColWidth = 24

func padToken(id string) string {
	id = runewidth.Truncate(id, tokenColWidth, "…")
	return id + strings.Repeat(" ", tokenColWidth-runewidth.StringWidth(id))
}

// RenderStatic renders a one-shot swatch listing for non-interactive
// output.
func RenderStatic(store *tint.Store, themeName string) string {
	var b strings.Builder
	b.WriteString(store.Style(palette.Header).Lipgloss().Render("swatch: " + titler.String(themeName)))
	b.WriteString("\n\n")
	b.WriteString(renderTokens(store))
	return b.String()
}
