package tint

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCombine_When_PatchSetsOneField_OthersPreserved(t *testing.T) {
	t.Parallel()

	base := TextStyle{Foreground: white, Bold: true}
	out := Combine(base, StylePatch{Underline: Bool(true)})

	assert.Equal(t, white, out.Foreground)
	assert.True(t, out.Bold)
	assert.True(t, out.Underline)
}

func TestCombine_When_EmptyPatch_ReturnsBaseUnchanged(t *testing.T) {
	t.Parallel()

	base := TextStyle{Foreground: red, Background: white, Italic: true}
	assert.Equal(t, base, Combine(base, StylePatch{}))
}

func TestCombine_When_PatchClearsFlag_OverridesBase(t *testing.T) {
	t.Parallel()

	base := TextStyle{Bold: true, Faint: true}
	out := Combine(base, StylePatch{Bold: Bool(false)})

	assert.False(t, out.Bold)
	assert.True(t, out.Faint)
}

func TestCombine_When_AllFieldsPatched_MatchesPatch(t *testing.T) {
	t.Parallel()

	base := TextStyle{Foreground: white}
	out := Combine(base, StylePatch{
		Foreground:    red,
		Background:    green,
		Bold:          Bool(true),
		Faint:         Bool(true),
		Italic:        Bool(true),
		Underline:     Bool(true),
		Strikethrough: Bool(true),
	})

	assert.Equal(t, TextStyle{
		Foreground:    red,
		Background:    green,
		Bold:          true,
		Faint:         true,
		Italic:        true,
		Underline:     true,
		Strikethrough: true,
	}, out)
}

func TestCombine_DoesNotMutateArguments(t *testing.T) {
	t.Parallel()

	base := TextStyle{Foreground: white}
	patch := StylePatch{Foreground: red}
	_ = Combine(base, patch)

	assert.Equal(t, lipgloss.TerminalColor(white), base.Foreground)
	assert.Equal(t, lipgloss.TerminalColor(red), patch.Foreground)
}

func TestTextStyle_Lipgloss_CarriesAllAttributes(t *testing.T) {
	t.Parallel()

	st := TextStyle{
		Foreground: red,
		Background: white,
		Bold:       true,
		Underline:  true,
	}.Lipgloss()

	assert.Equal(t, lipgloss.TerminalColor(red), st.GetForeground())
	assert.Equal(t, lipgloss.TerminalColor(white), st.GetBackground())
	assert.True(t, st.GetBold())
	assert.True(t, st.GetUnderline())
	assert.False(t, st.GetItalic())
}

func TestTextStyle_Lipgloss_WhenZeroValue_SetsNothing(t *testing.T) {
	t.Parallel()

	st := TextStyle{}.Lipgloss()
	assert.Equal(t, lipgloss.TerminalColor(lipgloss.NoColor{}), st.GetForeground())
	assert.False(t, st.GetBold())
}
