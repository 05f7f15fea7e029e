package tint

import (
	"strconv"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLighten_When_FullAmount_ReachesWhite(t *testing.T) {
	t.Parallel()

	out := Lighten(1.0)(lipgloss.Color("#336699"))
	assert.Equal(t, lipgloss.Color("#ffffff"), out)
}

func TestDarken_When_FullAmount_ReachesBlack(t *testing.T) {
	t.Parallel()

	out := Darken(1.0)(lipgloss.Color("#336699"))
	assert.Equal(t, lipgloss.Color("#000000"), out)
}

func TestLighten_When_ANSIIndex_PassesThrough(t *testing.T) {
	t.Parallel()

	// Palette indices carry no RGB information to blend.
	out := Lighten(0.5)(lipgloss.Color("212"))
	assert.Equal(t, lipgloss.Color("212"), out)
}

func TestDarken_When_AdaptiveColor_AdjustsBothHalves(t *testing.T) {
	t.Parallel()

	in := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}
	out := Darken(1.0)(in)

	adaptive, ok := out.(lipgloss.AdaptiveColor)
	require.True(t, ok)
	assert.Equal(t, "#000000", adaptive.Light)
	assert.Equal(t, "#000000", adaptive.Dark)
}

func TestLighten_When_UnhandledColorType_PassesThrough(t *testing.T) {
	t.Parallel()

	out := Lighten(0.5)(lipgloss.NoColor{})
	assert.Equal(t, lipgloss.TerminalColor(lipgloss.NoColor{}), out)
}

func TestDownsample_When_ANSI256Profile_ConvertsHexToIndex(t *testing.T) {
	t.Parallel()

	out := Downsample(termenv.ANSI256)(lipgloss.Color("#ff0000"))
	c, ok := out.(lipgloss.Color)
	require.True(t, ok)

	idx, err := strconv.Atoi(string(c))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 256)
}

func TestDownsample_When_AsciiProfile_DropsColor(t *testing.T) {
	t.Parallel()

	out := Downsample(termenv.Ascii)(lipgloss.Color("#ff0000"))
	assert.Equal(t, lipgloss.Color(""), out)
}

func TestDownsample_When_TrueColorProfile_KeepsHex(t *testing.T) {
	t.Parallel()

	out := Downsample(termenv.TrueColor)(lipgloss.Color("#ff0000"))
	assert.Equal(t, lipgloss.Color("#ff0000"), out)
}

func TestNoColor_MapsEverythingToNeutral(t *testing.T) {
	t.Parallel()

	tr := NoColor()
	assert.Equal(t, lipgloss.TerminalColor(NeutralColor), tr(lipgloss.Color("#ff0000")))
	assert.Equal(t, lipgloss.TerminalColor(NeutralColor), tr(lipgloss.Color("212")))
}

func TestMonochrome_StripsColorsKeepsDecoration(t *testing.T) {
	t.Parallel()

	in := TextStyle{Foreground: red, Background: white, Bold: true, Underline: true}
	out := Monochrome()(in)

	assert.Nil(t, out.Foreground)
	assert.Nil(t, out.Background)
	assert.True(t, out.Bold)
	assert.True(t, out.Underline)
}
