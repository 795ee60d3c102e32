package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSheetDefinesRendererStyles(t *testing.T) {
	for _, name := range []string{Changed, Ok, DryRun, Error, Code, Path, Muted} {
		assert.True(t, Has(name), "style %s", name)
	}
}

func TestParse(t *testing.T) {
	reg, err := Parse([]byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Title:
    bold: true
    foreground: accent
`))
	require.NoError(t, err)
	require.Contains(t, reg, "Title")
	assert.True(t, reg["Title"].GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, reg["Title"].GetForeground())
}

func TestParse_UnknownColor(t *testing.T) {
	_, err := Parse([]byte("styles:\n  Title:\n    foreground: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("styles: [unterminated"))
	assert.Error(t, err)
}

func TestGet_Undefined(t *testing.T) {
	assert.False(t, Has("Nope"))
	assert.Equal(t, "x", Get("Nope").Render("x"))
}
