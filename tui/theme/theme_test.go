package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestResolveThemeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "terminal"},
		{"Kanagawa", "kanagawa"},
		{"kanagawa_dark", "kanagawa"},
		{"PLAIN", "mono"},
		{"does-not-exist", "terminal"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveThemeName(tt.in))
		})
	}
}

func TestGetThemeNameFromEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("PARTUI_THEME", "Kanagawa")
	assert.Equal(t, "kanagawa", getThemeName())
}

func TestMonoThemeHasNoColors(t *testing.T) {
	th := NewThemeWithName("mono")
	assert.Equal(t, "mono", th.Name)
	assert.Equal(t, lipgloss.NoColor{}, th.Colors.Red)
	assert.True(t, th.Selected.GetReverse())
}

func TestRenderStatusKeepsText(t *testing.T) {
	for _, status := range []string{"success", "error", "warning", "info", "other"} {
		assert.Contains(t, RenderStatus(status, "partition table"), "partition table")
	}
}

func TestNoColorWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("PARTUI_THEME", "kanagawa")
	assert.Equal(t, "mono", getThemeName())
}
