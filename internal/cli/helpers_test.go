package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/thermo/internal/config"
	"github.com/stretchr/testify/require"
)

// useConfig writes content to a temp config file, points --config at it and
// turns colors off for the test.
func useConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	oldConfig, oldNoColor := configFlag, noColorFlag
	profile := lipgloss.ColorProfile()
	configFlag, noColorFlag = path, true
	t.Cleanup(func() {
		configFlag, noColorFlag = oldConfig, oldNoColor
		lipgloss.SetColorProfile(profile)
	})
	return path
}

func float(v float64) *float64 {
	return &v
}
