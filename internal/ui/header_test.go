package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)
	DisableColors()

	tests := []struct {
		name      string
		info      HeaderInfo
		wantLines []string
	}{
		{
			name:      "defaults",
			info:      HeaderInfo{},
			wantLines: []string{"thermo", strings.Repeat("━", HeaderWidth)},
		},
		{
			name: "title version tagline",
			info: HeaderInfo{Title: "boiler", Version: "v1.0.0", Tagline: "pressure", Width: 10},
			wantLines: []string{
				"boiler v1.0.0",
				"pressure",
				strings.Repeat("━", 10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderHeader(tt.info)
			assert.Equal(t, strings.Join(tt.wantLines, "\n")+"\n", out)
		})
	}
}

