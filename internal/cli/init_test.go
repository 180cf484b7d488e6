package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/thermo/internal/config"
	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/rileyhilliard/thermo/internal/gauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NonInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	var out bytes.Buffer
	require.NoError(t, Init(InitOptions{Path: path, NonInteractive: true, Out: &out}))

	assert.Contains(t, out.String(), "Created "+path)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInit_ExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("gauge:\n  width: 300\n"), 0644))

	t.Run("refuses without force", func(t *testing.T) {
		err := Init(InitOptions{Path: path, NonInteractive: true, Out: &bytes.Buffer{}})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))

		cfg, loadErr := config.Load(path)
		require.NoError(t, loadErr)
		assert.Equal(t, 300.0, cfg.Gauge.Width, "existing file untouched")
	})

	t.Run("overwrites with force", func(t *testing.T) {
		err := Init(InitOptions{Path: path, NonInteractive: true, Overwrite: true, Out: &bytes.Buffer{}})
		require.NoError(t, err)

		cfg, loadErr := config.Load(path)
		require.NoError(t, loadErr)
		assert.Equal(t, 100.0, cfg.Gauge.Width)
	})
}

func TestNonInteractiveEnv(t *testing.T) {
	tests := []struct {
		name     string
		thermo   string
		ci       string
		expected bool
	}{
		{"neither set", "", "", false},
		{"thermo flag", "true", "", true},
		{"ci", "", "1", true},
		{"explicit false", "false", "false", false},
		{"garbage", "maybe", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("THERMO_NON_INTERACTIVE", tt.thermo)
			t.Setenv("CI", tt.ci)
			assert.Equal(t, tt.expected, nonInteractiveEnv())
		})
	}
}

func TestInitAnswers_Apply(t *testing.T) {
	g := gauge.DefaultConfig()
	answers := defaultAnswers(g)
	assert.Equal(t, "100", answers.width)
	assert.Equal(t, "percent", answers.hatchType)

	answers.width = " 240 "
	answers.total = "50"
	answers.hatchType = "quantity"
	answers.showHatches = true
	answers.showValue = true
	answers.fillColor = "#ff0000"
	require.NoError(t, answers.apply(&g))

	assert.Equal(t, 240.0, g.Width)
	assert.Equal(t, 50.0, g.HatchTotalValue)
	assert.Equal(t, gauge.Quantity, g.HatchType)
	assert.Equal(t, gauge.Quantity, g.ShowValueType)
	assert.True(t, g.ShowHatches)
	assert.True(t, g.ShowHatchLabels)
	assert.True(t, g.ShowValue)
	assert.Equal(t, "#ff0000", g.FillColor)

	answers.width = "wide"
	assert.Error(t, answers.apply(&g))
}

func TestPositiveNumber(t *testing.T) {
	assert.NoError(t, positiveNumber("12.5"))
	assert.NoError(t, positiveNumber(" 3 "))
	assert.Error(t, positiveNumber("0"))
	assert.Error(t, positiveNumber("-4"))
	assert.Error(t, positiveNumber("ten"))
}
