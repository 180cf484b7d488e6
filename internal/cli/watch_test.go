package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_FileWithoutTerminal(t *testing.T) {
	useConfig(t, "gauge:\n  fill_color: \"#000\"\n")
	levels := filepath.Join(t.TempDir(), "levels.txt")
	require.NoError(t, os.WriteFile(levels, []byte("25%\n\n75\n"), 0644))

	var out bytes.Buffer
	err := Watch(context.Background(), WatchOptions{File: levels, Output: &out})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out.String(), "┌"), "one gauge per value")
}

func TestWatch_MissingFile(t *testing.T) {
	useConfig(t, "version: 1\n")

	err := Watch(context.Background(), WatchOptions{
		File:   filepath.Join(t.TempDir(), "missing.txt"),
		Output: &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}

func TestWatch_CancelledIsNotAnError(t *testing.T) {
	useConfig(t, "version: 1\n")
	levels := filepath.Join(t.TempDir(), "levels.txt")
	require.NoError(t, os.WriteFile(levels, []byte("10\n20\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Watch(ctx, WatchOptions{File: levels, Output: &bytes.Buffer{}})
	assert.NoError(t, err)
}

func TestWatch_TerminalStdinNeedsPipeOrFile(t *testing.T) {
	useConfig(t, "version: 1\n")
	old := stdinIsTerminal
	stdinIsTerminal = func() bool { return true }
	t.Cleanup(func() { stdinIsTerminal = old })

	for _, file := range []string{"", "-"} {
		var out bytes.Buffer
		err := Watch(context.Background(), WatchOptions{File: file, Output: &out})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrInput))
		assert.Contains(t, err.Error(), "--file")
		assert.Empty(t, out.String())
	}
}

func TestWatch_TerminalStdinIgnoredWithFile(t *testing.T) {
	useConfig(t, "version: 1\n")
	old := stdinIsTerminal
	stdinIsTerminal = func() bool { return true }
	t.Cleanup(func() { stdinIsTerminal = old })

	levels := filepath.Join(t.TempDir(), "levels.txt")
	require.NoError(t, os.WriteFile(levels, []byte("40%\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, Watch(context.Background(), WatchOptions{File: levels, Output: &out}))
	assert.Equal(t, 1, strings.Count(out.String(), "┌"))
}
