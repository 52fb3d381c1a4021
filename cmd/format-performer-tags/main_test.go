package main

import (
	"path/filepath"
	"testing"

	"github.com/handiism/format-performer-tags/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_DefaultConfigPath(t *testing.T) {
	opts, _, err := parseFlags([]string{"/music"})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPath(), opts.configPath)
	assert.Equal(t, []string{"/music"}, opts.paths)
}

func TestLoadSettings_SharedWithEditor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	saved := config.DefaultSettings()
	require.NoError(t, saved.SetOption("format_group_guest", 1))
	require.NoError(t, saved.Save(path))

	opts, _, err := parseFlags([]string{"-config", path, "-workers", "2", "-force", "/music"})
	require.NoError(t, err)
	settings, err := loadSettings(opts)
	require.NoError(t, err)

	assert.Equal(t, 1, settings.GroupGuest)
	assert.Equal(t, 2, settings.MaxConcurrentFiles)
	assert.True(t, settings.Force)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	opts, _, err := parseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	require.NoError(t, err)
	settings, err := loadSettings(opts)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSettings(), settings)
}
