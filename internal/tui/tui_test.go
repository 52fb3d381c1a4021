package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/format-performer-tags/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_DefaultExamples(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "")

	assert.Equal(t, "guitar: Johnny Flux, John Watson, Jimmy Page (guest)\nguitar (additional solo): Jimmy Page (guest)", m.instruments)
	assert.Equal(t, "vocals, lead (additional solo): Robert Plant, Sandy Denny (guest)", m.vocals)
	assert.Contains(t, m.View(), "Keyword Sections Assignment")
}

func TestModel_KeywordSelector(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 4, m.Settings().GroupAdditional)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Settings().GroupAdditional, "selector wraps around")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("1"))
	assert.Equal(t, 1, m.Settings().GroupAdditional)
	assert.Equal(t, "guitar: Johnny Flux, John Watson, Jimmy Page (guest)\nadditional guitar (solo): Jimmy Page (guest)", m.instruments)
	assert.Equal(t, "additional vocals, lead (solo): Robert Plant, Sandy Denny (guest)", m.vocals)
}

func TestModel_EditSectionChars(t *testing.T) {
	m := NewModel(config.DefaultSettings(), "")
	m = press(t, m, runes("1"))

	// Move past the four keyword selectors to section 1 start chars.
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("["),
	)

	assert.Equal(t, "[", m.Settings().Group1StartChar)
	assert.True(t, strings.HasSuffix(m.instruments, "[additional guitar (solo): Jimmy Page (guest)"), m.instruments)
}

func TestModel_RestoreDefaults(t *testing.T) {
	settings := config.DefaultSettings()
	settings.GroupGuest = 1
	settings.Group3StartChar = " ["
	settings.MaxConcurrentFiles = 8
	settings.BackupOriginals = true
	settings.Logging.Level = "debug"
	m := NewModel(settings, "")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	want := config.DefaultSettings()
	want.MaxConcurrentFiles = 8
	want.BackupOriginals = true
	want.Logging.Level = "debug"
	assert.Equal(t, want, m.Settings())
	assert.Equal(t, " (", m.inputs[6].Value())
	assert.Equal(t, "vocals, lead (additional solo): Robert Plant, Sandy Denny (guest)", m.vocals)
}

func TestModel_InvalidSettingsError(t *testing.T) {
	settings := config.DefaultSettings()
	settings.GroupGuest = 9
	m := NewModel(settings, "")
	require.Error(t, m.err)

	// Editing a display option keeps the error while the group is invalid.
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("["),
	)
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")

	// Fixing the guest group clears it.
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyShiftTab},
		tea.KeyMsg{Type: tea.KeyShiftTab},
		tea.KeyMsg{Type: tea.KeyShiftTab},
		runes("4"),
	)
	assert.Equal(t, 4, m.Settings().GroupGuest)
	assert.NoError(t, m.err)
	assert.NotContains(t, m.View(), "Error:")
}

func TestModel_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	m := NewModel(config.DefaultSettings(), path)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("2"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.NoError(t, m.err)
	assert.Contains(t, m.status, path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.GroupGuest)
}
