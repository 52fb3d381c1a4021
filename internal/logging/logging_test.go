package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  hclog.Level
	}{
		{"debug", hclog.Debug},
		{"INFO", hclog.Info},
		{" error ", hclog.Error},
		{"", hclog.Warn},
		{"nonsense", hclog.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "format.log")
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.FilePath = path

	logger, closer := New("test", cfg)
	logger.Debug("rewrote tag", "key", "performer:guitar")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "rewrote tag"), "log file content: %s", data)
	assert.True(t, strings.Contains(string(data), "performer:guitar"))
}

func TestNew_Stderr(t *testing.T) {
	logger, closer := New("test", DefaultConfig())
	assert.False(t, logger.IsDebug())
	assert.True(t, logger.IsWarn())
	assert.NoError(t, closer.Close())
}
