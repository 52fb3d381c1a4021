package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhowden/tag"
	"github.com/handiism/format-performer-tags/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFLAC creates a minimal FLAC file holding an empty STREAMINFO block
// and a Vorbis comment block.
func writeFLAC(t *testing.T, comments ...string) string {
	t.Helper()

	var block bytes.Buffer
	vendor := "format-performer-tags test"
	binary.Write(&block, binary.LittleEndian, uint32(len(vendor)))
	block.WriteString(vendor)
	binary.Write(&block, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		binary.Write(&block, binary.LittleEndian, uint32(len(c)))
		block.WriteString(c)
	}

	var file bytes.Buffer
	file.WriteString("fLaC")
	file.Write([]byte{0, 0, 0, 34})
	file.Write(make([]byte, 34))
	n := block.Len()
	file.Write([]byte{0x80 | 4, byte(n >> 16), byte(n >> 8), byte(n)})
	file.Write(block.Bytes())

	path := filepath.Join(t.TempDir(), "track.flac")
	require.NoError(t, os.WriteFile(path, file.Bytes(), 0644))
	return path
}

func TestParsePerformerComment(t *testing.T) {
	tests := []struct {
		input string
		want  model.Credit
	}{
		{"Jimmy Page (guest guitar)", model.Credit{Role: "guest guitar", Person: "Jimmy Page"}},
		{"Sandy Denny (guest) (lead vocals)", model.Credit{Role: "lead vocals", Person: "Sandy Denny (guest)"}},
		{"Session Player", model.Credit{Person: "Session Player"}},
		{" John Bonham (drums) ", model.Credit{Role: "drums", Person: "John Bonham"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePerformerComment(tt.input))
		})
	}
}

func TestReadPerformers_FLAC(t *testing.T) {
	path := writeFLAC(t, "TITLE=The Battle of Evermore", "PERFORMER=Sandy Denny (additional solo guest lead vocals)")

	credits, fileType, err := ReadPerformers(path)
	require.NoError(t, err)
	assert.Equal(t, tag.FLAC, fileType)
	assert.Equal(t, []model.Credit{{Role: "additional solo guest lead vocals", Person: "Sandy Denny"}}, credits)
}

func TestReadPerformers_Repeated(t *testing.T) {
	path := writeFLAC(t,
		"PERFORMER=Jimmy Page (guest guitar)",
		"TITLE=Going to California",
		"performer=Robert Plant (lead vocals)",
		"PERFORMER=John Paul Jones",
	)

	credits, _, err := ReadPerformers(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Credit{
		{Role: "guest guitar", Person: "Jimmy Page"},
		{Role: "lead vocals", Person: "Robert Plant"},
		{Person: "John Paul Jones"},
	}, credits)
}

func TestReadPerformers_NotFLAC(t *testing.T) {
	path := writeMP3(t, 4, []model.Credit{{Role: "guitar", Person: "Jimmy Page"}})

	_, _, err := ReadPerformers(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTagger_PreviewFile(t *testing.T) {
	path := writeFLAC(t, "PERFORMER=Jimmy Page (guest guitar)")

	res, err := newTestTagger(t).PreviewFile(path)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.False(t, res.Saved)
	assert.Equal(t, []model.Credit{{Role: "guitar", Person: "Jimmy Page (guest)"}}, res.After)
}

func TestReadPerformers_NotAudio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.flac")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{'x'}, 256), 0644))

	_, _, err := ReadPerformers(path)
	assert.Error(t, err)
}
