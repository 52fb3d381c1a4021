package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/format-performer-tags/internal/io"
	"github.com/handiism/format-performer-tags/internal/logging"
	"github.com/handiism/format-performer-tags/internal/performer"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidGroup is returned when a keyword is assigned to a group outside 1-4.
	ErrInvalidGroup = errors.New("group must be between 1 and 4")

	// ErrUnknownOption is returned by Option and SetOption for unknown keys.
	ErrUnknownOption = errors.New("unknown option")
)

// Settings holds all configuration options.
//
// The format options use the same names as the tagger's plugin option
// store, so a settings file can be edited by hand using the names shown in
// the user guide.
type Settings struct {
	// Keyword section assignments (1-4)
	GroupAdditional int `json:"format_group_additional" yaml:"format_group_additional"`
	GroupGuest      int `json:"format_group_guest" yaml:"format_group_guest"`
	GroupSolo       int `json:"format_group_solo" yaml:"format_group_solo"`
	GroupVocals     int `json:"format_group_vocals" yaml:"format_group_vocals"`

	// Section display settings
	Group1StartChar string `json:"format_group_1_start_char" yaml:"format_group_1_start_char"`
	Group1SepChar   string `json:"format_group_1_sep_char" yaml:"format_group_1_sep_char"`
	Group1EndChar   string `json:"format_group_1_end_char" yaml:"format_group_1_end_char"`
	Group2StartChar string `json:"format_group_2_start_char" yaml:"format_group_2_start_char"`
	Group2SepChar   string `json:"format_group_2_sep_char" yaml:"format_group_2_sep_char"`
	Group2EndChar   string `json:"format_group_2_end_char" yaml:"format_group_2_end_char"`
	Group3StartChar string `json:"format_group_3_start_char" yaml:"format_group_3_start_char"`
	Group3SepChar   string `json:"format_group_3_sep_char" yaml:"format_group_3_sep_char"`
	Group3EndChar   string `json:"format_group_3_end_char" yaml:"format_group_3_end_char"`
	Group4StartChar string `json:"format_group_4_start_char" yaml:"format_group_4_start_char"`
	Group4SepChar   string `json:"format_group_4_sep_char" yaml:"format_group_4_sep_char"`
	Group4EndChar   string `json:"format_group_4_end_char" yaml:"format_group_4_end_char"`

	// Processing settings
	MaxConcurrentFiles int    `json:"max_concurrent_files" yaml:"max_concurrent_files"`
	BackupOriginals    bool   `json:"backup_originals" yaml:"backup_originals"`
	BackupSuffix       string `json:"backup_suffix" yaml:"backup_suffix"`

	// Force formats files already marked as formatted. It is set per run
	// and never saved.
	Force bool `json:"-" yaml:"-"`

	// Logging settings
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		GroupAdditional: 3,
		GroupGuest:      4,
		GroupSolo:       3,
		GroupVocals:     2,

		Group1EndChar:   " ",
		Group2StartChar: ", ",
		Group3StartChar: " (",
		Group3EndChar:   ")",
		Group4StartChar: " (",
		Group4EndChar:   ")",

		MaxConcurrentFiles: 4,
		BackupOriginals:    false,
		BackupSuffix:       ".bak",

		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "format-performer-tags", "settings.json")
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads settings from a JSON or YAML file, chosen by extension.
//
// Options missing from the file keep their default values. A missing file
// yields the defaults. The loaded settings are validated.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the keyword group assignments.
func (s *Settings) Validate() error {
	for _, key := range KeywordOptions {
		v, _ := s.Option(key)
		if g := v.(int); g < 1 || g > performer.NumGroups {
			return fmt.Errorf("%s = %d: %w", key, g, ErrInvalidGroup)
		}
	}
	if s.MaxConcurrentFiles < 1 {
		return fmt.Errorf("max_concurrent_files = %d: must be at least 1", s.MaxConcurrentFiles)
	}
	return nil
}

// ToFormatConfig converts settings to a performer.Config.
func (s *Settings) ToFormatConfig() performer.Config {
	return performer.Config{
		Groups: [performer.NumGroups]performer.Group{
			{Start: s.Group1StartChar, Separator: s.Group1SepChar, End: s.Group1EndChar},
			{Start: s.Group2StartChar, Separator: s.Group2SepChar, End: s.Group2EndChar},
			{Start: s.Group3StartChar, Separator: s.Group3SepChar, End: s.Group3EndChar},
			{Start: s.Group4StartChar, Separator: s.Group4SepChar, End: s.Group4EndChar},
		},
		Keywords: performer.KeywordGroups{
			Additional: performer.GroupNumber(s.GroupAdditional),
			Guest:      performer.GroupNumber(s.GroupGuest),
			Solo:       performer.GroupNumber(s.GroupSolo),
			Vocals:     performer.GroupNumber(s.GroupVocals),
		},
	}
}
