package config

import (
	"fmt"

	"github.com/handiism/format-performer-tags/internal/performer"
)

// KeywordOptions are the integer options assigning keywords to groups.
var KeywordOptions = []string{
	"format_group_additional",
	"format_group_guest",
	"format_group_solo",
	"format_group_vocals",
}

// CharOptions are the string options for the section display settings,
// grouped by section.
var CharOptions = []string{
	"format_group_1_start_char", "format_group_1_sep_char", "format_group_1_end_char",
	"format_group_2_start_char", "format_group_2_sep_char", "format_group_2_end_char",
	"format_group_3_start_char", "format_group_3_sep_char", "format_group_3_end_char",
	"format_group_4_start_char", "format_group_4_sep_char", "format_group_4_end_char",
}

func (s *Settings) intOption(key string) *int {
	switch key {
	case "format_group_additional":
		return &s.GroupAdditional
	case "format_group_guest":
		return &s.GroupGuest
	case "format_group_solo":
		return &s.GroupSolo
	case "format_group_vocals":
		return &s.GroupVocals
	}
	return nil
}

func (s *Settings) stringOption(key string) *string {
	switch key {
	case "format_group_1_start_char":
		return &s.Group1StartChar
	case "format_group_1_sep_char":
		return &s.Group1SepChar
	case "format_group_1_end_char":
		return &s.Group1EndChar
	case "format_group_2_start_char":
		return &s.Group2StartChar
	case "format_group_2_sep_char":
		return &s.Group2SepChar
	case "format_group_2_end_char":
		return &s.Group2EndChar
	case "format_group_3_start_char":
		return &s.Group3StartChar
	case "format_group_3_sep_char":
		return &s.Group3SepChar
	case "format_group_3_end_char":
		return &s.Group3EndChar
	case "format_group_4_start_char":
		return &s.Group4StartChar
	case "format_group_4_sep_char":
		return &s.Group4SepChar
	case "format_group_4_end_char":
		return &s.Group4EndChar
	}
	return nil
}

// Option returns the value of a format option by its option name.
//
// Keyword options return an int, display options return a string.
func (s *Settings) Option(key string) (any, error) {
	if p := s.intOption(key); p != nil {
		return *p, nil
	}
	if p := s.stringOption(key); p != nil {
		return *p, nil
	}
	return nil, fmt.Errorf("%q: %w", key, ErrUnknownOption)
}

// SetOption sets a format option by its option name.
//
// Keyword options accept an int in the range 1-4; display options accept
// a string.
func (s *Settings) SetOption(key string, value any) error {
	if p := s.intOption(key); p != nil {
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("%s: expected int, got %T", key, value)
		}
		if v < 1 || v > performer.NumGroups {
			return fmt.Errorf("%s = %d: %w", key, v, ErrInvalidGroup)
		}
		*p = v
		return nil
	}
	if p := s.stringOption(key); p != nil {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", key, value)
		}
		*p = v
		return nil
	}
	return fmt.Errorf("%q: %w", key, ErrUnknownOption)
}

// ResetFormatOptions restores the keyword and display options to their
// defaults. Processing and logging settings are left alone.
func (s *Settings) ResetFormatOptions() {
	defaults := DefaultSettings()
	for _, key := range KeywordOptions {
		*s.intOption(key) = *defaults.intOption(key)
	}
	for _, key := range CharOptions {
		*s.stringOption(key) = *defaults.stringOption(key)
	}
}
