// Package config provides configuration management for format-performer-tags.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Access to format options by their option names
//   - Conversion to performer.Config for the formatter
//
// # Default Settings
//
// Use DefaultSettings() to get the defaults:
//
//	settings := config.DefaultSettings()
//	// [1]Instrument/Vocals[2][3]: Performer[4]
//	// additional, solo -> section 3; guest -> section 4; vocals -> section 2
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/settings.yaml")
//	if err != nil {
//	    // Invalid file or group assignment; a missing file yields defaults
//	}
//
// # Option Names
//
// Format options are keyed the same way in files and in Option/SetOption:
//
//	format_group_{additional,guest,solo,vocals}         section number 1-4
//	format_group_{1,2,3,4}_{start_char,sep_char,end_char} display strings
//
// Example:
//
//	err := settings.SetOption("format_group_guest", 1)
//	f, err := performer.New(settings.ToFormatConfig(), logger)
package config
