// Package ioutils provides file system utilities.
//
// This package contains functions for:
//   - Copying files (used to back up audio files before their tags are rewritten)
//   - Directory creation
//
// # File Operations
//
//	// Back up a file before modifying it
//	err := ioutils.CopyFile(ctx, "/music/track.mp3", "/music/track.mp3.bak")
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
package ioutils
