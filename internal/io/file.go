package ioutils

import (
	"context"
	"fmt"
	"io"
	"os"
)

// CopyFile copies a file from source to destination, preserving the source
// file mode.
//
// The destination is created if it doesn't exist, or truncated if it does.
// The context is checked before copying starts; the copy itself is not
// interruptible.
//
// Example:
//
//	err := CopyFile(ctx, "/music/track.mp3", "/music/track.mp3.bak")
func CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return destFile.Close()
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
