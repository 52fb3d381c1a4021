// Package process coordinates formatting performer credits across many
// audio files.
//
// The Manager collects files, formats them concurrently and reports progress
// through a callback:
//
//	manager := process.NewManager(settings, formatter, logger, func(e process.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	if err := manager.Initialize(ctx, []string{"/music/Led Zeppelin"}); err != nil {
//	    return err
//	}
//	err := manager.Start(ctx, false)
//
// # Concurrency
//
// Files are processed by at most Settings.MaxConcurrentFiles workers. The
// formatter is shared read-only; each file gets its own metadata.
//
// # Safety
//
//   - Files whose credits would not change are never written
//   - With Settings.BackupOriginals, each file is copied to
//     path+Settings.BackupSuffix before it is saved
//   - Dry runs report the credits each file would get and write nothing
//   - MP3 files already marked as formatted are skipped unless Settings.Force is set
//   - FLAC files are previewed only
package process
