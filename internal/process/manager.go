package process

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/handiism/format-performer-tags/internal/audio"
	"github.com/handiism/format-performer-tags/internal/config"
	ioutils "github.com/handiism/format-performer-tags/internal/io"
	"github.com/handiism/format-performer-tags/internal/model"
	"github.com/handiism/format-performer-tags/internal/performer"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a processing progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// writableExts are formats whose credits can be rewritten.
var writableExts = map[string]bool{
	".mp3": true,
}

// readOnlyExts are formats whose credits can only be previewed.
var readOnlyExts = map[string]bool{
	".flac": true,
}

// IsSupported reports whether path has an extension the manager processes.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return writableExts[ext] || readOnlyExts[ext]
}

// Manager coordinates formatting of a batch of audio files.
type Manager struct {
	settings *config.Settings
	tagger   *audio.Tagger
	logger   hclog.Logger

	files          []string
	totalFiles     int32
	processedFiles int32
	changedFiles   int32
	failedFiles    int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, formatter *performer.Formatter, logger hclog.Logger, onProgress func(ProgressEvent)) *Manager {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	tagConfig := audio.DefaultTagConfig()
	tagConfig.Force = settings.Force
	return &Manager{
		settings:   settings,
		tagger:     audio.NewTagger(formatter, tagConfig, logger.Named("audio")),
		logger:     logger,
		onProgress: onProgress,
	}
}

// Initialize collects the supported audio files under paths.
//
// Directories are walked recursively; files given explicitly are included
// even if they would be skipped by the extension filter, so unsupported
// formats are reported instead of silently ignored.
func (m *Manager) Initialize(ctx context.Context, paths []string) error {
	seen := make(map[string]bool)
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading %s: %v", root, err), Level: LevelError})
			continue
		}

		if !info.IsDir() {
			if !seen[root] {
				seen[root] = true
				m.files = append(m.files, root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading %s: %v", path, err), Level: LevelWarning})
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if d.IsDir() || !IsSupported(path) || seen[path] {
				return nil
			}
			seen[path] = true
			m.files = append(m.files, path)
			return nil
		})
		if err != nil {
			return err
		}
	}

	sort.Strings(m.files)
	m.totalFiles = int32(len(m.files))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d file(s)", len(m.files)), Level: LevelInfo})
	return nil
}

// Files returns the files collected by Initialize.
func (m *Manager) Files() []string {
	return m.files
}

// Start formats all collected files. With dryRun set no file is written.
//
// Failures of individual files are reported as progress events and do not
// stop the batch; only cancellation of ctx does.
func (m *Manager) Start(ctx context.Context, dryRun bool) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(m.settings.MaxConcurrentFiles, 1))

	for _, path := range m.files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.processFile(ctx, path, dryRun); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				atomic.AddInt32(&m.failedFiles, 1)
				m.logger.Error("format failed", "path", path, "error", err)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error formatting %s: %v", path, err), Level: LevelError})
			}
			atomic.AddInt32(&m.processedFiles, 1)
			return nil
		})
	}

	return g.Wait()
}

// GetProgress returns current processing progress.
func (m *Manager) GetProgress() (processed, changed, failed, total int32) {
	return atomic.LoadInt32(&m.processedFiles), atomic.LoadInt32(&m.changedFiles),
		atomic.LoadInt32(&m.failedFiles), m.totalFiles
}

func (m *Manager) processFile(ctx context.Context, path string, dryRun bool) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case readOnlyExts[ext]:
		return m.previewFile(path, dryRun)
	case !writableExts[ext]:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping unsupported file: %s", path), Level: LevelWarning})
		return nil
	}

	// Check first so that unchanged files are neither backed up nor saved.
	res, err := m.tagger.FormatFile(path, true)
	if err != nil {
		return err
	}
	if res.Marked && !res.Changed {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Already formatted: %s (use -force to format again)", filepath.Base(path)), Level: LevelVerbose})
		return nil
	}
	if !res.Changed {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Unchanged: %s", filepath.Base(path)), Level: LevelVerbose})
		return nil
	}

	atomic.AddInt32(&m.changedFiles, 1)
	if dryRun {
		m.report(res, LevelInfo)
		return nil
	}

	if m.settings.BackupOriginals {
		backup := path + m.settings.BackupSuffix
		if err := ioutils.CopyFile(ctx, path, backup); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		m.logger.Debug("backed up", "path", path, "backup", backup)
	}

	res, err = m.tagger.FormatFile(path, false)
	if err != nil {
		return err
	}
	m.report(res, LevelVerbose)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Formatted: %s", filepath.Base(path)), Level: LevelSuccess})
	return nil
}

func (m *Manager) previewFile(path string, dryRun bool) error {
	res, err := m.tagger.PreviewFile(path)
	if err != nil {
		return err
	}
	if !res.Changed {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Unchanged: %s", filepath.Base(path)), Level: LevelVerbose})
		return nil
	}

	atomic.AddInt32(&m.changedFiles, 1)
	if dryRun {
		m.report(res, LevelInfo)
		return nil
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Read-only format, not written: %s (use -dry-run to preview)", filepath.Base(path)),
		Level:   LevelWarning,
	})
	return nil
}

// report emits a before/after listing of a file's credits.
func (m *Manager) report(res *audio.Result, level ProgressLevel) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:", res.Path)
	writeCredits(&b, "-", res.Before)
	writeCredits(&b, "+", res.After)
	m.progress(ProgressEvent{Message: b.String(), Level: level})
}

func writeCredits(b *strings.Builder, marker string, credits []model.Credit) {
	for _, c := range credits {
		fmt.Fprintf(b, "\n    %s %s: %s", marker, c.Role, c.Person)
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onProgress(event)
}
