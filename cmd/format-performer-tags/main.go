package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/format-performer-tags/internal/config"
	"github.com/handiism/format-performer-tags/internal/logging"
	"github.com/handiism/format-performer-tags/internal/performer"
	"github.com/handiism/format-performer-tags/internal/process"
)

// options holds the parsed command line.
type options struct {
	configPath string
	dryRun     bool
	verbose    bool
	workers    int
	backup     bool
	force      bool
	logFile    string
	examples   bool
	paths      []string
}

func parseFlags(args []string) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("format-performer-tags", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to settings file (.json, .yaml)")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "Show the credits each file would get without writing")
	fs.BoolVar(&opts.verbose, "verbose", false, "Show verbose output")
	fs.IntVar(&opts.workers, "workers", 0, "Number of files to process concurrently (overrides config)")
	fs.BoolVar(&opts.backup, "backup", false, "Copy each file before rewriting it")
	fs.BoolVar(&opts.force, "force", false, "Format files again even if they were formatted before")
	fs.StringVar(&opts.logFile, "log-file", "", "Write debug log to this file")
	fs.BoolVar(&opts.examples, "examples", false, "Print example credits for the current settings and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	opts.paths = fs.Args()
	return opts, fs, nil
}

// loadSettings reads the settings file shared with the settings editor and
// applies the command line overrides. A missing file yields the defaults.
func loadSettings(opts *options) (*config.Settings, error) {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.workers > 0 {
		settings.MaxConcurrentFiles = opts.workers
	}
	if opts.backup {
		settings.BackupOriginals = true
	}
	if opts.logFile != "" {
		settings.Logging.FilePath = opts.logFile
		settings.Logging.Level = "debug"
	}
	settings.Force = opts.force
	return settings, nil
}

func main() {
	opts, fs, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	// Load config
	settings, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closer := logging.New("format-performer-tags", settings.Logging)
	defer closer.Close()

	formatter, err := performer.New(settings.ToFormatConfig(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in settings: %v\n", err)
		os.Exit(1)
	}

	if opts.examples {
		fmt.Println(performer.BuildExample(formatter, performer.InstrumentCredits))
		fmt.Println()
		fmt.Println(performer.BuildExample(formatter, performer.VocalCredits))
		return
	}

	if len(opts.paths) == 0 {
		fmt.Println("Format Performer Tags - Reformat performer credits in audio files")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  format-performer-tags [options] <file or directory>...")
		fmt.Println()
		fmt.Println("To edit settings interactively, use: format-performer-tags-tui")
		fmt.Println()
		fs.PrintDefaults()
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	manager := process.NewManager(settings, formatter, logger, func(event process.ProgressEvent) {
		if event.Level == process.LevelVerbose && !opts.verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case process.LevelError:
			prefix = "✗ "
		case process.LevelWarning:
			prefix = "! "
		case process.LevelSuccess:
			prefix = "✓ "
		case process.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Initialize(ctx, opts.paths); err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting files: %v\n", err)
		os.Exit(1)
	}

	if opts.dryRun {
		fmt.Println("[Dry run - no files will be written]")
	}

	if err := manager.Start(ctx, opts.dryRun); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nCancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	processed, changed, failed, total := manager.GetProgress()
	fmt.Println()
	verb := "Reformatted"
	if opts.dryRun {
		verb = "Would reformat"
	}
	fmt.Printf("%s %d of %d file(s) (%d processed, %d failed)\n", verb, changed, total, processed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
