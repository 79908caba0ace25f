package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yt2jellyfin/yt2jellyfin/internal/archive"
	"github.com/yt2jellyfin/yt2jellyfin/internal/config"
	"github.com/yt2jellyfin/yt2jellyfin/internal/download"
	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
	"github.com/yt2jellyfin/yt2jellyfin/internal/ytdlp"
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(1)
	}

	if opts.help {
		printUsage()
		return
	}

	settings, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
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

	if opts.check {
		os.Exit(runCheck(ctx, settings))
	}
	if opts.update {
		os.Exit(runUpdate(ctx))
	}

	if opts.input == "" {
		fmt.Fprintln(os.Stderr, "Error: missing URL or search query")
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	req := buildRequest(opts, settings)

	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !opts.verbose {
			return
		}
		if opts.quiet && event.Level != download.LevelError {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Download(ctx, req); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCheck reports on the external dependencies and the archive file.
func runCheck(ctx context.Context, settings *config.Settings) int {
	status := 0
	for _, dep := range ytdlp.Check(ctx) {
		if dep.Found {
			fmt.Printf("✅ %s: %s (%s)\n", dep.Name, dep.Path, dep.Version)
			continue
		}
		fmt.Printf("❌ %s: not found in PATH\n", dep.Name)
		status = 1
	}

	if n, err := archive.Count(settings.ArchivePath); err == nil {
		fmt.Printf("ℹ️  archive: %s (%d entries)\n", settings.ArchivePath, n)
	}
	fmt.Printf("ℹ️  output: %s\n", settings.OutputDir)

	return status
}

// runUpdate passes through to the downloader's self-update.
func runUpdate(ctx context.Context) int {
	if err := ytdlp.Probe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := ytdlp.New().Update(ctx, func(line string) {
		fmt.Println(line)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println("yt2jellyfin - Download audio into a Jellyfin-friendly library layout")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  yt2jellyfin [options] <URL>")
	fmt.Println("  yt2jellyfin [options] -s <search query>")
	fmt.Println()
	fmt.Println("Layouts:")
	fmt.Printf("  %-18s Artist/Album/Title (default)\n", model.LayoutDefault)
	fmt.Printf("  %-18s everything directly in the output directory\n", model.LayoutFlat)
	fmt.Printf("  %-18s Artist/Playlist/NN - Title\n", model.LayoutPlaylistFolder)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Print((&options{}).newFlagSet().FlagUsages())
	fmt.Println()
	fmt.Println("For interactive mode, use: yt2jellyfin-tui")
}
