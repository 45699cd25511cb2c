// Command album-dl downloads videos and playlists as MP3 files from the
// command line.
//
//	album-dl [flags] <id-or-url>...
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"

	"github.com/ytget/yt-album-downloader/internal/app"
	"github.com/ytget/yt-album-downloader/internal/config"
	"github.com/ytget/yt-album-downloader/internal/logger"
	"github.com/ytget/yt-album-downloader/internal/model"
	"github.com/ytget/yt-album-downloader/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Exit codes
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := newFlagSet(stderr)
	if err := flags.Parse(args); err != nil {
		return ExitUsage
	}
	if showVersion, _ := flags.GetBool("version"); showVersion {
		fmt.Fprintf(stdout, "album-dl %s\n", version)
		return ExitOK
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return ExitUsage
	}

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return ExitUsage
	}

	logCfg := app.LoggerConfig(cfg.Logging)
	logCfg.Console = stderr
	log := logger.Init(logCfg)
	defer log.Close()

	forceSingle, _ := flags.GetBool("single")
	entries, invalid := parseInputs(flags.Args(), forceSingle)
	for _, bad := range invalid {
		color.New(color.FgRed).Fprintf(stderr, "invalid input %q\n", bad)
	}
	if len(entries) == 0 {
		return ExitFailed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := app.Build(cfg, log.Logger)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("downloading"),
		progressbar.OptionSetItsString("track"),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	pipeline.Coordinator.SetResultCallback(func(model.DownloadResult) {
		_ = bar.Add(1)
	})

	var reports []*model.BatchReport
	for report := range pipeline.Coordinator.RunQueue(ctx, entries, pipeline.Root, nil) {
		reports = append(reports, report)
	}
	_ = bar.Finish()

	failed := printSummary(stdout, reports)
	if failed > 0 || len(invalid) > 0 {
		return ExitFailed
	}
	return ExitOK
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("album-dl", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.String("config", "", "Path to a config file (default: ./album-dl.yaml)")
	flags.String("dest", "", "Destination root directory")
	flags.Int("workers", 0, "Parallel downloads per batch")
	flags.String("mode", "", "Playlist resolver: browser or library")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("ffmpeg", "", "Path to the ffmpeg executable")
	flags.Bool("no-tags", false, "Do not write ID3 tags")
	flags.Bool("single", false, "Treat every input as a single video")
	flags.Bool("version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: album-dl [flags] <id-or-url>...\n\nFlags:\n")
		flags.PrintDefaults()
	}
	return flags
}

// parseInputs turns command line arguments into queue entries. Arguments
// that are not a recognizable id or URL are returned separately.
func parseInputs(args []string, forceSingle bool) (entries []model.QueueEntry, invalid []string) {
	for _, arg := range args {
		id, err := platform.ParseIdentifier(arg)
		if err != nil {
			invalid = append(invalid, arg)
			continue
		}
		entry := model.NewQueueEntry(arg, id)
		if forceSingle {
			entry.Type = model.KindSingle
		}
		entries = append(entries, entry)
	}
	return entries, invalid
}

// printSummary writes a coloured outcome per batch and returns the number of
// failed items
func printSummary(w io.Writer, reports []*model.BatchReport) int {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	failed := 0
	for _, report := range reports {
		for _, album := range report.Albums {
			switch {
			case album.Error != "":
				red.Fprintf(w, "playlist %s: %s\n", album.PlaylistID, album.Error)
			case album.Partial:
				yellow.Fprintf(w, "playlist %s: page incomplete, %d items in %s\n", album.PlaylistID, album.Items, album.Directory)
			default:
				fmt.Fprintf(w, "playlist %s: %d items in %s\n", album.PlaylistID, album.Items, album.Directory)
			}
		}
		for _, res := range report.Failures() {
			red.Fprintln(w, res.Message)
		}

		status := green
		if report.Status() != model.BatchStatusCompleted {
			status = red
		}
		status.Fprintf(w, "%s batch: %d downloaded, %d failed in %s\n",
			report.Kind, report.Succeeded(), report.Failed(), report.Duration().Round(1e6))
		failed += report.Failed()
		if report.Status() == model.BatchStatusFailed && report.Failed() == 0 {
			failed++
		}
	}
	return failed
}
