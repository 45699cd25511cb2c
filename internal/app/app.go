package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-album-downloader/internal/config"
	"github.com/ytget/yt-album-downloader/internal/download"
	"github.com/ytget/yt-album-downloader/internal/logger"
	"github.com/ytget/yt-album-downloader/internal/platform"
	"github.com/ytget/yt-album-downloader/internal/scraper"
	"github.com/ytget/yt-album-downloader/internal/tagging"
	"github.com/ytget/yt-album-downloader/internal/transcode"
)

// Pipeline is a ready-to-run coordinator plus the HTTP client it shares with
// title lookups
type Pipeline struct {
	Coordinator *download.Coordinator
	HTTPClient  *http.Client
	Root        string
}

// Build wires resolver, fetcher and coordinator for cfg
func Build(cfg *config.Config, log zerolog.Logger) *Pipeline {
	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}

	transcoder := transcode.NewService(
		log.With().Str("component", "transcode").Logger(),
		transcode.WithFFmpegPath(cfg.Transcode.FFmpegPath),
		transcode.WithBitrate(cfg.Transcode.BitrateKbps),
		transcode.WithSampleRate(cfg.Transcode.SampleRate),
	)

	var tagger download.Tagger
	if cfg.Download.TagFiles {
		tagger = tagging.NewTagger()
	}

	fetcher := download.NewFetcher(httpClient, transcoder, tagger, log.With().Str("component", "fetcher").Logger())
	resolver := NewResolver(cfg, log.With().Str("component", "resolver").Logger())

	return &Pipeline{
		Coordinator: download.NewCoordinator(resolver, fetcher, cfg.Download.Workers, log.With().Str("component", "coordinator").Logger()),
		HTTPClient:  httpClient,
		Root:        cfg.Download.Directory,
	}
}

// NewResolver returns the playlist resolver selected by scraper.mode
func NewResolver(cfg *config.Config, log zerolog.Logger) download.PlaylistResolver {
	if cfg.Scraper.Mode == config.ScraperModeLibrary {
		r := platform.NewLibraryResolver()
		r.SetTimeout(cfg.Scraper.Timeout)
		return r
	}
	return scraper.New(scraper.Options{
		Headless:        cfg.Scraper.Headless,
		Timeout:         cfg.Scraper.Timeout,
		SettleDelay:     cfg.Scraper.SettleDelay,
		MaxTrackSeconds: cfg.Download.MaxTrackSeconds,
		InstallBrowsers: cfg.Scraper.InstallBrowsers,
	}, log)
}

// LoggerConfig maps the logging section onto the logger package
func LoggerConfig(cfg config.LoggingConfig) logger.Config {
	return logger.Config{
		Level:      cfg.Level,
		Format:     cfg.Format,
		Path:       cfg.Path,
		ErrorFile:  cfg.ErrorFile,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}
