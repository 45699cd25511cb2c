package main

import (
	"context"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/yt-album-downloader/internal/app"
	"github.com/ytget/yt-album-downloader/internal/config"
	"github.com/ytget/yt-album-downloader/internal/logger"
	"github.com/ytget/yt-album-downloader/internal/platform"
	"github.com/ytget/yt-album-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.yt-album-downloader"
)

func main() {
	// Config file and environment first; preferences override per batch
	base, err := config.Load("", nil)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("using default configuration")
		base = config.Default()
	}

	log := logger.Init(app.LoggerConfig(base.Logging))
	defer log.Close()
	log.Info().Str("version", version).Msg("YT Album Downloader starting")

	myApp := fyneapp.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAlbumTheme())

	myWindow := myApp.NewWindow(ui.AppTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDestinationRoot()); err != nil {
		log.Error().Err(err).Msg("failed to ensure destination root")
	}

	// Browsers are installed at most once per run
	installBrowsers := base.Scraper.InstallBrowsers
	newPipeline := func() *app.Pipeline {
		cfg := *base
		settings.ApplyTo(&cfg)
		cfg.Scraper.InstallBrowsers = installBrowsers
		installBrowsers = false
		return app.Build(&cfg, log.Logger)
	}
	httpClient := newPipeline().HTTPClient

	ctx, cancel := context.WithCancel(context.Background())
	myWindow.SetOnClosed(cancel)

	ui.NewRootUI(ctx, myWindow, settings, newPipeline, httpClient, log.WithComponent("ui").Logger)

	myWindow.ShowAndRun()
}
