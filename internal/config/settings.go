package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-album-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDestinationRoot = "destination_root"
	KeyLibraryRoot     = "library_root"
	KeyMaxParallel     = "max_parallel_downloads"
	KeyScraperMode     = "scraper_mode"
	KeyTagFiles        = "tag_files"
)

// Default values
const (
	DefaultMaxParallel = 10
	DefaultScraperMode = ScraperModeBrowser
	DefaultTagFiles    = true
	FallbackRoot       = "/tmp/music"
)

// Settings stores the desktop app's user choices in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDestinationRoot returns the root directory downloads are written to
func (s *Settings) GetDestinationRoot() string {
	dir := s.app.Preferences().String(KeyDestinationRoot)
	if dir == "" {
		defaultDir, err := platform.GetHomeMusicDir()
		if err != nil {
			defaultDir = FallbackRoot
		}
		s.SetDestinationRoot(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDestinationRoot sets the destination root
func (s *Settings) SetDestinationRoot(dir string) {
	s.app.Preferences().SetString(KeyDestinationRoot, dir)
}

// GetLibraryRoot returns the folder shown in the library tab. It follows the
// destination root until the user picks another folder.
func (s *Settings) GetLibraryRoot() string {
	if dir := s.app.Preferences().String(KeyLibraryRoot); dir != "" {
		return dir
	}
	return s.GetDestinationRoot()
}

// SetLibraryRoot sets the library folder
func (s *Settings) SetLibraryRoot(dir string) {
	s.app.Preferences().SetString(KeyLibraryRoot, dir)
}

// GetMaxParallelDownloads returns the worker pool size
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelDownloads sets the worker pool size
func (s *Settings) SetMaxParallelDownloads(count int) {
	if count < MinWorkers {
		count = MinWorkers
	}
	if count > MaxWorkers {
		count = MaxWorkers
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetScraperMode returns browser or library
func (s *Settings) GetScraperMode() string {
	mode := s.app.Preferences().String(KeyScraperMode)
	if mode != ScraperModeBrowser && mode != ScraperModeLibrary {
		return DefaultScraperMode
	}
	return mode
}

// SetScraperMode sets the playlist resolver mode
func (s *Settings) SetScraperMode(mode string) {
	if mode != ScraperModeLibrary {
		mode = ScraperModeBrowser
	}
	s.app.Preferences().SetString(KeyScraperMode, mode)
}

// GetTagFiles returns whether ID3 tags are written after transcoding
func (s *Settings) GetTagFiles() bool {
	return s.app.Preferences().BoolWithFallback(KeyTagFiles, DefaultTagFiles)
}

// SetTagFiles sets whether ID3 tags are written
func (s *Settings) SetTagFiles(enabled bool) {
	s.app.Preferences().SetBool(KeyTagFiles, enabled)
}

// ApplyTo overlays the stored preferences on a loaded configuration
func (s *Settings) ApplyTo(cfg *Config) {
	cfg.Download.Directory = s.GetDestinationRoot()
	cfg.Download.Workers = s.GetMaxParallelDownloads()
	cfg.Download.TagFiles = s.GetTagFiles()
	cfg.Scraper.Mode = s.GetScraperMode()
}
