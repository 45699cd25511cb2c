package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/yt-album-downloader/internal/platform"
)

// Scraper modes
const (
	ScraperModeBrowser = "browser"
	ScraperModeLibrary = "library"
)

// Limits
const (
	MinWorkers = 1
	MaxWorkers = 32
)

// EnvPrefix is prepended to every environment override, e.g. ALBUMDL_DOWNLOAD_WORKERS
const EnvPrefix = "ALBUMDL"

// Config holds all application configuration.
type Config struct {
	Download  DownloadConfig  `mapstructure:"download"`
	Transcode TranscodeConfig `mapstructure:"transcode"`
	Scraper   ScraperConfig   `mapstructure:"scraper"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DownloadConfig holds batch download settings.
type DownloadConfig struct {
	Directory       string `mapstructure:"directory"`
	Workers         int    `mapstructure:"workers"`
	MaxTrackSeconds int    `mapstructure:"max_track_seconds"`
	TagFiles        bool   `mapstructure:"tag_files"`
}

// TranscodeConfig holds encoder settings.
type TranscodeConfig struct {
	FFmpegPath  string `mapstructure:"ffmpeg_path"`
	BitrateKbps int    `mapstructure:"bitrate_kbps"`
	SampleRate  int    `mapstructure:"sample_rate"`
}

// ScraperConfig holds playlist page scraping settings.
type ScraperConfig struct {
	Mode            string        `mapstructure:"mode"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Headless        bool          `mapstructure:"headless"`
	InstallBrowsers bool          `mapstructure:"install_browsers"`
	SettleDelay     time.Duration `mapstructure:"settle_delay"`
}

// HTTPConfig holds settings for the platform HTTP client.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	ErrorFile  string `mapstructure:"error_file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// flagKeys maps CLI flag names to configuration keys
var flagKeys = map[string]string{
	"dest":      "download.directory",
	"workers":   "download.workers",
	"mode":      "scraper.mode",
	"log-level": "logging.level",
	"ffmpeg":    "transcode.ffmpeg_path",
}

// Default returns a Config with default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads configuration from .env, file, environment and flags.
// Priority: flags > environment variables > config file > defaults
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("album-dl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.config/album-dl")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
		// --no-tags is inverted so it cannot be bound directly
		if f := flags.Lookup("no-tags"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("download.tag_files", false)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks and normalises the configuration in place
func (c *Config) Validate() error {
	if c.Download.Workers < MinWorkers || c.Download.Workers > MaxWorkers {
		return fmt.Errorf("download.workers must be between %d and %d, got %d", MinWorkers, MaxWorkers, c.Download.Workers)
	}
	if c.Download.MaxTrackSeconds < 0 {
		return fmt.Errorf("download.max_track_seconds must not be negative")
	}
	switch c.Scraper.Mode {
	case ScraperModeBrowser, ScraperModeLibrary:
	default:
		return fmt.Errorf("scraper.mode must be %q or %q, got %q", ScraperModeBrowser, ScraperModeLibrary, c.Scraper.Mode)
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("scraper.timeout must be positive")
	}
	if c.Transcode.BitrateKbps <= 0 || c.Transcode.SampleRate <= 0 {
		return fmt.Errorf("transcode bitrate and sample rate must be positive")
	}
	if c.Download.Directory != "" {
		abs, err := filepath.Abs(c.Download.Directory)
		if err != nil {
			return fmt.Errorf("invalid download.directory: %w", err)
		}
		c.Download.Directory = abs
	}
	return nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	musicDir, err := platform.GetHomeMusicDir()
	if err != nil {
		musicDir = "."
	}

	// Download defaults
	v.SetDefault("download.directory", musicDir)
	v.SetDefault("download.workers", 10)
	v.SetDefault("download.max_track_seconds", 900)
	v.SetDefault("download.tag_files", true)

	// Transcode defaults
	v.SetDefault("transcode.ffmpeg_path", "ffmpeg")
	v.SetDefault("transcode.bitrate_kbps", 3000)
	v.SetDefault("transcode.sample_rate", 44100)

	// Scraper defaults
	v.SetDefault("scraper.mode", ScraperModeBrowser)
	v.SetDefault("scraper.timeout", 10*time.Second)
	v.SetDefault("scraper.headless", true)
	v.SetDefault("scraper.install_browsers", false)
	v.SetDefault("scraper.settle_delay", 2500*time.Millisecond)

	// HTTP defaults
	v.SetDefault("http.timeout", 30*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.path", "")
	v.SetDefault("logging.error_file", "error.log")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)
	v.SetDefault("logging.compress", true)
}
