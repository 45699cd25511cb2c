package scraper

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-album-downloader/internal/model"
	"github.com/ytget/yt-album-downloader/internal/platform"
)

// Defaults
const (
	DefaultTimeout         = 10 * time.Second
	DefaultSettleDelay     = 2500 * time.Millisecond
	DefaultMaxTrackSeconds = 900
)

// Options configures a Scraper
type Options struct {
	Headless        bool
	Timeout         time.Duration
	SettleDelay     time.Duration
	MaxTrackSeconds int
	InstallBrowsers bool
}

// DefaultOptions returns headless scraping with the standard limits
func DefaultOptions() Options {
	return Options{
		Headless:        true,
		Timeout:         DefaultTimeout,
		SettleDelay:     DefaultSettleDelay,
		MaxTrackSeconds: DefaultMaxTrackSeconds,
	}
}

// Scraper resolves playlist identifiers by rendering the playlist page in a
// headless browser.
type Scraper struct {
	opts Options
	open func(sessionOptions) (session, error)
	log  zerolog.Logger
}

// New creates a scraper. When InstallBrowsers is set the Chromium build is
// fetched up front; a failed install is logged and scraping is still tried.
func New(opts Options, log zerolog.Logger) *Scraper {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.InstallBrowsers {
		if err := installBrowsers(); err != nil {
			log.Error().Err(err).Msg("could not install playwright browsers")
		}
	}
	return &Scraper{opts: opts, open: openPlaywrightSession, log: log}
}

// Resolve scrapes one playlist. The browser session is always released before
// Resolve returns. A render timeout yields a Partial playlist with whatever was
// captured; only a session that cannot be started or navigated is an error.
func (s *Scraper) Resolve(ctx context.Context, playlistID string) (*model.ScrapedPlaylist, error) {
	log := s.log.With().Str("playlist", playlistID).Logger()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess, err := s.open(sessionOptions{
		Headless:    s.opts.Headless,
		Timeout:     s.opts.Timeout,
		SettleDelay: s.opts.SettleDelay,
	})
	if err != nil {
		log.Error().Err(err).Msg("browser session failed to start")
		return nil, err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			log.Debug().Err(cerr).Msg("browser session close")
		}
	}()

	snap, err := sess.Snapshot(ctx, playlistID, platform.PlaylistURL(playlistID))
	if err != nil {
		if ctx.Err() != nil {
			log.Info().Msg("playlist resolution cancelled")
			return nil, ctx.Err()
		}
		log.Error().Err(err).Msg("playlist page could not be read")
		return nil, err
	}
	if snap.Timeout != nil {
		log.Error().Err(snap.Timeout).Msg("playlist page did not finish rendering")
	}

	result := buildPlaylist(playlistID, snap, s.opts.MaxTrackSeconds, log)
	log.Info().
		Str("album", result.AlbumName).
		Int("items", len(result.Items)).
		Bool("partial", result.Partial).
		Msg("playlist resolved")
	return result, nil
}
