package scraper

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-album-downloader/internal/model"
	"github.com/ytget/yt-album-downloader/internal/platform"
)

// rowSnapshot is what one playlist row rendered
type rowSnapshot struct {
	Href          string
	Title         string
	DurationLabel string
	HasDuration   bool
}

// pageSnapshot is everything read from the rendered page before the
// session is released
type pageSnapshot struct {
	Rows []rowSnapshot

	// Flat lists used when the page has no recognisable rows
	Links     []string
	Durations []string

	FirstText string
	HTML      string
	Timeout   *ScrapeTimeoutError
}

// buildPlaylist turns a snapshot into a filtered playlist. Rows keep each
// link paired with the duration from the same container; the flat fallback
// pairs by position and records a warning when the counts differ.
func buildPlaylist(id string, snap *pageSnapshot, maxSeconds int, log zerolog.Logger) *model.ScrapedPlaylist {
	result := &model.ScrapedPlaylist{ID: id}
	if snap.Timeout != nil {
		result.Partial = true
		result.Warnings = append(result.Warnings, snap.Timeout.Error())
	}

	var items []model.PlaylistItem
	if len(snap.Rows) > 0 {
		items = itemsFromRows(snap.Rows, result, log)
	} else {
		items = itemsFromFlatLists(snap.Links, snap.Durations, result, log)
	}

	result.Items = model.FilterByDuration(items, maxSeconds)
	if dropped := len(items) - len(result.Items); dropped > 0 {
		log.Debug().Str("playlist", id).Int("dropped", dropped).Int("max_seconds", maxSeconds).Msg("skipping long entries")
	}

	provisional := platform.Sanitize(strings.TrimSpace(snap.FirstText))
	result.AlbumName = strings.TrimSpace(RefineAlbumName(snap.HTML, provisional))
	if result.AlbumName == "" {
		result.AlbumName = fmt.Sprintf(platform.PlaylistNameTemplate, id)
	}
	return result
}

func itemsFromRows(rows []rowSnapshot, result *model.ScrapedPlaylist, log zerolog.Logger) []model.PlaylistItem {
	items := make([]model.PlaylistItem, 0, len(rows))
	for i, row := range rows {
		if row.Href == "" {
			continue
		}
		if !row.HasDuration {
			warn(result, log, fmt.Sprintf("row %d has no duration badge, skipped", i+1))
			continue
		}
		seconds, err := ParseDuration(row.DurationLabel)
		if err != nil {
			warn(result, log, fmt.Sprintf("row %d: %v, skipped", i+1, err))
			continue
		}
		u := platform.AbsoluteURL(row.Href)
		items = append(items, model.PlaylistItem{
			URL:             u,
			VideoID:         platform.VideoIDFromURL(u),
			Title:           strings.TrimSpace(row.Title),
			DurationSeconds: seconds,
		})
	}
	return items
}

func itemsFromFlatLists(links, durations []string, result *model.ScrapedPlaylist, log zerolog.Logger) []model.PlaylistItem {
	var hrefs []string
	for _, l := range links {
		if l != "" {
			hrefs = append(hrefs, l)
		}
	}
	if len(hrefs) != len(durations) {
		warn(result, log, fmt.Sprintf("found %d links but %d durations, pairing the first %d", len(hrefs), len(durations), min(len(hrefs), len(durations))))
	}

	n := min(len(hrefs), len(durations))
	items := make([]model.PlaylistItem, 0, n)
	for i := 0; i < n; i++ {
		seconds, err := ParseDuration(durations[i])
		if err != nil {
			warn(result, log, fmt.Sprintf("entry %d: %v, skipped", i+1, err))
			continue
		}
		u := platform.AbsoluteURL(hrefs[i])
		items = append(items, model.PlaylistItem{
			URL:             u,
			VideoID:         platform.VideoIDFromURL(u),
			DurationSeconds: seconds,
		})
	}
	return items
}

func warn(result *model.ScrapedPlaylist, log zerolog.Logger, msg string) {
	result.Warnings = append(result.Warnings, msg)
	log.Warn().Str("playlist", result.ID).Msg(msg)
}
