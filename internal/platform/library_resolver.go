package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-album-downloader/internal/model"
)

// Timeout constants
const (
	DefaultLibraryResolveTimeout = 60 * time.Second
)

// Album naming constants
const (
	MinPrefixLength      = 10
	PlaylistNameTemplate = "Playlist %s"
)

// listFunc returns the raw items of a playlist in playlist order
type listFunc func(ctx context.Context, playlistID string) ([]model.PlaylistItem, error)

// LibraryResolver lists playlist items through the ytdlp library instead of a
// rendered browser page. The library does not report durations, so every item
// is kept with an unknown (zero) duration.
type LibraryResolver struct {
	timeout time.Duration
	list    listFunc
}

// NewLibraryResolver creates a resolver backed by the ytdlp library client
func NewLibraryResolver() *LibraryResolver {
	return &LibraryResolver{
		timeout: DefaultLibraryResolveTimeout,
		list:    listWithLibrary,
	}
}

// listWithLibrary fetches every item through ytdlp.GetPlaylistItemsAll
func listWithLibrary(ctx context.Context, playlistID string) ([]model.PlaylistItem, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}
	out := make([]model.PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return out, nil
}

// SetTimeout sets the timeout for one resolve call
func (r *LibraryResolver) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		r.timeout = timeout
	}
}

// Resolve lists the items of a playlist and derives an album name from the
// longest common prefix of the first two titles.
func (r *LibraryResolver) Resolve(ctx context.Context, playlistID string) (*model.ScrapedPlaylist, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("empty playlist ID")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	items, err := r.list(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	result := &model.ScrapedPlaylist{ID: playlistID}
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		it.URL = WatchURL(it.VideoID)
		result.Items = append(result.Items, it)
	}
	result.AlbumName = albumNameFromTitles(playlistID, result.Items)
	return result, nil
}

// albumNameFromTitles picks a shared title prefix, falling back to the id
func albumNameFromTitles(playlistID string, items []model.PlaylistItem) string {
	if len(items) > 1 {
		prefix := strings.TrimRight(findCommonPrefix(items[0].Title, items[1].Title), " -–|:")
		if len(prefix) > MinPrefixLength {
			return SanitizeFilename(prefix)
		}
	}
	return fmt.Sprintf(PlaylistNameTemplate, playlistID)
}

// findCommonPrefix finds the common prefix between two strings
func findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
