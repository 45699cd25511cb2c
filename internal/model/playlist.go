package model

// PlaylistItem is one track discovered on a playlist page
type PlaylistItem struct {
	URL             string
	VideoID         string
	Title           string
	DurationSeconds int
}

// ScrapedPlaylist is the outcome of resolving one playlist identifier.
// It lives for the duration of a single batch and is never persisted.
type ScrapedPlaylist struct {
	ID        string
	AlbumName string
	Items     []PlaylistItem

	// Partial is set when the page did not finish rendering in time and the
	// item list may be incomplete.
	Partial  bool
	Warnings []string
}

// URLs returns the item URLs in playlist order
func (p *ScrapedPlaylist) URLs() []string {
	if p == nil {
		return nil
	}
	urls := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		urls = append(urls, it.URL)
	}
	return urls
}

// FilterByDuration keeps items strictly shorter than maxSeconds. Items with an
// unknown duration (zero) are kept. maxSeconds <= 0 disables the filter.
func FilterByDuration(items []PlaylistItem, maxSeconds int) []PlaylistItem {
	if maxSeconds <= 0 {
		return items
	}
	kept := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		if it.DurationSeconds < maxSeconds {
			kept = append(kept, it)
		}
	}
	return kept
}
