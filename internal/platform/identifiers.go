package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// URL templates
const (
	PlaylistURLTemplate = "https://www.youtube.com/playlist?list=%s"
	WatchURLTemplate    = "https://www.youtube.com/watch?v=%s"
	SiteOrigin          = "https://www.youtube.com"
)

// URL parameters
const (
	PlaylistParam  = "list"
	VideoParam     = "v"
	ShortLinkHost  = "youtu.be"
	ParamSeparator = "&"
)

// PlaylistURL returns the canonical playlist page URL
func PlaylistURL(id string) string {
	return fmt.Sprintf(PlaylistURLTemplate, id)
}

// WatchURL returns the canonical watch page URL
func WatchURL(id string) string {
	return fmt.Sprintf(WatchURLTemplate, id)
}

// ParseIdentifier turns user input into a bare identifier. Accepted inputs:
// a bare id, a watch URL (v=), a playlist URL or any URL carrying list=,
// and youtu.be short links. A list= parameter wins over v=.
func ParseIdentifier(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if !strings.Contains(input, "/") && !strings.Contains(input, "=") {
		return input, nil
	}

	u, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", input, err)
	}

	q := u.Query()
	if id := q.Get(PlaylistParam); id != "" {
		return id, nil
	}
	if id := q.Get(VideoParam); id != "" {
		return id, nil
	}
	if strings.EqualFold(u.Host, ShortLinkHost) {
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
	}

	// Bare "key=value" fragments: take what follows the first '='.
	if i := strings.Index(input, "="); i >= 0 {
		id := input[i+1:]
		if j := strings.Index(id, ParamSeparator); j >= 0 {
			id = id[:j]
		}
		if id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("could not extract identifier from %q", input)
}

// AbsoluteURL prefixes site-relative hrefs with the site origin
func AbsoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return SiteOrigin + href
}

// VideoIDFromURL extracts the v= parameter from a watch URL
func VideoIDFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get(VideoParam)
}
