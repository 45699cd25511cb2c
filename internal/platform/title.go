package platform

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ytget/yt-album-downloader/internal/model"
)

// Title lookup constants
const (
	TitleSelector   = "title"
	SiteTitleSuffix = " - YouTube"
	UserAgent       = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// LookupTitle fetches the watch or playlist page for id and returns its
// <title> text without the site suffix.
func LookupTitle(ctx context.Context, client *http.Client, id string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	pageURL := WatchURL(id)
	if model.ClassifyIdentifier(id) == model.KindPlaylist {
		pageURL = PlaylistURL(id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	return ExtractTitle(doc), nil
}

// ExtractTitle returns the trimmed <title> of a parsed page
func ExtractTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find(TitleSelector).First().Text())
	return strings.TrimSpace(strings.TrimSuffix(title, SiteTitleSuffix))
}
