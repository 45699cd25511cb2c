package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ytget/yt-album-downloader/internal/platform"
)

// Album header constants
const (
	headerSelector = "yt-formatted-string"
	albumMarker    = "Album"
	nameSeparator  = " - "
)

var headerSplit = regexp.MustCompile("•|-")

// RefineAlbumName derives "{artist} - {album}" from the rendered page's header
// strings. Headers mentioning "Album" are split on bullets and hyphens; the
// artist is the first part of the second such header and the album the last
// part of the first. Any shortfall returns provisional unchanged.
func RefineAlbumName(html, provisional string) string {
	if html == "" {
		return provisional
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return provisional
	}

	var meta [][]string
	doc.Find(headerSelector).Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if strings.Contains(text, albumMarker) {
			meta = append(meta, headerSplit.Split(text, -1))
		}
	})
	if len(meta) < 2 || len(meta[0]) == 0 || len(meta[1]) == 0 {
		return provisional
	}

	artist := strings.TrimSpace(meta[1][0])
	album := strings.TrimSpace(meta[0][len(meta[0])-1])
	if artist == "" || album == "" {
		return provisional
	}

	name := platform.SanitizeFilename(artist + nameSeparator + album)
	if name == "" {
		return provisional
	}
	return name
}
