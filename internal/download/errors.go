package download

import (
	"errors"
	"fmt"

	"github.com/kkdai/youtube/v2"
)

// Resolution stages
const (
	StageManifest = "manifest"
	StageStream   = "stream selection"
	StageDownload = "download"
)

// ErrEmptyPlaylist is reported for a playlist whose resolver returned nothing
var ErrEmptyPlaylist = errors.New("playlist resolver returned no playlist")

// ResolutionError reports a failure to obtain media for one item
type ResolutionError struct {
	Stage    string
	URL      string
	Reason   string
	Original error
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("%s failed for %s", e.Stage, e.URL)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Original != nil {
		msg += ": " + e.Original.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Original
}

// describePlatformError gives a short human reason for known client errors
func describePlatformError(err error) string {
	var statusErr *youtube.ErrPlayabiltyStatus
	switch {
	case errors.Is(err, youtube.ErrVideoPrivate):
		return "video is private"
	case errors.Is(err, youtube.ErrLoginRequired):
		return "login required"
	case errors.Is(err, youtube.ErrNotPlayableInEmbed):
		return "video cannot be played outside the site"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("not playable (%s)", statusErr.Status)
	default:
		return ""
	}
}
