package download

import (
	"errors"
	"mime"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// Stream selection constants
const (
	AudioMimePrefix  = "audio/"
	DefaultExtension = ".bin"
)

var audioExtensions = map[string]string{
	"audio/mp4":  ".m4a",
	"audio/webm": ".webm",
	"audio/ogg":  ".ogg",
}

var errNoAudioStream = errors.New("no audio-only stream available")

// selectAudioStream picks the audio-only format with the highest average
// bitrate, falling back to the nominal bitrate when no average is reported.
// On ties the earlier format in platform order wins.
func selectAudioStream(formats youtube.FormatList) (*youtube.Format, error) {
	var best *youtube.Format
	bestRate := -1
	for i := range formats {
		f := &formats[i]
		if !isAudioOnly(f) {
			continue
		}
		rate := f.AverageBitrate
		if rate <= 0 {
			rate = f.Bitrate
		}
		if rate > bestRate {
			best, bestRate = f, rate
		}
	}
	if best == nil {
		return nil, errNoAudioStream
	}
	return best, nil
}

func isAudioOnly(f *youtube.Format) bool {
	return strings.HasPrefix(f.MimeType, AudioMimePrefix) && f.Width == 0 && f.Height == 0
}

// extensionFor maps a format's MIME type to a file extension
func extensionFor(f *youtube.Format) string {
	mediaType, _, err := mime.ParseMediaType(f.MimeType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(f.MimeType, ";", 2)[0])
	}
	if ext, ok := audioExtensions[mediaType]; ok {
		return ext
	}
	return DefaultExtension
}
