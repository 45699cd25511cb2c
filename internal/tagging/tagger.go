package tagging

import (
	"context"
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// ID3 frame constants
const (
	frameTrack        = "TRCK"
	commentLanguage   = "eng"
	sourceDescription = "source"
)

// Track is the metadata written into an output file
type Track struct {
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	TracksCount int
	SourceURL   string
}

// TagError reports a failure to read or write ID3 tags
type TagError struct {
	Message  string
	Path     string
	Original error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Original)
}

func (e *TagError) Unwrap() error {
	return e.Original
}

// Tagger writes ID3v2 tags into MP3 files
type Tagger struct{}

// NewTagger creates a tagger
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag writes title, artist, album, track number and source URL into path.
// Existing frames are kept unless overwritten.
func (t *Tagger) Tag(ctx context.Context, path string, track Track) error {
	if err := ctx.Err(); err != nil {
		return &TagError{Message: "context cancelled", Path: path, Original: err}
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		// Unparseable or missing tag: start fresh
		tag, err = id3v2.Open(path, id3v2.Options{Parse: false})
		if err != nil {
			return &TagError{Message: "failed to open MP3 file", Path: path, Original: err}
		}
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	if track.Title != "" {
		tag.SetTitle(track.Title)
	}
	if track.Artist != "" {
		tag.SetArtist(track.Artist)
	}
	if track.Album != "" {
		tag.SetAlbum(track.Album)
	}
	if track.TrackNumber > 0 {
		trackStr := fmt.Sprintf("%d", track.TrackNumber)
		if track.TracksCount > 0 {
			trackStr = fmt.Sprintf("%d/%d", track.TrackNumber, track.TracksCount)
		}
		tag.AddTextFrame(frameTrack, id3v2.EncodingUTF8, trackStr)
	}
	if track.SourceURL != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    commentLanguage,
			Description: sourceDescription,
			Text:        track.SourceURL,
		})
	}

	if err := tag.Save(); err != nil {
		return &TagError{Message: "failed to save MP3 metadata", Path: path, Original: err}
	}
	return nil
}
