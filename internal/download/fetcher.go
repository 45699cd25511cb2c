package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-album-downloader/internal/model"
	"github.com/ytget/yt-album-downloader/internal/platform"
	"github.com/ytget/yt-album-downloader/internal/tagging"
	"github.com/ytget/yt-album-downloader/internal/transcode"
)

// Output naming constants
const (
	OutputExtension = transcode.OutputExtension
	ArtistSeparator = " - "
	// RawInfix separates the stem from the random part of a raw stream name
	RawInfix = ".part-"
)

// JobMode selects output naming
type JobMode int

const (
	// JobAlbum writes {title}.mp3 into the album directory
	JobAlbum JobMode = iota
	// JobSingle writes {artist} - {title}.mp3 into the destination root
	JobSingle
)

// Job is the only input a worker receives
type Job struct {
	Index       int
	Identifier  string
	Directory   string
	Mode        JobMode
	Album       string
	TrackNumber int
	TracksCount int
	Names       *platform.NameRegistry
}

// Fetcher resolves, downloads, transcodes and tags single items
type Fetcher struct {
	source     videoSource
	transcoder transcode.Transcoder
	tagger     Tagger
	log        zerolog.Logger
}

// NewFetcher creates a fetcher backed by the platform client. tagger may be
// nil to skip tagging.
func NewFetcher(httpClient *http.Client, transcoder transcode.Transcoder, tagger Tagger, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		source:     &youtube.Client{HTTPClient: httpClient},
		transcoder: transcoder,
		tagger:     tagger,
		log:        log,
	}
}

// Fetch processes one job. Every failure, including a panic in the platform
// client, is turned into an unsuccessful result.
func (f *Fetcher) Fetch(ctx context.Context, job Job) (result model.DownloadResult) {
	pageURL := watchURL(job.Identifier)
	result = model.DownloadResult{SourceID: job.Identifier}
	log := f.log.With().Str("url", pageURL).Logger()

	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Message = fmt.Sprintf("Error downloading video from %s: panic: %v", pageURL, r)
			log.Error().Interface("panic", r).Msg("fetch panicked")
		}
	}()

	video, err := f.source.GetVideoContext(ctx, pageURL)
	if err != nil {
		return f.fail(result, log, &ResolutionError{Stage: StageManifest, URL: pageURL, Reason: describePlatformError(err), Original: err})
	}

	format, err := selectAudioStream(video.Formats)
	if err != nil {
		return f.fail(result, log, &ResolutionError{Stage: StageStream, URL: pageURL, Original: err})
	}

	title := platform.SanitizeFilename(video.Title)
	if title == "" {
		title = video.ID
	}
	artist := platform.SanitizeFilename(video.Author)
	result.Title, result.Artist = title, artist

	stem := title
	if job.Mode == JobSingle && artist != "" {
		stem = artist + ArtistSeparator + title
	}
	if job.Names != nil {
		stem = job.Names.Reserve(job.Directory, stem)
	}

	outPath := filepath.Join(job.Directory, stem+OutputExtension)

	rawPath, err := f.downloadStream(ctx, video, format, job.Directory, stem)
	result.RawPath = rawPath
	if err != nil {
		return f.fail(result, log, &ResolutionError{Stage: StageDownload, URL: pageURL, Original: err})
	}

	if err := f.transcoder.ExtractAudio(ctx, rawPath, outPath); err != nil {
		return f.fail(result, log, err)
	}

	if f.tagger != nil {
		track := tagging.Track{
			Title:     video.Title,
			Artist:    video.Author,
			SourceURL: pageURL,
		}
		if job.Mode == JobAlbum {
			track.Album = job.Album
			track.TrackNumber = job.TrackNumber
			track.TracksCount = job.TracksCount
		}
		if err := f.tagger.Tag(ctx, outPath, track); err != nil {
			log.Warn().Err(err).Str("file", outPath).Msg("could not write tags")
		}
	}

	result.Success = true
	result.OutputPath = outPath
	result.Message = fmt.Sprintf("Download successful for %s", video.Title)
	log.Info().Str("file", outPath).Msg("track ready")
	return result
}

// downloadStream copies the selected stream into a freshly created file in
// dir and returns its path. The file name is never one that existed before,
// so removing it later cannot touch anything the user owns. The path is
// returned even on error once the file exists.
func (f *Fetcher) downloadStream(ctx context.Context, video *youtube.Video, format *youtube.Format, dir, stem string) (string, error) {
	stream, _, err := f.source.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Close()

	file, err := os.CreateTemp(dir, stem+RawInfix+"*"+extensionFor(format))
	if err != nil {
		return "", fmt.Errorf("creating raw file: %w", err)
	}
	path := file.Name()

	if _, err := io.Copy(file, stream); err != nil {
		file.Close()
		return path, fmt.Errorf("copying stream: %w", err)
	}
	return path, file.Close()
}

func (f *Fetcher) fail(result model.DownloadResult, log zerolog.Logger, err error) model.DownloadResult {
	result.Success = false
	result.Message = fmt.Sprintf("Error downloading video from %s: %v", watchURL(result.SourceID), err)
	log.Error().Err(err).Msg("fetch failed")
	return result
}

// watchURL accepts either a bare id or a full URL
func watchURL(identifier string) string {
	if strings.HasPrefix(identifier, "http://") || strings.HasPrefix(identifier, "https://") {
		return identifier
	}
	return platform.WatchURL(identifier)
}
