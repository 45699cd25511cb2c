package download

import (
	"context"
	"io"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/yt-album-downloader/internal/model"
	"github.com/ytget/yt-album-downloader/internal/tagging"
)

// PlaylistResolver turns a playlist identifier into an ordered track list.
// Implemented by the browser scraper and the library resolver.
type PlaylistResolver interface {
	Resolve(ctx context.Context, playlistID string) (*model.ScrapedPlaylist, error)
}

// TrackFetcher downloads and transcodes one item. It never returns an error:
// every failure is reported in the result.
type TrackFetcher interface {
	Fetch(ctx context.Context, job Job) model.DownloadResult
}

// Tagger writes metadata into a finished file
type Tagger interface {
	Tag(ctx context.Context, path string, track tagging.Track) error
}

// Listener receives batch notifications. OnStatus follows the batch through
// its lifecycle and ends with a finished status. OnProgress reports how many
// queue entries a finished sub-batch covered; OnFinished fires once per batch.
type Listener interface {
	OnStatus(kind model.BatchKind, status model.BatchStatus)
	OnProgress(entries int)
	OnFinished(report *model.BatchReport)
}

// ListenerFuncs adapts plain functions to Listener; nil fields are skipped
type ListenerFuncs struct {
	Status   func(kind model.BatchKind, status model.BatchStatus)
	Progress func(entries int)
	Finished func(report *model.BatchReport)
}

// OnStatus implements Listener
func (l ListenerFuncs) OnStatus(kind model.BatchKind, status model.BatchStatus) {
	if l.Status != nil {
		l.Status(kind, status)
	}
}

// OnProgress implements Listener
func (l ListenerFuncs) OnProgress(entries int) {
	if l.Progress != nil {
		l.Progress(entries)
	}
}

// OnFinished implements Listener
func (l ListenerFuncs) OnFinished(report *model.BatchReport) {
	if l.Finished != nil {
		l.Finished(report)
	}
}

// videoSource is the part of the platform client the fetcher uses
type videoSource interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}
