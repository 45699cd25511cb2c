package download

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-album-downloader/internal/model"
	"github.com/ytget/yt-album-downloader/internal/platform"
)

// Coordinator defaults
const (
	DefaultWorkers = 10
	BatchIDPrefix  = "batch-"
)

// Coordinator runs batches: it resolves playlists, lays out album
// directories, fans items out to a worker pool and cleans up afterwards.
type Coordinator struct {
	resolver PlaylistResolver
	fetcher  TrackFetcher
	workers  int
	log      zerolog.Logger

	mu       sync.RWMutex
	onResult func(model.DownloadResult)
}

// NewCoordinator creates a coordinator. workers <= 0 uses DefaultWorkers.
func NewCoordinator(resolver PlaylistResolver, fetcher TrackFetcher, workers int, log zerolog.Logger) *Coordinator {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Coordinator{
		resolver: resolver,
		fetcher:  fetcher,
		workers:  workers,
		log:      log,
	}
}

// SetResultCallback sets a function called for every finished item. It may
// be called from several goroutines at once.
func (c *Coordinator) SetResultCallback(callback func(model.DownloadResult)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResult = callback
}

// Download runs one batch synchronously and returns its report
func (c *Coordinator) Download(ctx context.Context, req model.BatchRequest, root string) *model.BatchReport {
	return c.run(ctx, req, root, nil)
}

func (c *Coordinator) run(ctx context.Context, req model.BatchRequest, root string, listener Listener) *model.BatchReport {
	report := &model.BatchReport{
		ID:        generateBatchID(),
		Kind:      req.Kind,
		Root:      root,
		Requested: len(req.Identifiers),
		StartedAt: time.Now(),
	}
	log := c.log.With().Str("batch", report.ID).Str("kind", req.Kind.String()).Logger()
	setStatus := func(status model.BatchStatus) {
		log.Debug().Str("status", status.String()).Bool("active", status.IsActive()).Msg("batch status")
		if listener != nil {
			listener.OnStatus(req.Kind, status)
		}
	}

	setStatus(model.BatchStatusPending)
	log.Info().Int("identifiers", report.Requested).Str("root", root).Msg("batch started")

	if root == "" {
		for _, id := range req.Identifiers {
			report.Results = append(report.Results, model.DownloadResult{SourceID: id, Message: "destination root is not set"})
		}
		log.Error().Msg("destination root is not set")
	} else {
		switch req.Kind {
		case model.KindPlaylist:
			c.downloadPlaylists(ctx, req.Identifiers, root, report, setStatus, log)
		default:
			c.downloadSingles(ctx, req.Identifiers, root, report, setStatus, log)
		}
	}

	report.FinishedAt = time.Now()
	log.Info().
		Int("succeeded", report.Succeeded()).
		Int("failed", report.Failed()).
		Dur("took", report.Duration()).
		Str("status", report.Status().String()).
		Msg("batch finished")
	setStatus(report.Status())
	return report
}

// Start runs a batch on its own goroutine. The listener's OnFinished fires
// exactly once, after which the report is also delivered on the channel.
func (c *Coordinator) Start(ctx context.Context, req model.BatchRequest, root string, listener Listener) <-chan *model.BatchReport {
	out := make(chan *model.BatchReport, 1)
	go func() {
		defer close(out)
		report := c.run(ctx, req, root, listener)
		if listener != nil {
			listener.OnFinished(report)
			listener.OnProgress(len(req.Identifiers))
		}
		out <- report
	}()
	return out
}

// RunQueue splits a mixed queue into its single-track and playlist parts and
// runs both concurrently. Each non-empty part reports OnFinished followed by
// OnProgress with the number of queue entries it covered. The returned
// channel yields each report and is closed when both parts are done.
func (c *Coordinator) RunQueue(ctx context.Context, entries []model.QueueEntry, root string, listener Listener) <-chan *model.BatchReport {
	singles, playlists := model.SplitQueue(entries)
	out := make(chan *model.BatchReport, 2)

	var wg sync.WaitGroup
	for _, req := range []model.BatchRequest{singles, playlists} {
		if req.IsEmpty() {
			continue
		}
		wg.Add(1)
		go func(req model.BatchRequest) {
			defer wg.Done()
			report := <-c.Start(ctx, req, root, listener)
			out <- report
		}(req)
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// downloadSingles writes each item straight into root and removes only the
// raw file that item produced
func (c *Coordinator) downloadSingles(ctx context.Context, ids []string, root string, report *model.BatchReport, setStatus func(model.BatchStatus), log zerolog.Logger) {
	if err := platform.CreateDirectoryIfNotExists(root); err != nil {
		log.Error().Err(err).Str("dir", root).Msg("cannot create destination root")
	}

	names := platform.NewNameRegistry()
	jobs := make([]Job, 0, len(ids))
	for i, id := range ids {
		jobs = append(jobs, Job{
			Index:      i,
			Identifier: id,
			Directory:  root,
			Mode:       JobSingle,
			Names:      names,
		})
	}

	setStatus(model.BatchStatusRunning)
	results := runPool(ctx, c.workers, jobs, c.fetcher, c.resultCallback())
	for _, res := range results {
		if err := platform.RemoveIfExists(res.RawPath); err != nil {
			log.Debug().Err(err).Str("file", res.RawPath).Msg("could not remove raw download")
		}
	}
	report.Results = append(report.Results, results...)
}

// downloadPlaylists resolves and downloads each playlist in turn. A playlist
// that cannot be resolved contributes no results.
func (c *Coordinator) downloadPlaylists(ctx context.Context, ids []string, root string, report *model.BatchReport, setStatus func(model.BatchStatus), log zerolog.Logger) {
	for _, id := range ids {
		album := c.downloadPlaylist(ctx, id, root, report, setStatus, log.With().Str("playlist", id).Logger())
		report.Albums = append(report.Albums, album)
	}
}

func (c *Coordinator) downloadPlaylist(ctx context.Context, id, root string, report *model.BatchReport, setStatus func(model.BatchStatus), log zerolog.Logger) model.AlbumReport {
	album := model.AlbumReport{PlaylistID: id}

	setStatus(model.BatchStatusResolving)
	playlist, err := c.resolver.Resolve(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("playlist could not be resolved")
		album.Error = err.Error()
		return album
	}
	if playlist == nil {
		log.Error().Err(ErrEmptyPlaylist).Msg("playlist could not be resolved")
		album.Error = ErrEmptyPlaylist.Error()
		return album
	}
	log.Debug().Strs("tracks", playlist.URLs()).Msg("playlist tracks")

	album.Name = platform.SanitizeFilename(playlist.AlbumName)
	if album.Name == "" {
		album.Name = fmt.Sprintf(platform.PlaylistNameTemplate, id)
	}
	album.Items = len(playlist.Items)
	album.Partial = playlist.Partial
	album.Warnings = playlist.Warnings
	album.Directory = filepath.Join(root, album.Name)

	if err := platform.CreateDirectoryIfNotExists(album.Directory); err != nil {
		log.Error().Err(err).Str("dir", album.Directory).Msg("cannot create album directory")
		album.Error = err.Error()
		for _, item := range playlist.Items {
			report.Results = append(report.Results, model.DownloadResult{
				SourceID: item.URL,
				Message:  fmt.Sprintf("Error downloading video from %s: %v", item.URL, err),
			})
		}
		return album
	}

	names := platform.NewNameRegistry()
	jobs := make([]Job, 0, len(playlist.Items))
	for i, item := range playlist.Items {
		jobs = append(jobs, Job{
			Index:       i,
			Identifier:  item.URL,
			Directory:   album.Directory,
			Mode:        JobAlbum,
			Album:       album.Name,
			TrackNumber: i + 1,
			TracksCount: len(playlist.Items),
			Names:       names,
		})
	}

	log.Info().Str("album", album.Name).Int("items", len(jobs)).Msg("downloading album")
	setStatus(model.BatchStatusRunning)
	results := runPool(ctx, c.workers, jobs, c.fetcher, c.resultCallback())

	// Every worker has returned; only finished .mp3 files stay
	removed := platform.CleanupDirectory(album.Directory, OutputExtension, log)
	log.Debug().Int("removed", removed).Str("dir", album.Directory).Msg("album directory cleaned")

	report.Results = append(report.Results, results...)
	return album
}

func (c *Coordinator) resultCallback() func(model.DownloadResult) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onResult
}

// generateBatchID generates a unique, time-ordered batch ID
func generateBatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(BatchIDPrefix+"%d", time.Now().UnixNano())
	}
	return BatchIDPrefix + id.String()
}
