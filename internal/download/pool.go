package download

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/yt-album-downloader/internal/model"
)

type poolResult struct {
	pos    int
	result model.DownloadResult
}

// runPool processes jobs on a fixed number of workers and returns one result
// per job in input order. Workers never fail the group, so one bad item does
// not stop the others. onResult, if set, sees results in completion order.
func runPool(ctx context.Context, workers int, jobs []Job, fetcher TrackFetcher, onResult func(model.DownloadResult)) []model.DownloadResult {
	if len(jobs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	queue := make(chan int)
	done := make(chan poolResult)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for pos := range queue {
				done <- poolResult{pos: pos, result: safeFetch(ctx, fetcher, jobs[pos])}
			}
			return nil
		})
	}

	go func() {
		for pos := range jobs {
			queue <- pos
		}
		close(queue)
	}()

	results := make([]model.DownloadResult, len(jobs))
	for range jobs {
		r := <-done
		results[r.pos] = r.result
		if onResult != nil {
			onResult(r.result)
		}
	}
	_ = g.Wait()
	return results
}

// safeFetch shields the pool from fetchers that panic
func safeFetch(ctx context.Context, fetcher TrackFetcher, job Job) (result model.DownloadResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.DownloadResult{
				SourceID: job.Identifier,
				Message:  fmt.Sprintf("Error downloading video from %s: panic: %v", job.Identifier, r),
			}
		}
	}()
	return fetcher.Fetch(ctx, job)
}
