package download

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-album-downloader/internal/model"
)

// fetchFunc adapts a function to TrackFetcher
type fetchFunc func(ctx context.Context, job Job) model.DownloadResult

func (f fetchFunc) Fetch(ctx context.Context, job Job) model.DownloadResult {
	return f(ctx, job)
}

func jobsFor(ids ...string) []Job {
	jobs := make([]Job, 0, len(ids))
	for i, id := range ids {
		jobs = append(jobs, Job{Index: i, Identifier: id})
	}
	return jobs
}

func TestRunPool_FailureIsolation(t *testing.T) {
	fetcher := fetchFunc(func(_ context.Context, job Job) model.DownloadResult {
		if job.Identifier == "b" {
			return model.DownloadResult{SourceID: job.Identifier, Message: "Error downloading video from b: boom"}
		}
		return model.DownloadResult{SourceID: job.Identifier, Success: true}
	})

	results := runPool(context.Background(), 10, jobsFor("a", "b", "c"), fetcher, nil)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{results[0].SourceID, results[1].SourceID, results[2].SourceID})
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.True(t, results[2].Success)
}

func TestRunPool_BoundedConcurrency(t *testing.T) {
	var inFlight, peak int32
	fetcher := fetchFunc(func(_ context.Context, job Job) model.DownloadResult {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return model.DownloadResult{SourceID: job.Identifier, Success: true}
	})

	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%d", i)
	}
	results := runPool(context.Background(), 3, jobsFor(ids...), fetcher, nil)

	assert.Len(t, results, 12)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestRunPool_CallbackPerResult(t *testing.T) {
	fetcher := fetchFunc(func(_ context.Context, job Job) model.DownloadResult {
		return model.DownloadResult{SourceID: job.Identifier, Success: true}
	})

	var mu sync.Mutex
	seen := map[string]bool{}
	runPool(context.Background(), 2, jobsFor("a", "b", "c", "d"), fetcher, func(r model.DownloadResult) {
		mu.Lock()
		defer mu.Unlock()
		seen[r.SourceID] = true
	})

	assert.Len(t, seen, 4)
}

func TestRunPool_PanicBecomesFailure(t *testing.T) {
	fetcher := fetchFunc(func(_ context.Context, job Job) model.DownloadResult {
		if job.Identifier == "bad" {
			panic("unexpected")
		}
		return model.DownloadResult{SourceID: job.Identifier, Success: true}
	})

	results := runPool(context.Background(), 2, jobsFor("ok", "bad"), fetcher, nil)

	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Message, "panic: unexpected")
}

func TestRunPool_Empty(t *testing.T) {
	assert.Nil(t, runPool(context.Background(), 4, nil, fetchFunc(nil), nil))
}
