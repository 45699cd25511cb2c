package model

import (
	"time"

	"github.com/samber/lo"
)

// DownloadResult is the outcome of fetching one item. A failure never affects
// results of other items in the same batch.
type DownloadResult struct {
	SourceID   string
	Success    bool
	Message    string
	OutputPath string
	RawPath    string
	Title      string
	Artist     string
}

// AlbumReport summarises one resolved playlist within a batch
type AlbumReport struct {
	PlaylistID string
	Name       string
	Directory  string
	Items      int
	Partial    bool
	Warnings   []string
	Error      string
}

// BatchReport is delivered once per batch call
type BatchReport struct {
	ID         string
	Kind       BatchKind
	Root       string
	Requested  int
	Albums     []AlbumReport
	Results    []DownloadResult
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded returns the number of successful items
func (r *BatchReport) Succeeded() int {
	return lo.CountBy(r.Results, func(res DownloadResult) bool { return res.Success })
}

// Failed returns the number of failed items
func (r *BatchReport) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// Failures returns the failed results in report order
func (r *BatchReport) Failures() []DownloadResult {
	return lo.Filter(r.Results, func(res DownloadResult, _ int) bool { return !res.Success })
}

// Partial reports whether any playlist was only partially resolved
func (r *BatchReport) Partial() bool {
	return lo.SomeBy(r.Albums, func(a AlbumReport) bool { return a.Partial })
}

// Duration returns how long the batch took
func (r *BatchReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Status derives a terminal status from the results
func (r *BatchReport) Status() BatchStatus {
	ok := r.Succeeded()
	switch {
	case len(r.Results) == 0 && r.Requested > 0:
		return BatchStatusFailed
	case ok == len(r.Results):
		return BatchStatusCompleted
	case ok == 0:
		return BatchStatusFailed
	default:
		return BatchStatusCompletedWithErrors
	}
}
