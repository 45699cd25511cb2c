package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-album-downloader/internal/library"
	"github.com/ytget/yt-album-downloader/internal/model"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		report *model.BatchReport
		want   string
	}{
		{
			name: "all good",
			report: &model.BatchReport{Results: []model.DownloadResult{
				{Success: true}, {Success: true},
			}},
			want: "2 downloaded, 0 failed",
		},
		{
			name: "partial playlist",
			report: &model.BatchReport{
				Albums:  []model.AlbumReport{{PlaylistID: "PL1", Partial: true}},
				Results: []model.DownloadResult{{Success: true}, {Success: false}},
			},
			want: "1 downloaded, 1 failed (playlist page incomplete)",
		},
		{
			name: "unresolved playlist",
			report: &model.BatchReport{
				Albums: []model.AlbumReport{{PlaylistID: "PL2", Error: "browser session could not be started"}},
			},
			want: "0 downloaded, 0 failed; PL2: browser session could not be started",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarize(tt.report))
		})
	}
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "playlist batch: Resolving", statusLine(model.KindPlaylist, model.BatchStatusResolving))
	assert.Equal(t, "single batch: Running", statusLine(model.KindSingle, model.BatchStatusRunning))
}

func TestOnBatchStatus_WithoutPanel(t *testing.T) {
	ui := &RootUI{}
	assert.NotPanics(t, func() {
		ui.onBatchStatus(model.KindSingle, model.BatchStatusPending)
		ui.onBatchStatus(model.KindSingle, model.BatchStatusCompleted)
	})
}

func TestEntryLabel(t *testing.T) {
	assert.Equal(t, IconFolder+" Band - Album (3)", entryLabel(library.Entry{Name: "Band - Album", Kind: library.EntryAlbum, Tracks: 3}))
	assert.Equal(t, IconMusic+" Hit.mp3", entryLabel(library.Entry{Name: "Hit.mp3", Kind: library.EntryTrack}))
	assert.Equal(t, "notes.txt", entryLabel(library.Entry{Name: "notes.txt"}))
}
