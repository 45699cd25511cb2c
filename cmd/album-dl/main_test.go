package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-album-downloader/internal/model"
)

func TestParseInputs(t *testing.T) {
	entries, invalid := parseInputs([]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/playlist?list=PLabcdefghijklmnop",
		"",
	}, false)

	assert.Len(t, entries, 2)
	assert.Equal(t, model.KindSingle, entries[0].Type)
	assert.Equal(t, "dQw4w9WgXcQ", entries[0].ID)
	assert.Equal(t, model.KindPlaylist, entries[1].Type)
	assert.Equal(t, "PLabcdefghijklmnop", entries[1].ID)
	assert.Equal(t, []string{""}, invalid)
}

func TestParseInputs_ForceSingle(t *testing.T) {
	entries, _ := parseInputs([]string{"PLabcdefghijklmnop"}, true)
	assert.Equal(t, model.KindSingle, entries[0].Type)
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	start := time.Now()

	reports := []*model.BatchReport{
		{
			Kind:      model.KindPlaylist,
			Requested: 1,
			Albums:    []model.AlbumReport{{PlaylistID: "PL1", Items: 2, Directory: "/music/Album"}},
			Results: []model.DownloadResult{
				{Success: true},
				{Success: false, Message: "Error downloading video from x: boom"},
			},
			StartedAt:  start,
			FinishedAt: start.Add(time.Second),
		},
		{
			Kind:      model.KindPlaylist,
			Requested: 1,
			Albums:    []model.AlbumReport{{PlaylistID: "PL2", Error: "session failed"}},
		},
	}

	var buf bytes.Buffer
	failed := printSummary(&buf, reports)

	out := buf.String()
	assert.Equal(t, 2, failed)
	assert.Contains(t, out, "playlist PL1: 2 items in /music/Album")
	assert.Contains(t, out, "Error downloading video from x: boom")
	assert.Contains(t, out, "playlist PL2: session failed")
	assert.Contains(t, out, "playlist batch: 1 downloaded, 1 failed in 1s")
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, ExitUsage, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: album-dl")

	stdout.Reset()
	assert.Equal(t, ExitOK, run([]string{"--version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "album-dl dev")
}
