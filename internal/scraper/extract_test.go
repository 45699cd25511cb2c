package scraper

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlaylist_Rows(t *testing.T) {
	snap := &pageSnapshot{
		Rows: []rowSnapshot{
			{Href: "/watch?v=aaaaaaaaaaa&list=PL1&index=1", Title: " First ", DurationLabel: "08:20", HasDuration: true},
			{Href: "/watch?v=bbbbbbbbbbb&list=PL1&index=2", DurationLabel: "15:01", HasDuration: true},
			{Href: "/watch?v=ccccccccccc&list=PL1&index=3", DurationLabel: "03:20", HasDuration: true},
			{Href: "/watch?v=ddddddddddd&list=PL1&index=4"},
			{Href: ""},
		},
		FirstText: "My Playlist?",
	}

	pl := buildPlaylist("PL1", snap, 900, zerolog.Nop())

	require.Len(t, pl.Items, 2)
	assert.Equal(t, "https://www.youtube.com/watch?v=aaaaaaaaaaa&list=PL1&index=1", pl.Items[0].URL)
	assert.Equal(t, "aaaaaaaaaaa", pl.Items[0].VideoID)
	assert.Equal(t, "First", pl.Items[0].Title)
	assert.Equal(t, 500, pl.Items[0].DurationSeconds)
	assert.Equal(t, "ccccccccccc", pl.Items[1].VideoID)
	assert.Equal(t, "My Playlist", pl.AlbumName)
	assert.False(t, pl.Partial)
	assert.Len(t, pl.Warnings, 1, "row without a badge is reported")
}

func TestBuildPlaylist_FlatPositionalFilter(t *testing.T) {
	snap := &pageSnapshot{
		Links:     []string{"/watch?v=A", "/watch?v=B", "/watch?v=C"},
		Durations: []string{"08:20", "15:01", "03:20"},
	}

	pl := buildPlaylist("PL1", snap, 900, zerolog.Nop())

	assert.Equal(t, []string{
		"https://www.youtube.com/watch?v=A",
		"https://www.youtube.com/watch?v=C",
	}, pl.URLs())
	assert.Empty(t, pl.Warnings)
}

func TestBuildPlaylist_FlatMismatchWarns(t *testing.T) {
	snap := &pageSnapshot{
		Links:     []string{"/watch?v=A", "", "/watch?v=B", "/watch?v=C"},
		Durations: []string{"01:00", "02:00"},
	}

	pl := buildPlaylist("PL1", snap, 900, zerolog.Nop())

	assert.Len(t, pl.Items, 2)
	require.Len(t, pl.Warnings, 1)
	assert.Contains(t, pl.Warnings[0], "3 links but 2 durations")
}

func TestBuildPlaylist_TimeoutIsPartial(t *testing.T) {
	snap := &pageSnapshot{
		Links:     []string{"/watch?v=A"},
		Durations: []string{"01:00"},
		Timeout: &ScrapeTimeoutError{
			PlaylistID: "PL1",
			Selector:   linkSelector,
			Timeout:    10 * time.Second,
			Original:   errors.New("timeout"),
		},
	}

	pl := buildPlaylist("PL1", snap, 900, zerolog.Nop())

	assert.True(t, pl.Partial)
	assert.Len(t, pl.Items, 1)
	require.NotEmpty(t, pl.Warnings)
	assert.Contains(t, pl.Warnings[0], "timed out")
}

func TestBuildPlaylist_EmptyNameFallsBackToID(t *testing.T) {
	pl := buildPlaylist("PLxyz", &pageSnapshot{FirstText: "  ?  "}, 900, zerolog.Nop())

	assert.Equal(t, "Playlist PLxyz", pl.AlbumName)
	assert.Empty(t, pl.Items)
}

func TestBuildPlaylist_RefinedName(t *testing.T) {
	snap := &pageSnapshot{
		FirstText: "provisional",
		HTML: `<yt-formatted-string>Album • 1997 • OK Computer</yt-formatted-string>
			<yt-formatted-string>Radiohead • Album</yt-formatted-string>`,
	}

	pl := buildPlaylist("PL1", snap, 900, zerolog.Nop())

	assert.Equal(t, "Radiohead - OK Computer", pl.AlbumName)
}
