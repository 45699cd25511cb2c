package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByDuration(t *testing.T) {
	items := []PlaylistItem{
		{URL: "A", DurationSeconds: 500},
		{URL: "B", DurationSeconds: 901},
		{URL: "C", DurationSeconds: 200},
	}

	kept := FilterByDuration(items, 900)
	p := &ScrapedPlaylist{Items: kept}

	assert.Equal(t, []string{"A", "C"}, p.URLs())
}

func TestFilterByDuration_Boundary(t *testing.T) {
	items := []PlaylistItem{
		{URL: "exact", DurationSeconds: 900},
		{URL: "below", DurationSeconds: 899},
		{URL: "unknown", DurationSeconds: 0},
	}

	kept := FilterByDuration(items, 900)

	assert.Len(t, kept, 2)
	assert.Equal(t, "below", kept[0].URL)
	assert.Equal(t, "unknown", kept[1].URL)
}

func TestFilterByDuration_Disabled(t *testing.T) {
	items := []PlaylistItem{{URL: "long", DurationSeconds: 5000}}
	assert.Equal(t, items, FilterByDuration(items, 0))
}

func TestScrapedPlaylistURLs_Nil(t *testing.T) {
	var p *ScrapedPlaylist
	assert.Nil(t, p.URLs())
}
