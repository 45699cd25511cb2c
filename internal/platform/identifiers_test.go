package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare video id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"bare playlist id", " PLabcdefghijklmnop ", "PLabcdefghijklmnop", false},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch url with list", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123456789012&index=2", "PL123456789012", false},
		{"playlist url", "https://www.youtube.com/playlist?list=OLAK5uy_kz", "OLAK5uy_kz", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"key value fragment", "v=abc123&t=5", "abc123", false},
		{"empty", "   ", "", true},
		{"url without id", "https://www.youtube.com/feed", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentifier(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/playlist?list=PL1", PlaylistURL("PL1"))
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", WatchURL("abc"))
	assert.Equal(t, "https://www.youtube.com/watch?v=abc&list=PL1", AbsoluteURL("/watch?v=abc&list=PL1"))
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", AbsoluteURL("watch?v=abc"))
	assert.Equal(t, "https://example.com/x", AbsoluteURL("https://example.com/x"))
	assert.Equal(t, "abc", VideoIDFromURL("https://www.youtube.com/watch?v=abc&list=PL1&index=3"))
}
