package download

import (
	"testing"

	"github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAudioStream(t *testing.T) {
	tests := []struct {
		name    string
		formats youtube.FormatList
		wantTag int
		wantErr bool
	}{
		{
			name: "highest average bitrate wins",
			formats: youtube.FormatList{
				{ItagNo: 139, MimeType: `audio/mp4; codecs="mp4a.40.5"`, AverageBitrate: 48000},
				{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, AverageBitrate: 130000},
				{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AverageBitrate: 128000},
			},
			wantTag: 251,
		},
		{
			name: "video formats ignored",
			formats: youtube.FormatList{
				{ItagNo: 18, MimeType: `video/mp4; codecs="avc1"`, Bitrate: 500000, Width: 640, Height: 360, AudioChannels: 2},
				{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AverageBitrate: 128000},
			},
			wantTag: 140,
		},
		{
			name: "nominal bitrate used without average",
			formats: youtube.FormatList{
				{ItagNo: 249, MimeType: `audio/webm; codecs="opus"`, Bitrate: 60000},
				{ItagNo: 250, MimeType: `audio/webm; codecs="opus"`, Bitrate: 80000},
			},
			wantTag: 250,
		},
		{
			name: "tie keeps platform order",
			formats: youtube.FormatList{
				{ItagNo: 140, MimeType: `audio/mp4`, AverageBitrate: 128000},
				{ItagNo: 251, MimeType: `audio/webm`, AverageBitrate: 128000},
			},
			wantTag: 140,
		},
		{
			name: "no audio-only stream",
			formats: youtube.FormatList{
				{ItagNo: 18, MimeType: `video/mp4`, Width: 640, Height: 360},
			},
			wantErr: true,
		},
		{
			name:    "empty list",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectAudioStream(tt.formats)
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoAudioStream)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, got.ItagNo)
		})
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{`audio/mp4; codecs="mp4a.40.2"`, ".m4a"},
		{`audio/webm; codecs="opus"`, ".webm"},
		{"audio/ogg", ".ogg"},
		{"audio/mpeg", DefaultExtension},
		{"", DefaultExtension},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, extensionFor(&youtube.Format{MimeType: tt.mime}))
		})
	}
}
