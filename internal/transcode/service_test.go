package transcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestBuildFFmpegArgs(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{
			name: "defaults",
			want: []string{"-y", "-i", "in.webm", "-ab", "3000k", "-ar", "44100", "out.mp3"},
		},
		{
			name: "custom bitrate and sample rate",
			opts: []Option{WithBitrate(320), WithSampleRate(48000)},
			want: []string{"-y", "-i", "in.webm", "-ab", "320k", "-ar", "48000", "out.mp3"},
		},
		{
			name: "invalid values ignored",
			opts: []Option{WithBitrate(0), WithSampleRate(-1)},
			want: []string{"-y", "-i", "in.webm", "-ab", "3000k", "-ar", "44100", "out.mp3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(zerolog.Nop(), tt.opts...)
			got := s.BuildFFmpegArgs("in.webm", "out.mp3")
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("BuildFFmpegArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

// writeFakeFFmpeg creates a shell script standing in for ffmpeg
func writeFakeFFmpeg(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake ffmpeg: %v", err)
	}
	return path
}

func TestExtractAudio_Success(t *testing.T) {
	// last argument is the output path
	fake := writeFakeFFmpeg(t, `for last; do :; done; echo encoded > "$last"`)
	dir := t.TempDir()
	in := filepath.Join(dir, "track.webm")
	out := filepath.Join(dir, "track.mp3")
	if err := os.WriteFile(in, []byte("raw"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	s := NewService(zerolog.Nop(), WithFFmpegPath(fake))
	if err := s.ExtractAudio(context.Background(), in, out); err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not created: %v", err)
	}
	if _, err := os.Stat(in); err != nil {
		t.Errorf("input should be left in place: %v", err)
	}
}

func TestExtractAudio_FailureRemovesPartialOutput(t *testing.T) {
	fake := writeFakeFFmpeg(t, `for last; do :; done; echo partial > "$last"; echo "Invalid data found" >&2; exit 1`)
	dir := t.TempDir()
	in := filepath.Join(dir, "track.webm")
	out := filepath.Join(dir, "track.mp3")
	if err := os.WriteFile(in, []byte("raw"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	s := NewService(zerolog.Nop(), WithFFmpegPath(fake))
	err := s.ExtractAudio(context.Background(), in, out)

	var terr *TranscodeError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TranscodeError, got %v", err)
	}
	if !strings.Contains(terr.Stderr, "Invalid data found") {
		t.Errorf("stderr tail not captured: %q", terr.Stderr)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("partial output should be removed")
	}
}

func TestExtractAudio_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "track.webm")
	if err := os.WriteFile(in, []byte("raw"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	s := NewService(zerolog.Nop(), WithFFmpegPath(filepath.Join(dir, "no-such-ffmpeg")))
	err := s.ExtractAudio(context.Background(), in, filepath.Join(dir, "out.mp3"))

	var terr *TranscodeError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TranscodeError, got %v", err)
	}
}

func TestExtractAudio_MissingInput(t *testing.T) {
	s := NewService(zerolog.Nop())
	err := s.ExtractAudio(context.Background(), filepath.Join(t.TempDir(), "none.webm"), "out.mp3")
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestTailBuffer(t *testing.T) {
	b := &tailBuffer{limit: 4}
	b.Write([]byte("abc"))
	b.Write([]byte("defg"))
	if got := b.String(); got != "defg" {
		t.Errorf("tailBuffer = %q, want %q", got, "defg")
	}
}
