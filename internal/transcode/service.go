package transcode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// FFmpeg constants for audio extraction
const (
	FFmpegCommand     = "ffmpeg"
	OverwriteFlag     = "-y"
	InputFlag         = "-i"
	AudioBitrateFlag  = "-ab"
	SampleRateFlag    = "-ar"
	BitrateSuffix     = "k"
	DefaultBitrate    = 3000
	DefaultSampleRate = 44100
	OutputExtension   = ".mp3"

	// stderrTailBytes bounds how much encoder output is kept for error messages
	stderrTailBytes = 2048
)

// TranscodeError reports a failed encoder run
type TranscodeError struct {
	Message  string
	Input    string
	Stderr   string
	Original error
}

func (e *TranscodeError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Message, e.Input)
	if e.Original != nil {
		msg += ": " + e.Original.Error()
	}
	if e.Stderr != "" {
		msg += " (" + e.Stderr + ")"
	}
	return msg
}

func (e *TranscodeError) Unwrap() error {
	return e.Original
}

// Service runs ffmpeg to extract audio
type Service struct {
	ffmpegPath  string
	bitrateKbps int
	sampleRate  int
	log         zerolog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithFFmpegPath overrides the ffmpeg executable
func WithFFmpegPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.ffmpegPath = path
		}
	}
}

// WithBitrate sets the target bitrate in kbps
func WithBitrate(kbps int) Option {
	return func(s *Service) {
		if kbps > 0 {
			s.bitrateKbps = kbps
		}
	}
}

// WithSampleRate sets the output sample rate in Hz
func WithSampleRate(hz int) Option {
	return func(s *Service) {
		if hz > 0 {
			s.sampleRate = hz
		}
	}
}

// NewService creates a new transcoding service
func NewService(log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		ffmpegPath:  FFmpegCommand,
		bitrateKbps: DefaultBitrate,
		sampleRate:  DefaultSampleRate,
		log:         log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractAudio runs the encoder synchronously. The input is left in place; a
// partial output is removed when the encoder fails.
func (s *Service) ExtractAudio(ctx context.Context, inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return &TranscodeError{Message: "input file is not readable", Input: inputPath, Original: err}
	}

	args := s.BuildFFmpegArgs(inputPath, outputPath)
	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)
	stderr := &tailBuffer{limit: stderrTailBytes}
	cmd.Stderr = stderr

	s.log.Debug().Str("input", inputPath).Str("output", outputPath).Msg("running ffmpeg")

	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)

		msg := "ffmpeg failed"
		var exitErr *exec.ExitError
		if errors.Is(err, exec.ErrNotFound) {
			msg = "ffmpeg not found"
		} else if errors.As(err, &exitErr) {
			msg = fmt.Sprintf("ffmpeg exited with code %d", exitErr.ExitCode())
		}
		return &TranscodeError{
			Message:  msg,
			Input:    inputPath,
			Stderr:   strings.TrimSpace(stderr.String()),
			Original: err,
		}
	}
	return nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func (s *Service) BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		OverwriteFlag,
		InputFlag, inputPath,
		AudioBitrateFlag, strconv.Itoa(s.bitrateKbps) + BitrateSuffix,
		SampleRateFlag, strconv.Itoa(s.sampleRate),
		outputPath,
	}
}

// tailBuffer keeps the last limit bytes written to it
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}
