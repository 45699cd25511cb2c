package transcode

import "context"

// Transcoder converts a downloaded media file into the output audio format.
type Transcoder interface {
	ExtractAudio(ctx context.Context, inputPath, outputPath string) error
}
