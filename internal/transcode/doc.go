package transcode

// Package transcode wraps the ffmpeg executable: one synchronous call turns a
// downloaded stream into an MP3 at the configured bitrate and sample rate.
