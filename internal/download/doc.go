package download

// Package download implements the batch pipeline. A Coordinator takes a
// BatchRequest, resolves playlists through a PlaylistResolver, creates one
// album directory per playlist and fans the items out to a fixed pool of
// workers. Each worker runs a Fetcher (platform client, ffmpeg, ID3 tags) and
// reports a DownloadResult; failures stay local to their item. Album
// directories are swept of everything but .mp3 files once all workers are
// done.
