package tagging

// Package tagging writes ID3v2 metadata into finished MP3 files.
