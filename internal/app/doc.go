package app

// Package app assembles the download pipeline from a loaded configuration.
// Both the desktop app and the command line build their coordinator here.
