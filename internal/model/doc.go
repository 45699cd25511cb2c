package model

// Package model defines the data passed between the scraper, the download
// pipeline and the front ends: batch requests, scraped playlists, per-item
// results and batch reports. Types carry no behaviour beyond small derived
// views so they can be built directly in tests.
