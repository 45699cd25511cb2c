package ui

// Package ui is the desktop front end: a single-download tab, a bulk queue
// and a library browser over the destination folder.
