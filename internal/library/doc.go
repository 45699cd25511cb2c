package library

// Package library lists what a destination root already holds: album
// directories and loose single tracks. It backs the GUI's library tab.
