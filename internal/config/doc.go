package config

// Package config loads runtime configuration with viper (defaults, optional
// YAML file, ALBUMDL_* environment, .env and CLI flags) and keeps the desktop
// app's preferences in Fyne storage.
