package platform

// Package platform contains OS and filesystem glue plus small helpers for
// talking about platform identifiers: name sanitising, album directory
// creation and cleanup, identifier parsing, page title lookup and the
// browser-free playlist resolver.
