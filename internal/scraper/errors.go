package scraper

import (
	"fmt"
	"time"
)

// ScrapeTimeoutError reports that the playlist page did not render the
// expected elements within the wait timeout.
type ScrapeTimeoutError struct {
	PlaylistID string
	Selector   string
	Timeout    time.Duration
	Original   error
}

func (e *ScrapeTimeoutError) Error() string {
	return fmt.Sprintf("playlist %s: timed out after %s waiting for %q: %v", e.PlaylistID, e.Timeout, e.Selector, e.Original)
}

func (e *ScrapeTimeoutError) Unwrap() error {
	return e.Original
}

// SessionError reports a failure to start or drive the browser session.
type SessionError struct {
	Message  string
	Original error
}

func (e *SessionError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Original)
	}
	return e.Message
}

func (e *SessionError) Unwrap() error {
	return e.Original
}
