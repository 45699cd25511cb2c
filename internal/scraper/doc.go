package scraper

// Package scraper discovers the tracks of a playlist by rendering its page in
// headless Chromium (playwright-go). Each call acquires its own browser
// session and releases it before returning. Extraction works on a snapshot of
// the page so it can be tested without a browser.
