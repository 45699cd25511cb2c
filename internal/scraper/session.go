package scraper

import (
	"context"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Page selectors
const (
	rowSelector      = "ytd-playlist-video-renderer"
	linkSelector     = "#thumbnail a"
	durationSelector = "#text"
	titleSelector    = "#video-title"
	ariaLabelAttr    = "aria-label"
	hrefAttr         = "href"
	browserChromium  = "chromium"
)

// session is one acquired browser page
type session interface {
	Snapshot(ctx context.Context, id, pageURL string) (*pageSnapshot, error)
	Close() error
}

// sessionOptions configures a browser session
type sessionOptions struct {
	Headless    bool
	Timeout     time.Duration
	SettleDelay time.Duration
}

// playwrightSession drives a headless Chromium page
type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	opts    sessionOptions
}

// installBrowsers downloads the Chromium build used by playwright
func installBrowsers() error {
	return playwright.Install(&playwright.RunOptions{Browsers: []string{browserChromium}})
}

// openPlaywrightSession starts the driver, a browser and one page. On any
// failure everything already started is torn down.
func openPlaywrightSession(opts sessionOptions) (session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, &SessionError{Message: "could not start playwright", Original: err}
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, &SessionError{Message: "could not launch browser", Original: err}
	}

	page, err := browser.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, &SessionError{Message: "could not create page", Original: err}
	}
	page.SetDefaultTimeout(float64(opts.Timeout.Milliseconds()))

	return &playwrightSession{pw: pw, browser: browser, page: page, opts: opts}, nil
}

// Snapshot navigates to pageURL, waits for the playlist to render and reads
// links, durations, the provisional title and the page HTML. A wait timeout
// is reported in the snapshot, not as an error. Cancelling ctx closes the
// page, which aborts a pending navigation or wait, and Snapshot returns
// ctx.Err().
func (s *playwrightSession) Snapshot(ctx context.Context, id, pageURL string) (*pageSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() { _ = s.page.Close() })
	defer stop()

	if _, err := s.page.Goto(pageURL); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &SessionError{Message: "could not open " + pageURL, Original: err}
	}

	snap := &pageSnapshot{}
	timeout := float64(s.opts.Timeout.Milliseconds())
	for _, sel := range []string{linkSelector, durationSelector + "[" + ariaLabelAttr + "]"} {
		err := s.page.Locator(sel).First().WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateAttached,
			Timeout: playwright.Float(timeout),
		})
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err != nil {
			snap.Timeout = &ScrapeTimeoutError{PlaylistID: id, Selector: sel, Timeout: s.opts.Timeout, Original: err}
			break
		}
	}

	if snap.Timeout == nil && s.opts.SettleDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.opts.SettleDelay):
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.page.Locator(rowSelector).All()
	if err == nil {
		for _, row := range rows {
			snap.Rows = append(snap.Rows, readRow(row))
		}
	}

	if len(snap.Rows) == 0 {
		snap.Links = readAttributes(s.page.Locator(linkSelector), hrefAttr)
		snap.Durations = readLabelledTexts(s.page.Locator(durationSelector))
	}

	if first := s.page.Locator(durationSelector).First(); count(first) > 0 {
		snap.FirstText, _ = first.TextContent()
	}

	snap.HTML, _ = s.page.Content()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Close releases the page, the browser and the driver
func (s *playwrightSession) Close() error {
	var firstErr error
	if err := s.browser.Close(); err != nil {
		firstErr = err
	}
	if err := s.pw.Stop(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// readRow reads link, title and duration from one playlist row. Missing
// elements are checked with Count first so no call blocks on the default
// timeout.
func readRow(row playwright.Locator) rowSnapshot {
	var r rowSnapshot

	if link := row.Locator(linkSelector).First(); count(link) > 0 {
		r.Href, _ = link.GetAttribute(hrefAttr)
	}
	if title := row.Locator(titleSelector).First(); count(title) > 0 {
		r.Title, _ = title.TextContent()
	}

	badges, err := row.Locator(durationSelector).All()
	if err != nil {
		return r
	}
	for _, badge := range badges {
		label, _ := badge.GetAttribute(ariaLabelAttr)
		if label == "" {
			continue
		}
		r.DurationLabel, _ = badge.InnerText()
		r.HasDuration = true
		break
	}
	return r
}

func readAttributes(loc playwright.Locator, attr string) []string {
	elems, err := loc.All()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		v, _ := e.GetAttribute(attr)
		out = append(out, v)
	}
	return out
}

// readLabelledTexts returns the inner text of elements carrying an aria-label
func readLabelledTexts(loc playwright.Locator) []string {
	elems, err := loc.All()
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range elems {
		if label, _ := e.GetAttribute(ariaLabelAttr); label == "" {
			continue
		}
		text, err := e.InnerText()
		if err != nil {
			continue
		}
		out = append(out, text)
	}
	return out
}

func count(loc playwright.Locator) int {
	n, err := loc.Count()
	if err != nil {
		return 0
	}
	return n
}
