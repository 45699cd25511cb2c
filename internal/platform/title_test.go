package platform

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func pageResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestExtractTitle(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><head><title> Artist - Song - YouTube </title></head></html>`))
	require.NoError(t, err)

	assert.Equal(t, "Artist - Song", ExtractTitle(doc))
}

func TestLookupTitle(t *testing.T) {
	var requested string
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		requested = req.URL.String()
		return pageResponse(http.StatusOK, `<title>Great Album - YouTube</title>`), nil
	})}

	title, err := LookupTitle(context.Background(), client, "PLabcdefghijklmnop")
	require.NoError(t, err)
	assert.Equal(t, "Great Album", title)
	assert.Equal(t, PlaylistURL("PLabcdefghijklmnop"), requested)

	_, err = LookupTitle(context.Background(), client, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, WatchURL("dQw4w9WgXcQ"), requested)
}

func TestLookupTitle_BadStatus(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return pageResponse(http.StatusNotFound, ""), nil
	})}

	_, err := LookupTitle(context.Background(), client, "abc")
	assert.Error(t, err)
}
