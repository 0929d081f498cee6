package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"summary-share/apperrors"
	"summary-share/config"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
	<title>Test Article</title>
	<style>body { color: red; }</style>
</head>
<body>
	<h1>Heading</h1>
	<script>console.log("tracking");</script>
	<p>First paragraph.</p>
	<p>Second <strong>paragraph</strong>.</p>
</body>
</html>`

func newTestWebsite() *Website {
	return NewWebsite(config.FetcherConfig{
		TimeoutSeconds: 2,
		UserAgent:      "summary-share-test/1.0",
	})
}

func TestFetchDOMReturnsPageMarkup(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(testPage))
	}))
	defer server.Close()

	dom, err := newTestWebsite().FetchDOM(context.Background(), server.URL)
	assert.NoError(t, err)
	assert.Equal(t, testPage, dom)
	assert.Equal(t, "summary-share-test/1.0", gotUserAgent)
}

func TestFetchDOMHidesErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	web := newTestWebsite()

	_, err := web.FetchDOM(context.Background(), server.URL)
	assert.True(t, errors.Is(err, apperrors.ErrFetch))

	// Connection failures surface as the same generic error as HTTP ones.
	server.Close()
	_, err = web.FetchDOM(context.Background(), server.URL)
	assert.True(t, errors.Is(err, apperrors.ErrFetch))
}

func TestExtractBodyTextDropsScriptAndStyle(t *testing.T) {
	text, err := newTestWebsite().ExtractBodyText(testPage)
	assert.NoError(t, err)
	assert.Equal(t, "Heading\nFirst paragraph.\nSecond\nparagraph\n.", text)
}

func TestExtractBodyTextEmptyBody(t *testing.T) {
	text, err := newTestWebsite().ExtractBodyText(`<html><body></body></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestExtractTitle(t *testing.T) {
	web := newTestWebsite()

	assert.Equal(t, "Test Article", web.ExtractTitle(testPage))
	assert.Equal(t, "", web.ExtractTitle(`<html><head></head><body><p>no title</p></body></html>`))
}

func TestStripMarkup(t *testing.T) {
	markup := `<h1>Title</h1><p>First <strong>bold</strong> part.</p><ul><li>one</li><li>two</li></ul>`
	assert.Equal(t, "Title First bold part. one two", StripMarkup(markup))

	assert.Equal(t, "plain text", StripMarkup("plain text"))
	assert.Equal(t, "", StripMarkup(""))
}
