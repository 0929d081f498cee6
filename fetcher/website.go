// Package fetcher turns source descriptors (URL, raw text, file bytes) into
// plain extracted text.
package fetcher

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"summary-share/apperrors"
	"summary-share/internal/logger"
	"summary-share/config"
)

// ExtractorDOM flattens the body subtree directly; ExtractorReadability runs
// the readability article extractor over the document instead.
const (
	ExtractorDOM         = "dom"
	ExtractorReadability = "readability"
)

// Website fetches a URL and extracts its textual content.
type Website struct {
	cfg    config.FetcherConfig
	client *http.Client
}

func NewWebsite(cfg config.FetcherConfig) *Website {
	return &Website{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// FetchDOM retrieves the raw markup of a URL. Failures are logged with
// detail server-side and surfaced to callers as a generic fetch error; the
// caller cannot distinguish "no content" from "fetch failed".
func (w *Website) FetchDOM(ctx context.Context, url string) (string, error) {
	if w.cfg.RenderJS {
		dom, err := RenderHTML(ctx, url, w.cfg.UserAgent)
		if err != nil {
			logger.ErrorWithFields("website render failed", logger.Fields{"url": url, "error": err.Error()})
			return "", apperrors.ErrFetch
		}
		return dom, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.ErrorWithFields("website fetch failed", logger.Fields{"url": url, "error": err.Error()})
		return "", apperrors.ErrFetch
	}
	req.Header.Set("User-Agent", w.cfg.UserAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		logger.ErrorWithFields("website fetch failed", logger.Fields{"url": url, "error": err.Error()})
		return "", apperrors.ErrFetch
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.ErrorWithFields("website fetch failed", logger.Fields{
			"url":    url,
			"status": resp.StatusCode,
		})
		return "", apperrors.ErrFetch
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ErrorWithFields("website fetch failed", logger.Fields{"url": url, "error": err.Error()})
		return "", apperrors.ErrFetch
	}
	return string(body), nil
}

// ExtractBodyText isolates the body subtree of the markup, drops script and
// style elements and flattens the rest to text, one trimmed non-blank line
// per block.
func (w *Website) ExtractBodyText(dom string) (string, error) {
	if w.cfg.Extractor == ExtractorReadability {
		return extractWithReadability(dom)
	}

	doc, err := html.Parse(strings.NewReader(dom))
	if err != nil {
		return "", apperrors.ErrExtraction.WithCause(err)
	}

	body := findElement(doc, "body")
	if body == nil {
		return "", apperrors.ErrExtraction
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)

	return strings.TrimRight(b.String(), "\n"), nil
}

func extractWithReadability(dom string) (string, error) {
	doc, err := html.Parse(strings.NewReader(dom))
	if err != nil {
		return "", apperrors.ErrExtraction.WithCause(err)
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", apperrors.ErrExtraction.WithCause(err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return "", apperrors.ErrExtraction
	}
	return strings.TrimSpace(article.TextContent), nil
}

// ExtractTitle returns the text of head > title, or "" when the document
// has none; the pipeline then falls back to the classifier-supplied title.
func (w *Website) ExtractTitle(dom string) string {
	doc, err := html.Parse(strings.NewReader(dom))
	if err != nil {
		return ""
	}

	head := findElement(doc, "head")
	if head == nil {
		return ""
	}
	title := findElement(head, "title")
	if title == nil {
		return ""
	}

	var b strings.Builder
	for c := title.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// StripMarkup flattens constrained-markup HTML (the classifier's output
// format) to plain text, for list previews.
func StripMarkup(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}
