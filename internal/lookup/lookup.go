// Package lookup prefills a source draft from the page behind its URL.
package lookup

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	log "github.com/sirupsen/logrus"
)

// Metadata is what a page reveals about itself: enough to prefill the
// title, author and published date of a new source.
type Metadata struct {
	Title     string
	Author    string
	Published *time.Time
}

// Client fetches page metadata via HTTP + readability extraction.
type Client struct {
	client *http.Client
}

// NewClient creates a metadata client with the given HTTP timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Lookup fetches the page and extracts its title, byline and published date.
// Extraction is best effort: a reachable page with no recognizable metadata
// yields an empty Metadata, not an error.
func (c *Client) Lookup(pageURL string) (*Metadata, error) {
	parsed, err := url.ParseRequestURI(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", pageURL, err)
	}

	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "saveit/1.0 (source manager)")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetching %s: %s", pageURL, resp.Status)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		log.Debugf("no extractable metadata from %s: %v", pageURL, err)
		return &Metadata{}, nil
	}

	meta := &Metadata{
		Title:     strings.TrimSpace(article.Title),
		Author:    strings.TrimSpace(article.Byline),
		Published: article.PublishedTime,
	}
	log.Debugf("metadata for %s: title=%q author=%q", pageURL, meta.Title, meta.Author)
	return meta, nil
}
