package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/paperlens/internal/cache"
	"github.com/ppiankov/paperlens/internal/model"
)

// Client queries the ArXiv search API and returns documents parsed from its
// Atom feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	cache      *cache.Cache
}

// NewClient creates a client for the given ArXiv query endpoint. The cache
// may be nil to disable feed memoization.
func NewClient(baseURL string, httpCfg model.HTTPConfig, c *cache.Cache) *Client {
	timeout := httpCfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxBytes := httpCfg.MaxBodyBytes
	if maxBytes == 0 {
		maxBytes = 4_000_000
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: httpCfg.UserAgent,
		maxBytes:  maxBytes,
		cache:     c,
	}
}

// Search fetches up to maxResults recent papers matching query, newest
// submissions first. Field values are copied verbatim from the feed apart
// from whitespace normalization.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]model.Document, error) {
	if maxResults <= 0 {
		maxResults = 1
	}

	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	feedURL := c.baseURL + "?" + params.Encode()

	body, err := c.fetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	docs, err := parseFeed(body, query)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w: %w", err, model.ErrSourceUnavailable)
	}
	return docs, nil
}

func (c *Client) fetchFeed(ctx context.Context, feedURL string) (string, error) {
	key := cache.Key("feed", feedURL)
	if body, ok := c.cache.Get(key); ok {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch feed: %w: %w", err, model.ErrSourceUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d from search API: %w", resp.StatusCode, model.ErrSourceUnavailable)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read feed: %w: %w", err, model.ErrSourceUnavailable)
	}

	body := string(raw)
	c.cache.Set(key, body)
	return body, nil
}

// Atom feed shapes, namespace http://www.w3.org/2005/Atom.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Published string       `xml:"published"`
	Summary   string       `xml:"summary"`
	Authors   []atomAuthor `xml:"author"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

func parseFeed(body, query string) ([]model.Document, error) {
	var feed atomFeed
	if err := xml.Unmarshal([]byte(body), &feed); err != nil {
		return nil, err
	}

	docs := make([]model.Document, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		authors := make([]string, 0, len(entry.Authors))
		for _, a := range entry.Authors {
			authors = append(authors, strings.TrimSpace(a.Name))
		}

		published, _ := time.Parse(time.RFC3339, strings.TrimSpace(entry.Published))

		link := strings.TrimSpace(entry.ID)
		docs = append(docs, model.Document{
			ID:        idFromLink(link),
			Title:     collapseWhitespace(entry.Title),
			Authors:   authors,
			Published: published,
			Abstract:  collapseWhitespace(entry.Summary),
			Link:      link,
			Query:     query,
		})
	}
	return docs, nil
}

// idFromLink extracts the ArXiv identifier from an entry ID such as
// http://arxiv.org/abs/2401.12345v1.
func idFromLink(link string) string {
	trimmed := strings.TrimSuffix(link, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// collapseWhitespace folds the newline-wrapped text ArXiv puts in titles and
// abstracts into single-spaced prose.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
