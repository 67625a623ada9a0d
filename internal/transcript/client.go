// Package transcript fetches YouTube caption tracks and summarizes them.
package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ppiankov/paperlens/internal/cache"
	"github.com/ppiankov/paperlens/internal/model"
)

// Segment is one caption entry with timing information.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Client fetches caption tracks from the timedtext endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	cache      *cache.Cache
}

const defaultTimedTextURL = "https://video.google.com/timedtext"

// NewClient creates a transcript client. baseURL is overridable for tests;
// empty uses the public endpoint. The cache may be nil.
func NewClient(baseURL string, httpCfg model.HTTPConfig, c *cache.Cache) *Client {
	if baseURL == "" {
		baseURL = defaultTimedTextURL
	}
	timeout := httpCfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  httpCfg.UserAgent,
		cache:      c,
	}
}

// ExtractVideoID pulls the video identifier out of the common YouTube URL
// shapes (youtu.be short links and youtube.com watch links). A bare ID is
// returned unchanged.
func ExtractVideoID(raw string) (string, error) {
	if !strings.Contains(raw, "/") && !strings.Contains(raw, ".") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}

	host := strings.TrimPrefix(u.Host, "www.")
	switch {
	case host == "youtu.be":
		id := strings.Trim(u.Path, "/")
		if id != "" {
			return id, nil
		}
	case strings.HasSuffix(host, "youtube.com"):
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("unrecognized YouTube URL: %s", raw)
}

// Fetch retrieves the caption track for a video in the given language
// (empty defaults to English).
func (c *Client) Fetch(ctx context.Context, videoID, lang string) ([]Segment, error) {
	if lang == "" {
		lang = "en"
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", lang)
	trackURL := c.baseURL + "?" + params.Encode()

	key := cache.Key("transcript", trackURL)
	body, ok := c.cache.Get(key)
	if !ok {
		fetched, err := c.fetchTrack(ctx, trackURL)
		if err != nil {
			return nil, err
		}
		body = fetched
		c.cache.Set(key, body)
	}

	segments, err := parseTrack(body)
	if err != nil {
		return nil, fmt.Errorf("parse transcript: %v: %w", err, model.ErrSourceUnavailable)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("no captions for video %s: %w", videoID, model.ErrSourceUnavailable)
	}
	return segments, nil
}

func (c *Client) fetchTrack(ctx context.Context, trackURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch transcript: %w: %w", err, model.ErrSourceUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from transcript API: %w", resp.StatusCode, model.ErrSourceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w: %w", err, model.ErrSourceUnavailable)
	}
	return string(body), nil
}

type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

func parseTrack(body string) ([]Segment, error) {
	var track timedText
	if err := xml.Unmarshal([]byte(body), &track); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(track.Texts))
	for _, line := range track.Texts {
		text := strings.TrimSpace(line.Body)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    line.Start,
			Duration: line.Dur,
		})
	}
	return segments, nil
}

// Join concatenates segments into one transcript string.
func Join(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}
