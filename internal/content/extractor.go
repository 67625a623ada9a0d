package content

import (
	"context"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/ppiankov/paperlens/internal/cache"
	"github.com/ppiankov/paperlens/internal/model"
)

// Extractor turns a paper's abstract link into plain text suitable for
// chunking: it fetches the HTML rendition of the paper, converts it to
// Markdown-ish text and strips boilerplate.
type Extractor struct {
	fetcher *fetcher
	robots  *robotsChecker
	cache   *cache.Cache
	logger  zerolog.Logger
}

// NewExtractor creates an extractor. The cache may be nil.
func NewExtractor(httpCfg model.HTTPConfig, c *cache.Cache, logger zerolog.Logger) *Extractor {
	return &Extractor{
		fetcher: newFetcher(httpCfg),
		robots:  newRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout),
		cache:   c,
		logger:  logger,
	}
}

// Extract fetches the full text for the given /abs/ link. ArXiv serves an
// HTML rendition of most recent papers under /html/ with the same identifier.
func (e *Extractor) Extract(ctx context.Context, absLink string) (string, error) {
	htmlURL := strings.Replace(absLink, "/abs/", "/html/", 1)

	key := cache.Key("content", htmlURL)
	if text, ok := e.cache.Get(key); ok {
		return text, nil
	}

	if !e.robots.allowed(ctx, htmlURL) {
		return "", fmt.Errorf("robots.txt disallows %s: %w", htmlURL, model.ErrSourceUnavailable)
	}

	e.logger.Debug().Str("url", htmlURL).Msg("extracting paper content")

	page, err := e.fetcher.fetch(ctx, htmlURL)
	if err != nil {
		return "", err
	}

	text, err := htmltomarkdown.ConvertString(page)
	if err != nil {
		e.logger.Warn().Err(err).Str("url", htmlURL).Msg("markdown conversion failed, falling back to visible text")
		text = visibleText(page)
	}

	cleaned := cleanContent(text)
	if cleaned == "" {
		return "", fmt.Errorf("no text extracted from %s: %w", htmlURL, model.ErrSourceUnavailable)
	}

	e.cache.Set(key, cleaned)
	return cleaned, nil
}

// cleanContent normalizes extracted text: trims lines, drops empties, and
// cuts everything from the References heading onward.
func cleanContent(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isReferencesHeading(line) {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func isReferencesHeading(line string) bool {
	trimmed := strings.TrimSpace(strings.TrimLeft(line, "#*_ "))
	trimmed = strings.TrimRight(trimmed, "*_ ")
	return strings.EqualFold(trimmed, "references")
}

// visibleText walks the parsed document and collects text nodes, skipping
// script and style subtrees. Used when Markdown conversion fails.
func visibleText(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "nav", "header", "footer":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				b.WriteString(t)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}
