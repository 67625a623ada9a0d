package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsChecker caches per-host robots.txt groups and answers whether a path
// may be fetched. Hosts whose robots.txt cannot be retrieved are allowed.
type robotsChecker struct {
	mu         sync.Mutex
	groups     map[string]*robotstxt.Group
	httpClient *http.Client
	userAgent  string
}

func newRobotsChecker(userAgent string, timeout time.Duration) *robotsChecker {
	return &robotsChecker{
		groups:     make(map[string]*robotstxt.Group),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

func (r *robotsChecker) allowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	r.mu.Lock()
	group, ok := r.groups[parsed.Host]
	r.mu.Unlock()

	if !ok {
		group = r.fetchGroup(ctx, parsed)
		r.mu.Lock()
		r.groups[parsed.Host] = group
		r.mu.Unlock()
	}

	if group == nil {
		return true
	}
	return group.Test(parsed.Path)
}

// fetchGroup returns the agent group for the host, or nil when robots.txt is
// missing or unreadable.
func (r *robotsChecker) fetchGroup(ctx context.Context, u *url.URL) *robotstxt.Group {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return data.FindGroup(r.userAgent)
}
