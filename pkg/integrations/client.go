package integrations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/depviz/pkg/cache"
	"github.com/matzehuels/depviz/pkg/observability"
)

// Client provides shared HTTP functionality for registry clients.
// It handles caching, retry logic, and common request headers.
type Client struct {
	http      *http.Client
	cache     cache.Cache
	namespace string
	ttl       time.Duration
	headers   map[string]string
	backoff   cache.Backoff
}

// NewClient creates a Client backed by c. Cache keys are prefixed with
// namespace and stored for ttl. Pass nil headers if none are needed.
// A nil cache disables caching.
func NewClient(c cache.Cache, namespace string, ttl time.Duration, headers map[string]string) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:      NewHTTPClient(),
		cache:     c,
		namespace: namespace,
		ttl:       ttl,
		headers:   headers,
		backoff:   cache.DefaultBackoff,
	}
}

// keyType labels cache events, e.g. "maven" for namespace "maven:".
func (c *Client) keyType() string {
	return strings.TrimSuffix(c.namespace, ":")
}

// CachedText is like [Client.GetText] but serves and stores the body through
// the cache, keyed by namespace plus request URL. With refresh set the cache is
// not read, but the fresh body is still stored. Failed fetches are never cached.
func (c *Client) CachedText(ctx context.Context, rawURL string, refresh bool) (string, error) {
	hooks := observability.Cache()
	if !refresh {
		if data, ok := c.lookup(ctx, rawURL); ok {
			hooks.OnCacheHit(ctx, c.keyType())
			return string(data), nil
		}
		hooks.OnCacheMiss(ctx, c.keyType())
	}

	var text string
	err := c.backoff.Retry(ctx, func() error {
		var err error
		text, err = c.GetText(ctx, rawURL)
		return err
	})
	if err != nil {
		return "", err
	}
	c.store(ctx, rawURL, []byte(text))
	return text, nil
}

// lookup treats backend failures as misses.
func (c *Client) lookup(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := c.cache.Get(ctx, c.namespace+key)
	if err != nil || !ok {
		return nil, false
	}
	return data, true
}

func (c *Client) store(ctx context.Context, key string, data []byte) {
	if err := c.cache.Set(ctx, c.namespace+key, data, c.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, c.keyType(), len(data))
	}
}

// GetText performs an HTTP GET request and returns the response body as a string.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return "", cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	return string(data), nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := splitURL(rawURL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
