package streaming

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	maxBodySize     = 4 << 20
	maxPages        = 100
	defaultRetryGap = time.Second
	maxRetryWait    = 30 * time.Second
)

type responseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

type Options struct {
	HTTPClient *http.Client
	// Cache == nil отключает кеширование.
	Cache      responseCache
	MaxRetries int
}

// UpstreamError - ответ API провайдера с кодом не из 2xx.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s (status %d): %s", domain.ErrUpstream, e.Status, e.Message)
}

func (e *UpstreamError) Is(target error) bool {
	return target == domain.ErrUpstream
}

type client struct {
	http       *http.Client
	cache      responseCache
	maxRetries int
	log        logger.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

func newClient(opts Options, log logger.Logger) *client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &client{
		http:       httpClient,
		cache:      opts.Cache,
		maxRetries: opts.MaxRetries,
		log:        log,
		sleep:      sleepCtx,
	}
}

func (c *client) get(ctx context.Context, url, token string) (json.RawMessage, error) {
	key := CacheKey(url, token)

	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.log.Warn("streaming cache read failed", logger.String("error", err.Error()))
		} else if ok {
			c.log.Debug("streaming cache hit", logger.String("url", url))
			return body, nil
		}
	}

	body, err := c.do(ctx, url, token)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err = c.cache.Set(ctx, key, body); err != nil {
			c.log.Warn("streaming cache write failed", logger.String("error", err.Error()))
		}
	}

	return body, nil
}

func (c *client) do(ctx context.Context, url, token string) (json.RawMessage, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read body: %v", domain.ErrUpstream, err)
		}
		// обрезанный JSON нельзя ни отдавать, ни класть в кеш
		if len(body) > maxBodySize {
			return nil, fmt.Errorf("%w: response body exceeds %d bytes", domain.ErrUpstream, maxBodySize)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests && attempt < c.maxRetries:
			wait := retryAfter(resp.Header.Get("Retry-After"))
			c.log.Warn("streaming api rate limit exceeded, retrying",
				logger.String("url", url),
				logger.Duration("retry_after", wait),
				logger.Int("attempt", attempt+1),
			)
			if err = c.sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue
		case resp.StatusCode == http.StatusUnauthorized:
			return nil, fmt.Errorf("%w: access token rejected", domain.ErrAccountNotLinked)
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return nil, &UpstreamError{Status: resp.StatusCode, Message: upstreamMessage(body)}
		}

		return body, nil
	}
}

// pager достаёт элементы страницы и адрес следующей ("" - страниц больше нет).
type pager func(body json.RawMessage) ([]json.RawMessage, string, error)

func (c *client) collect(ctx context.Context, url, token string, page pager) (json.RawMessage, error) {
	all := make([]json.RawMessage, 0)

	next := url
	for i := 0; next != "" && i < maxPages; i++ {
		body, err := c.get(ctx, next, token)
		if err != nil {
			return nil, err
		}

		items, n, err := page(body)
		if err != nil {
			return nil, fmt.Errorf("%w: decode page: %v", domain.ErrUpstream, err)
		}
		all = append(all, items...)
		next = n
	}

	out, err := json.Marshal(all)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	return out, nil
}

func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return defaultRetryGap
	}
	if secs > int(maxRetryWait/time.Second) {
		return maxRetryWait
	}
	return time.Duration(secs) * time.Second
}

func upstreamMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
