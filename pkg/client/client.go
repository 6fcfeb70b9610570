// Package client talks to the article feed API: three JSON endpoints under
// one base URL.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/adaora/newswire/models"
	"github.com/adaora/newswire/pkg/cache"
)

// Client fetches and decodes feed payloads. A nil cache disables caching.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *cache.Cache
}

// New creates a Client for the given base URL. timeout applies per request.
func New(baseURL string, timeout time.Duration, c *cache.Cache) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   c,
	}
}

// FeedURL returns the URL of the article list endpoint.
func (c *Client) FeedURL() string {
	return c.baseURL + "/data/list.json"
}

// ArticleURL returns the URL of the detail endpoint for one article.
func (c *Client) ArticleURL(id string) string {
	return fmt.Sprintf("%s/data/articles/%s.json", c.baseURL, id)
}

// MediaURL returns the URL of the media endpoint for one article.
func (c *Client) MediaURL(id string) string {
	return fmt.Sprintf("%s/data/media/%s.json", c.baseURL, id)
}

// Feed fetches the list of article headings.
func (c *Client) Feed(ctx context.Context) ([]models.Heading, error) {
	var headings []models.Heading
	if err := c.getJSON(ctx, c.FeedURL(), &headings); err != nil {
		return nil, err
	}
	return headings, nil
}

// ArticleDetail fetches the detail payload for one article.
func (c *Client) ArticleDetail(ctx context.Context, id string) (*models.ArticleDetail, error) {
	var detail models.ArticleDetail
	if err := c.getJSON(ctx, c.ArticleURL(id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Media fetches the media payloads for one article.
func (c *Client) Media(ctx context.Context, id string) ([]models.MediaPayload, error) {
	var media []models.MediaPayload
	if err := c.getJSON(ctx, c.MediaURL(id), &media); err != nil {
		return nil, err
	}
	return media, nil
}

// getJSON performs one GET and decodes the body into v. Transport failures
// become a NetworkError, non-2xx statuses and undecodable bodies a
// ResponseError.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	if c.cache != nil {
		// Syntactically corrupt entries count as misses before v is
		// touched; a decode into v must either succeed or be reported,
		// since a later decode of the fresh body would not reset fields
		// the failed one already set.
		if data, ok := c.cache.Get(url); ok && json.Valid(data) {
			if err := json.Unmarshal(data, v); err != nil {
				return &ResponseError{URL: url, Err: fmt.Errorf("cached response: %w", err)}
			}
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ResponseError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &ResponseError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	if c.cache != nil {
		_ = c.cache.Set(url, body) // best effort
	}
	return nil
}
