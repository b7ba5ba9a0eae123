package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mseongj/pondok-news/logger"
	"github.com/mseongj/pondok-news/models"
)

// maxBodySize caps how much of the upstream response is read.
const maxBodySize = 32 << 20

// Client calls the upstream news API. It holds no per-request state.
type Client struct {
	url        string
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(apiURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		url: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: log,
	}
}

// FetchAll makes exactly one request to the upstream API. On failure it
// returns an empty collection together with a *FetchError.
func (c *Client) FetchAll(ctx context.Context) ([]models.Article, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return []models.Article{}, &FetchError{URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("news API request failed: %v", err)
		return []models.Article{}, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("news API responded with status %d", resp.StatusCode)
		return []models.Article{}, &FetchError{URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.log.Error("failed to read news API response: %v", err)
		return []models.Article{}, &FetchError{URL: c.url, Err: err}
	}

	var newsResp models.NewsResponse
	if err := json.Unmarshal(body, &newsResp); err != nil {
		c.log.Error("failed to parse news API response: %v", err)
		return []models.Article{}, &FetchError{URL: c.url, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	articles := newsResp.Data
	if articles == nil {
		articles = []models.Article{}
	}

	c.log.WithFields(map[string]any{
		"articles": len(articles),
		"duration": time.Since(start).String(),
	}).Debug("fetched articles from news API")

	return articles, nil
}
