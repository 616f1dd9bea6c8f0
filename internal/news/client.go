package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/rajasatyajit/ReputationCheck/config"
	apperrors "github.com/rajasatyajit/ReputationCheck/internal/errors"
	"github.com/rajasatyajit/ReputationCheck/internal/models"
)

// Client fetches articles from the NewsAPI "everything" endpoint
type Client struct {
	cfg     config.NewsConfig
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a new NewsAPI client
func NewClient(cfg config.NewsConfig) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), int(cfg.RateLimit)),
	}
}

// apiResponse mirrors the NewsAPI response envelope
type apiResponse struct {
	Status   string       `json:"status"`
	Articles []apiArticle `json:"articles"`
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Search queries news coverage for a subject within the configured window.
// Rate limiting by the upstream maps to ErrRateLimited; any other upstream
// failure maps to ErrUpstreamUnavailable. Neither is ever surfaced past the
// aggregator.
func (c *Client) Search(ctx context.Context, name string) ([]models.RawNewsItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.SourceError{Source: sourceName, Stage: "rate", Err: err}
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -c.cfg.WindowDays)

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s Philippines", name))
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))
	params.Set("pageSize", fmt.Sprintf("%d", c.cfg.PageSize))
	params.Set("apiKey", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.SourceError{Source: sourceName, Stage: "request", Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.SourceError{Source: sourceName, Stage: "fetch", Err: apperrors.ErrUpstreamUnavailable}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decoding
	case resp.StatusCode == http.StatusUpgradeRequired:
		// NewsAPI signals plan rate limits with 426
		return nil, apperrors.SourceError{Source: sourceName, Stage: "fetch", Err: apperrors.ErrRateLimited}
	default:
		return nil, apperrors.SourceError{Source: sourceName, Stage: "fetch", Err: apperrors.ErrUpstreamUnavailable}
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.SourceError{Source: sourceName, Stage: "decode", Err: apperrors.ErrMalformedOutput}
	}

	items := make([]models.RawNewsItem, 0, len(body.Articles))
	for _, a := range body.Articles {
		items = append(items, models.RawNewsItem{
			Title:       a.Title,
			Description: a.Description,
			PublishedAt: a.PublishedAt,
			SourceName:  a.Source.Name,
			URL:         a.URL,
		})
	}

	return items, nil
}
