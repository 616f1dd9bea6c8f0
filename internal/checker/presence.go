package checker

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rajasatyajit/ReputationCheck/internal/models"
)

const presenceSourceName = "Google Web Search"

// WebPresenceProbe checks whether a subject has any general web footprint.
// Best-effort audit-trail data only: the boolean makes a miss explicit
// instead of silently dropping it, and the result never feeds the risk score.
type WebPresenceProbe struct {
	client    *http.Client
	searchURL string
	userAgent string
}

// NewWebPresenceProbe creates a web presence probe
func NewWebPresenceProbe() *WebPresenceProbe {
	return &WebPresenceProbe{
		client:    &http.Client{Timeout: 5 * time.Second},
		searchURL: "https://www.google.com/search",
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	}
}

// Probe fires one search request. Returns false on any failure.
func (p *WebPresenceProbe) Probe(ctx context.Context, name string) (models.SourceStatus, bool) {
	q := url.Values{}
	q.Set("q", name+" Philippines")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.searchURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.SourceStatus{}, false
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return models.SourceStatus{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.SourceStatus{}, false
	}

	return models.SourceStatus{
		Name:   presenceSourceName,
		Count:  1,
		Status: models.StatusCompleted,
	}, true
}
