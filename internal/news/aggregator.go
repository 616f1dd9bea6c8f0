package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/rajasatyajit/ReputationCheck/internal/errors"
	"github.com/rajasatyajit/ReputationCheck/internal/logger"
	"github.com/rajasatyajit/ReputationCheck/internal/metrics"
	"github.com/rajasatyajit/ReputationCheck/internal/models"
	"github.com/rajasatyajit/ReputationCheck/internal/sentiment"
	"github.com/rajasatyajit/ReputationCheck/pkg/utils"
)

const sourceName = "NewsAPI Search"

// Sentinel titles marking synthetic no-data findings. Items carrying one of
// these pass through the aggregator untouched with neutral sentiment.
const (
	titleNoNews      = "No recent news articles found"
	titleRateLimited = "News API rate limit reached"
	titleUnavailable = "News search temporarily unavailable"
	titleSearchError = "News search error"
)

// placeholderSentinels tags synthetic items by title convention
var placeholderSentinels = []string{
	titleNoNews, titleRateLimited, titleUnavailable, titleSearchError,
}

// Items with titles shorter than this many characters carry insufficient signal
const minTitleLength = 10

// Searcher is the news collaborator contract
type Searcher interface {
	Search(ctx context.Context, name string) ([]models.RawNewsItem, error)
}

// Aggregator turns raw news items into scored findings plus a sentiment
// summary for the risk computation. Upstream failures degrade to a single
// informative placeholder finding; they never raise to the caller.
type Aggregator struct {
	client   Searcher
	analyzer *sentiment.Analyzer
}

// NewAggregator creates a news aggregator
func NewAggregator(client Searcher, analyzer *sentiment.Analyzer) *Aggregator {
	return &Aggregator{client: client, analyzer: analyzer}
}

// Run fetches, filters, scores, and classifies news coverage for a subject.
func (a *Aggregator) Run(ctx context.Context, name string) ([]models.NewsFinding, models.NewsSummary, models.SourceStatus) {
	items, err := a.client.Search(ctx, name)
	if err != nil {
		logger.WithContext(ctx).Warn("News search degraded", "subject", name, "error", err)

		var placeholder models.NewsFinding
		status := models.StatusError
		switch {
		case errors.Is(err, apperrors.ErrRateLimited):
			placeholder = Placeholder(titleRateLimited, "System", "Too many requests. Please try again later.")
			status = models.StatusUnavailable
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			placeholder = Placeholder(titleUnavailable, "System", "Unable to retrieve news at this time.")
			status = models.StatusUnavailable
		default:
			placeholder = Placeholder(titleSearchError, "System", fmt.Sprintf("Error: %s", apperrors.Reason(err)))
		}

		metrics.RecordSourceFetch(sourceName, status)
		return []models.NewsFinding{placeholder},
			models.NewsSummary{},
			models.SourceStatus{Name: sourceName, Count: 0, Status: status}
	}

	findings := a.buildFindings(items, name)

	summary := Summarize(findings)
	metrics.RecordSourceFetch(sourceName, models.StatusCompleted)
	return findings, summary, models.SourceStatus{
		Name:   sourceName,
		Count:  summary.RealCount,
		Status: models.StatusCompleted,
	}
}

// buildFindings scores real items and passes placeholders through untouched.
func (a *Aggregator) buildFindings(items []models.RawNewsItem, name string) []models.NewsFinding {
	if len(items) == 0 {
		return []models.NewsFinding{
			Placeholder(titleNoNews, "NewsAPI",
				fmt.Sprintf("No news coverage found for %q in the past 30 days.", name)),
		}
	}

	findings := make([]models.NewsFinding, 0, len(items))
	for _, item := range items {
		if utils.ContainsAny(item.Title, placeholderSentinels) {
			// Caller-supplied synthetic placeholder: neutral, unfiltered
			findings = append(findings, models.NewsFinding{
				Title:       item.Title,
				Date:        item.PublishedAt,
				Source:      item.SourceName,
				URL:         item.URL,
				Snippet:     item.Description,
				Sentiment:   models.SentimentNeutral,
				Placeholder: true,
			})
			continue
		}

		if utf8.RuneCountInString(item.Title) < minTitleLength {
			continue
		}

		content := item.Title + " " + item.Description
		score := a.analyzer.Score(content)

		snippet := item.Description
		if snippet == "" {
			snippet = item.Title
		}

		source := item.SourceName
		if source == "" {
			source = "Unknown"
		}

		findings = append(findings, models.NewsFinding{
			Title:          item.Title,
			Date:           truncateDate(item.PublishedAt),
			Source:         source,
			URL:            item.URL,
			Snippet:        snippet,
			Sentiment:      a.analyzer.Classify(score),
			SentimentScore: score,
		})
	}

	if len(findings) == 0 {
		findings = append(findings, Placeholder(titleNoNews, "NewsAPI",
			fmt.Sprintf("No news coverage found for %q in the past 30 days.", name)))
	}

	return findings
}

// Summarize averages sentiment over real findings only. A zero RealCount
// marks the "no data" condition, distinct from a neutral average of zero.
func Summarize(findings []models.NewsFinding) models.NewsSummary {
	var sum float64
	var count int
	for _, f := range findings {
		if f.Placeholder {
			continue
		}
		sum += f.SentimentScore
		count++
	}

	summary := models.NewsSummary{RealCount: count}
	if count > 0 {
		summary.Average = sum / float64(count)
	}
	return summary
}

// Placeholder builds a synthetic neutral finding for a no-data condition.
func Placeholder(title, source, snippet string) models.NewsFinding {
	return models.NewsFinding{
		Title:       title,
		Date:        time.Now().UTC().Format("2006-01-02"),
		Source:      source,
		URL:         "#",
		Snippet:     snippet,
		Sentiment:   models.SentimentNeutral,
		Placeholder: true,
	}
}

func truncateDate(published string) string {
	if len(published) > 10 {
		return published[:10]
	}
	return strings.TrimSpace(published)
}
