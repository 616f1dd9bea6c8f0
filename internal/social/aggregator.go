package social

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rajasatyajit/ReputationCheck/config"
	apperrors "github.com/rajasatyajit/ReputationCheck/internal/errors"
	"github.com/rajasatyajit/ReputationCheck/internal/logger"
	"github.com/rajasatyajit/ReputationCheck/internal/metrics"
	"github.com/rajasatyajit/ReputationCheck/internal/models"
	"github.com/rajasatyajit/ReputationCheck/internal/sentiment"
	"github.com/rajasatyajit/ReputationCheck/pkg/utils"
)

const sourceName = "Reddit Sentiment Scan"

const (
	maxSampleComments = 5
	maxSampleTextLen  = 200
)

// Aggregator scans one discussion platform for mentions of a subject and
// produces an aggregated SocialFinding. Scraper failures degrade to an N/A
// finding; they never raise to the caller.
type Aggregator struct {
	scraper  Scraper
	analyzer *sentiment.Analyzer
	platform string
	channels []string
	maxPosts int
}

// NewAggregator creates a social aggregator
func NewAggregator(scraper Scraper, analyzer *sentiment.Analyzer, cfg config.ScraperConfig) *Aggregator {
	return &Aggregator{
		scraper:  scraper,
		analyzer: analyzer,
		platform: cfg.Platform,
		channels: cfg.Channels,
		maxPosts: cfg.MaxPosts,
	}
}

// Run scrapes the platform, scores every post, and derives one aggregate
// sentiment for the platform.
func (a *Aggregator) Run(ctx context.Context, name string) (models.SocialFinding, models.SourceStatus) {
	result, err := a.scraper.Scrape(ctx, name, a.channels, a.maxPosts)
	if err != nil {
		logger.WithContext(ctx).Warn("Social scan degraded", "subject", name, "error", err)

		// The scraper never ran, or was cut off: no evidence at all (N/A).
		// It ran but produced garbage or died mid-scrape: error.
		sentimentLabel, status := models.SentimentNA, models.StatusUnavailable
		if errors.Is(err, apperrors.ErrMalformedOutput) {
			sentimentLabel, status = models.SentimentError, models.StatusError
		}

		metrics.RecordSourceFetch(sourceName, status)
		return models.SocialFinding{
				Platform:       a.platform,
				Mentions:       0,
				Sentiment:      sentimentLabel,
				Summary:        fmt.Sprintf("Unable to scan Reddit: %s", apperrors.Reason(err)),
				SampleComments: []models.SampleComment{},
			}, models.SourceStatus{
				Name:   sourceName,
				Count:  0,
				Status: status,
			}
	}

	if len(result.Posts) == 0 {
		metrics.RecordSourceFetch(sourceName, models.StatusCompleted)
		return models.SocialFinding{
				Platform:       a.platform,
				Mentions:       0,
				Sentiment:      models.SentimentNA,
				Summary:        "No discussions found about this entity.",
				SampleComments: []models.SampleComment{},
			}, models.SourceStatus{
				Name:   sourceName,
				Count:  0,
				Status: models.StatusCompleted,
			}
	}

	var positive, negative, neutral int
	samples := make([]models.SampleComment, 0, maxSampleComments)

	for _, post := range result.Posts {
		fullText := joinText(post.Title, post.FullText)
		score := a.analyzer.Score(fullText)
		label := a.analyzer.Classify(score)

		switch label {
		case models.SentimentPositive:
			positive++
		case models.SentimentNegative:
			negative++
		default:
			neutral++
		}

		if len(samples) < maxSampleComments {
			text := post.Title
			if text == "" {
				text = post.FullText
			}
			samples = append(samples, models.SampleComment{
				Text:      utils.Truncate(text, maxSampleTextLen),
				Author:    orDefault(post.Author, "anonymous"),
				Subreddit: post.Subreddit,
				Score:     post.Score,
				URL:       orDefault(post.URL, "#"),
				Sentiment: label,
				Keywords:  a.analyzer.ExtractKeywords(fullText),
			})
		}
	}

	// Negative evidence surfaces first, then neutral, then positive
	sort.SliceStable(samples, func(i, j int) bool {
		return sampleRank(samples[i].Sentiment) < sampleRank(samples[j].Sentiment)
	})

	metrics.RecordSourceFetch(sourceName, models.StatusCompleted)
	return models.SocialFinding{
			Platform:       a.platform,
			Mentions:       result.Total,
			Sentiment:      overallSentiment(positive, negative, neutral),
			Summary:        fmt.Sprintf("%d positive, %d negative, %d neutral discussions found.", positive, negative, neutral),
			SampleComments: samples,
		}, models.SourceStatus{
			Name:   sourceName,
			Count:  result.Total,
			Status: models.StatusCompleted,
		}
}

// overallSentiment derives the platform label from the tallies. Positive
// requires a strict majority over both other counts; negative wins ties
// against neutral but not against positive; anything else is mixed.
func overallSentiment(positive, negative, neutral int) string {
	switch {
	case positive > negative && positive > neutral:
		return models.SentimentPositive
	case negative > positive:
		return models.SentimentNegative
	default:
		return models.SentimentMixed
	}
}

func sampleRank(label string) int {
	switch label {
	case models.SentimentNegative:
		return 0
	case models.SentimentNeutral:
		return 1
	default:
		return 2
	}
}

func joinText(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
