package checker

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/rajasatyajit/ReputationCheck/internal/errors"
	"github.com/rajasatyajit/ReputationCheck/internal/logger"
	"github.com/rajasatyajit/ReputationCheck/internal/metrics"
	"github.com/rajasatyajit/ReputationCheck/internal/models"
	"github.com/rajasatyajit/ReputationCheck/internal/risk"
)

// NewsAggregator produces scored news findings for a subject
type NewsAggregator interface {
	Run(ctx context.Context, name string) ([]models.NewsFinding, models.NewsSummary, models.SourceStatus)
}

// SocialAggregator produces one aggregated platform finding for a subject
type SocialAggregator interface {
	Run(ctx context.Context, name string) (models.SocialFinding, models.SourceStatus)
}

// Registry performs optional supplementary-evidence lookups
type Registry interface {
	Enabled() bool
	LicenseLookup(ctx context.Context, name string) (*models.LicenseRecord, models.SourceStatus)
	CourtLookup(ctx context.Context, name string) (*models.CourtRecord, models.SourceStatus)
}

// Probe checks general web presence for the audit trail
type Probe interface {
	Probe(ctx context.Context, name string) (models.SourceStatus, bool)
}

// Checker runs the background-check pipeline. It holds only stateless
// collaborators, so one instance safely serves concurrent requests; all
// per-check state lives in the result built inside Run.
type Checker struct {
	news     NewsAggregator
	social   SocialAggregator
	registry Registry // optional
	probe    Probe    // optional
}

// New creates a checker. registry and probe may be nil.
func New(news NewsAggregator, social SocialAggregator, registry Registry, probe Probe) *Checker {
	return &Checker{
		news:     news,
		social:   social,
		registry: registry,
		probe:    probe,
	}
}

// Run performs one full background check: news evidence, social evidence,
// web presence, supplementary lookups, then the risk computation. Evidence
// sources degrade individually; only an empty subject name is an error.
func (c *Checker) Run(ctx context.Context, name string) (*models.CheckResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ValidationError{Field: "name", Message: "is required"}
	}

	start := time.Now()
	log := logger.WithContext(ctx)
	log.Info("Starting background check", "subject", name)

	result := &models.CheckResult{
		ID:        uuid.NewString(),
		Subject:   name,
		Timestamp: time.Now().UTC(),
		Social:    []models.SocialFinding{},
		Sources:   []models.SourceStatus{},
	}

	newsFindings, newsSummary, newsStatus := c.news.Run(ctx, name)
	result.News = newsFindings
	result.Sources = append(result.Sources, newsStatus)

	socialFinding, socialStatus := c.social.Run(ctx, name)
	result.Social = append(result.Social, socialFinding)
	result.Sources = append(result.Sources, socialStatus)

	if c.probe != nil {
		if status, found := c.probe.Probe(ctx, name); found {
			result.Sources = append(result.Sources, status)
		}
	}

	if c.registry != nil && c.registry.Enabled() {
		license, licenseStatus := c.registry.LicenseLookup(ctx, name)
		result.Licenses = license
		result.Sources = append(result.Sources, licenseStatus)

		court, courtStatus := c.registry.CourtLookup(ctx, name)
		result.Court = court
		result.Sources = append(result.Sources, courtStatus)
	}

	result.Risk = risk.Compute(newsSummary, result.Social, result.Licenses, result.Court)

	metrics.RecordCheckCompleted(result.Risk.Level, time.Since(start))
	log.Info("Background check complete",
		"subject", name,
		"risk_level", result.Risk.Level,
		"risk_score", result.Risk.Score,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}
