// Package registry provides license and court-record lookups. Real registry
// integration is out of scope; lookups return simulated records tagged with a
// "simulated" SourceStatus so downstream consumers can tell them apart from
// live evidence.
package registry

import (
	"context"

	"github.com/rajasatyajit/ReputationCheck/config"
	"github.com/rajasatyajit/ReputationCheck/internal/models"
)

const (
	licenseSourceName = "PRC License Verification"
	courtSourceName   = "eCourt Case Search"
)

// Client performs supplementary-evidence lookups
type Client struct {
	enabled bool
}

// New creates a registry client
func New(cfg config.RegistryConfig) *Client {
	return &Client{enabled: cfg.Enabled}
}

// Enabled reports whether lookups are active
func (c *Client) Enabled() bool {
	return c.enabled
}

// LicenseLookup checks the professional-license registry for a subject.
// The simulated registry reports no license requirement, so the absence
// penalty never fires from stub data.
func (c *Client) LicenseLookup(ctx context.Context, name string) (*models.LicenseRecord, models.SourceStatus) {
	record := &models.LicenseRecord{
		Authority: "Professional Regulation Commission",
		Expected:  false,
		Found:     false,
		Status:    "no license requirement on file",
	}

	return record, models.SourceStatus{
		Name:   licenseSourceName,
		Count:  0,
		Status: models.StatusSimulated,
	}
}

// CourtLookup checks the court registry for adverse records on a subject.
func (c *Client) CourtLookup(ctx context.Context, name string) (*models.CourtRecord, models.SourceStatus) {
	record := &models.CourtRecord{
		Registry:     "Supreme Court eCourt",
		AdverseCases: 0,
		Summary:      "No adverse records found in simulated registry.",
	}

	return record, models.SourceStatus{
		Name:   courtSourceName,
		Count:  0,
		Status: models.StatusSimulated,
	}
}
