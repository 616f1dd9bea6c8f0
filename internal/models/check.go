package models

import "time"

// Sentiment labels applied to individual findings.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Aggregate sentiment values for a platform scan. Positive/negative carry
// over from the per-item labels; the rest only appear at the platform level.
const (
	SentimentMixed = "mixed"
	SentimentNA    = "N/A"
	SentimentError = "error"
)

// Source statuses recorded in the audit trail.
const (
	StatusCompleted   = "completed"
	StatusUnavailable = "unavailable"
	StatusError       = "error"
	StatusSimulated   = "simulated"
)

// Risk tiers.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// RawNewsItem is one article as returned by the news collaborator.
// Transient; never persisted.
type RawNewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
	SourceName  string `json:"source_name"`
	URL         string `json:"url"`
}

// RawSocialPost is one post in the scraper's fixed output schema. Fields may
// be absent in the upstream JSON and default to empty/zero.
type RawSocialPost struct {
	Title     string `json:"title"`
	FullText  string `json:"full_text"`
	Author    string `json:"author"`
	Subreddit string `json:"subreddit"`
	Score     int    `json:"score"`
	URL       string `json:"url"`
}

// NewsFinding is a scored news article. Placeholder findings stand in for
// "no data" conditions and are excluded from sentiment averaging.
type NewsFinding struct {
	Title          string  `json:"title"`
	Date           string  `json:"date"`
	Source         string  `json:"source"`
	URL            string  `json:"url"`
	Snippet        string  `json:"snippet"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	Placeholder    bool    `json:"placeholder,omitempty"`
}

// NewsSummary carries the aggregate the risk computation needs. RealCount
// distinguishes "no data" from a genuinely neutral average of zero.
type NewsSummary struct {
	RealCount int     `json:"real_count"`
	Average   float64 `json:"average"`
}

// SampleComment is one representative post attached to a SocialFinding.
type SampleComment struct {
	Text      string   `json:"text"`
	Author    string   `json:"author"`
	Subreddit string   `json:"subreddit"`
	Score     int      `json:"score"`
	URL       string   `json:"url"`
	Sentiment string   `json:"sentiment"`
	Keywords  []string `json:"keywords"`
}

// SocialFinding is the aggregated result of scanning one platform.
type SocialFinding struct {
	Platform       string          `json:"platform"`
	Mentions       int             `json:"mentions"`
	Sentiment      string          `json:"sentiment"`
	Summary        string          `json:"summary"`
	SampleComments []SampleComment `json:"sample_comments"`
}

// SourceStatus is one audit-trail entry for a collaborator that ran during a
// check. Entries are appended by the per-request builder and never mutated.
type SourceStatus struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Status string `json:"status"`
}

// LicenseRecord is the (stubbed) professional-license lookup result.
type LicenseRecord struct {
	Authority string `json:"authority"`
	Expected  bool   `json:"expected"`
	Found     bool   `json:"found"`
	LicenseNo string `json:"license_no,omitempty"`
	Status    string `json:"status"`
}

// CourtRecord is the (stubbed) legal-record lookup result.
type CourtRecord struct {
	Registry     string `json:"registry"`
	AdverseCases int    `json:"adverse_cases"`
	Summary      string `json:"summary"`
}

// RiskAssessment is the final, immutable output of one check.
type RiskAssessment struct {
	Score          int               `json:"score"`
	Level          string            `json:"level"`
	Recommendation string            `json:"recommendation"`
	Factors        map[string]string `json:"factors"`
}

// CheckResult is the full response body for one background check.
type CheckResult struct {
	ID        string          `json:"id"`
	Subject   string          `json:"subject"`
	Timestamp time.Time       `json:"timestamp"`
	Risk      RiskAssessment  `json:"risk"`
	News      []NewsFinding   `json:"news"`
	Social    []SocialFinding `json:"social"`
	Sources   []SourceStatus  `json:"sources"`
	Licenses  *LicenseRecord  `json:"licenses,omitempty"`
	Court     *CourtRecord    `json:"court,omitempty"`
}
