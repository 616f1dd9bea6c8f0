// Package risk combines aggregated evidence into a bounded 0-100 score with
// a severity tier and recommendation. Compute is pure and deterministic:
// identical inputs always produce an identical assessment.
package risk

import (
	"fmt"

	"github.com/rajasatyajit/ReputationCheck/internal/models"
)

// Contribution weights. News carries the heaviest single weight.
const (
	newsNoDataPenalty      = 15
	newsSevereNegative     = 50
	newsSomeNegative       = 30
	newsNeutralPenalty     = 5
	newsPositiveBonus      = 10
	socialNegativePenalty  = 25
	socialPositiveBonus    = 5
	socialMixedPenalty     = 10
	socialNoDataPenalty    = 10
	licenseAbsencePenalty  = 40
	adverseCasePenalty     = 50 // per adverse record
)

// News sentiment-average brackets.
const (
	severeNegativeBelow = -0.3
	someNegativeBelow   = -0.1
	positiveAbove       = 0.3
)

// Tier cut-offs: score < 30 is Low, < 60 is Medium, else High.
const (
	mediumFloor = 30
	highFloor   = 60
)

// Compute derives a RiskAssessment from the aggregated evidence. license and
// court may be nil when supplementary lookups did not run. When multiple
// rules of the same category fire, the last-written explanation wins.
func Compute(news models.NewsSummary, social []models.SocialFinding, license *models.LicenseRecord, court *models.CourtRecord) models.RiskAssessment {
	score := 0
	factors := map[string]string{}

	// News contribution
	if news.RealCount == 0 {
		score += newsNoDataPenalty
		factors["news"] = "Limited public media presence"
	} else {
		avg := news.Average
		switch {
		case avg < severeNegativeBelow:
			score += newsSevereNegative
			factors["news"] = "Significantly negative media coverage detected"
		case avg < someNegativeBelow:
			score += newsSomeNegative
			factors["news"] = "Some negative media mentions found"
		case avg > positiveAbove:
			score -= newsPositiveBonus
			factors["news"] = "Positive media presence confirmed"
		default:
			score += newsNeutralPenalty
			factors["news"] = "Neutral media coverage"
		}
	}

	// Social contribution
	if len(social) == 0 {
		score += socialNoDataPenalty
		factors["social"] = "Limited social media presence"
	}
	for _, s := range social {
		if s.Mentions > 0 {
			switch s.Sentiment {
			case models.SentimentNegative:
				score += socialNegativePenalty
				factors["social"] = "Negative public discussions detected"
			case models.SentimentPositive:
				score -= socialPositiveBonus
				factors["social"] = "Positive public sentiment"
			case models.SentimentMixed:
				score += socialMixedPenalty
				factors["social"] = "Mixed public opinions"
			}
		} else {
			score += socialNoDataPenalty
			factors["social"] = "No significant online discussions"
		}
	}

	// Supplementary evidence, additive and independent of the above
	if license != nil && license.Expected && !license.Found {
		score += licenseAbsencePenalty
		factors["license"] = "Expected professional license not found"
	}
	if court != nil && court.AdverseCases > 0 {
		score += adverseCasePenalty * court.AdverseCases
		factors["legal"] = fmt.Sprintf("%d adverse legal record(s) found", court.AdverseCases)
	}

	score = clampScore(score)

	return models.RiskAssessment{
		Score:          score,
		Level:          level(score),
		Recommendation: recommendation(score),
		Factors:        factors,
	}
}

func level(score int) string {
	switch {
	case score < mediumFloor:
		return models.RiskLow
	case score < highFloor:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

func recommendation(score int) string {
	switch {
	case score < mediumFloor:
		return "Approved for contracting"
	case score < highFloor:
		return "Requires further review"
	default:
		return "High risk - not recommended"
	}
}

// clampScore bounds the score to [0, 100]; additive penalties can exceed 100
// and bonuses can push below 0.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
