package sentiment

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/rajasatyajit/ReputationCheck/internal/models"
)

const (
	// Classification thresholds. Applied uniformly wherever a score turns
	// into a label so news and social evidence classify consistently.
	positiveThreshold = 0.1
	negativeThreshold = -0.1

	// Per-term weight of the bilingual lexicon adjustment layered on top of
	// the general-English base polarity.
	adjustmentStep = 0.3
)

// Analyzer scores free text for sentiment polarity. It combines a VADER base
// estimate with a bilingual keyword adjustment for Filipino and code-switched
// text the English model does not cover. Safe for concurrent use.
type Analyzer struct{}

// New creates a new analyzer instance
func New() *Analyzer {
	return &Analyzer{}
}

// Score returns a polarity score clamped to [-1, 1]. Empty text scores 0.
func (a *Analyzer) Score(text string) float64 {
	if text == "" {
		return 0
	}

	base := sentitext.PolarityScore(sentitext.Parse(text, lexicon.DefaultLexicon)).Compound

	textLower := strings.ToLower(text)
	negCount := countPresent(textLower, negativeTerms)
	posCount := countPresent(textLower, positiveTerms)

	if negCount > posCount {
		base -= adjustmentStep * float64(negCount-posCount)
	} else if posCount > negCount {
		base += adjustmentStep * float64(posCount-negCount)
	}

	// The adjustment alone can overshoot the range.
	return clamp(base, -1, 1)
}

// ExtractKeywords returns the negative-indicator terms present in the text.
func (a *Analyzer) ExtractKeywords(text string) []string {
	found := []string{}
	textLower := strings.ToLower(text)
	for _, keyword := range negativeIndicators {
		if strings.Contains(textLower, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// Classify maps a score to a sentiment label. Scores within the neutral band
// [-0.1, 0.1] inclusive are neutral.
func (a *Analyzer) Classify(score float64) string {
	switch {
	case score > positiveThreshold:
		return models.SentimentPositive
	case score < negativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// countPresent counts how many terms appear in the text. Matching is
// substring containment; a multi-word phrase matches verbatim with its
// spaces. Each term counts at most once.
func countPresent(textLower string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(textLower, term) {
			count++
		}
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
