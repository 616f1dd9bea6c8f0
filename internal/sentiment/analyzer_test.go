package sentiment

import (
	"testing"

	"github.com/rajasatyajit/ReputationCheck/internal/models"
)

func TestAnalyzer_Score(t *testing.T) {
	analyzer := New()

	t.Run("Empty text scores zero", func(t *testing.T) {
		if got := analyzer.Score(""); got != 0 {
			t.Errorf("Expected 0 for empty text, got %f", got)
		}
	})

	t.Run("Clamped to lower bound", func(t *testing.T) {
		// Five negative terms push the adjustment far past -1
		got := analyzer.Score("scam fraud fake liar corrupt")
		if got != -1 {
			t.Errorf("Expected clamp to -1, got %f", got)
		}
	})

	t.Run("Clamped to upper bound", func(t *testing.T) {
		// Six positive Filipino terms push the adjustment far past +1
		got := analyzer.Score("maganda mabuti galing sulit magaling legit")
		if got != 1 {
			t.Errorf("Expected clamp to 1, got %f", got)
		}
	})

	t.Run("Negative Taglish review", func(t *testing.T) {
		got := analyzer.Score("Walang kwenta ang serbisyo nila, puro delay at reklamo")
		if got >= -0.1 {
			t.Errorf("Expected clearly negative score, got %f", got)
		}
	})

	t.Run("Fraud accusation scores negative", func(t *testing.T) {
		got := analyzer.Score("X accused of fraud and delay scam allegations")
		if analyzer.Classify(got) != models.SentimentNegative {
			t.Errorf("Expected negative classification, got %s (score %f)", analyzer.Classify(got), got)
		}
	})

	t.Run("Case insensitive matching", func(t *testing.T) {
		lower := analyzer.Score("scam fraud corrupt")
		upper := analyzer.Score("SCAM FRAUD CORRUPT")
		if lower != upper {
			t.Errorf("Expected case-insensitive scores to match: %f vs %f", lower, upper)
		}
	})

	t.Run("Always within bounds", func(t *testing.T) {
		texts := []string{
			"",
			"scam scam scam fraud fraud bulok basura tanga masama pangit",
			"maganda mabuti professional trusted excellent quality good great best",
			"The meeting is on Tuesday",
			"mixed review: good quality pero may delay",
		}
		for _, text := range texts {
			got := analyzer.Score(text)
			if got < -1 || got > 1 {
				t.Errorf("Score(%q) = %f out of [-1, 1]", text, got)
			}
		}
	})
}

func TestAnalyzer_Classify(t *testing.T) {
	analyzer := New()

	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{"Exactly at positive threshold", 0.1, models.SentimentNeutral},
		{"Just above positive threshold", 0.1000001, models.SentimentPositive},
		{"Exactly at negative threshold", -0.1, models.SentimentNeutral},
		{"Just below negative threshold", -0.1000001, models.SentimentNegative},
		{"Zero", 0, models.SentimentNeutral},
		{"Strongly positive", 0.9, models.SentimentPositive},
		{"Strongly negative", -0.9, models.SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analyzer.Classify(tt.score); got != tt.expected {
				t.Errorf("Classify(%f) = %s, want %s", tt.score, got, tt.expected)
			}
		})
	}
}

func TestAnalyzer_ExtractKeywords(t *testing.T) {
	analyzer := New()

	t.Run("Empty text", func(t *testing.T) {
		if got := analyzer.ExtractKeywords(""); len(got) != 0 {
			t.Errorf("Expected no keywords, got %v", got)
		}
	})

	t.Run("Single match", func(t *testing.T) {
		got := analyzer.ExtractKeywords("This contractor is a total SCAM")
		if len(got) != 1 || got[0] != "scam" {
			t.Errorf("Expected [scam], got %v", got)
		}
	})

	t.Run("Multi-word phrase matches verbatim", func(t *testing.T) {
		got := analyzer.ExtractKeywords("walang kwenta ang service nila")
		found := false
		for _, kw := range got {
			if kw == "walang kwenta" {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected 'walang kwenta' among keywords, got %v", got)
		}
	})

	t.Run("No negative indicators", func(t *testing.T) {
		if got := analyzer.ExtractKeywords("excellent work, very professional"); len(got) != 0 {
			t.Errorf("Expected no keywords, got %v", got)
		}
	})
}

func TestCountPresent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		terms    []string
		expected int
	}{
		{
			name:     "Each term counts once regardless of repeats",
			text:     "scam scam scam",
			terms:    []string{"scam", "fraud"},
			expected: 1,
		},
		{
			name:     "Multiple distinct terms",
			text:     "a scam and a fraud",
			terms:    []string{"scam", "fraud"},
			expected: 2,
		},
		{
			name:     "Substring containment",
			text:     "delayed delivery",
			terms:    []string{"delay"},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countPresent(tt.text, tt.terms); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}
