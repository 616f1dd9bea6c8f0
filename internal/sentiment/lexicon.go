package sentiment

// Fixed bilingual lexicons covering English, Filipino, and code-switched
// terms. These are process-wide and read-only; Analyzer never mutates them.

// negativeTerms indicate fraud, poor quality, or unprofessional conduct.
var negativeTerms = []string{
	"masama", "pangit", "corrupt", "scam", "delay", "hindi",
	"wala", "problema", "issue", "reklamo", "complaint", "bad",
	"poor", "terrible", "worst", "bulok", "basura", "tanga",
	"fraud", "fake", "liar", "unprofessional", "late", "slow",
	"walang konsiderasyon", "walang kwenta", "disappointing",
}

// positiveTerms indicate trust, quality, and reliability.
var positiveTerms = []string{
	"maganda", "mabuti", "professional", "trusted", "excellent",
	"quality", "good", "great", "best", "galing", "sulit",
	"reliable", "honest", "legit", "magaling", "on-time", "fast",
}

// negativeIndicators is the extraction list surfaced alongside sample
// comments. A variant of negativeTerms: only the strong reputation signals.
var negativeIndicators = []string{
	"corrupt", "scam", "fraud", "fake", "liar", "unprofessional",
	"masama", "pangit", "bulok", "basura", "walang konsiderasyon",
	"walang kwenta", "delay", "problema", "reklamo",
}
