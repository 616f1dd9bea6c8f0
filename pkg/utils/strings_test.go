package utils

import "testing"

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		substrings []string
		expected   bool
	}{
		{
			name:       "Match present",
			text:       "no recent news articles found",
			substrings: []string{"No recent news", "recent news"},
			expected:   true,
		},
		{
			name:       "No match",
			text:       "company wins award",
			substrings: []string{"scam", "fraud"},
			expected:   false,
		},
		{
			name:       "Empty substring list",
			text:       "anything",
			substrings: nil,
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsAny(tt.text, tt.substrings); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{
			name:     "Shorter than limit",
			input:    "short",
			n:        200,
			expected: "short",
		},
		{
			name:     "Exactly at limit",
			input:    "abcde",
			n:        5,
			expected: "abcde",
		},
		{
			name:     "Over limit",
			input:    "abcdefghij",
			n:        4,
			expected: "abcd",
		},
		{
			name:     "Cuts on rune boundary",
			input:    "ñandú",
			n:        3,
			expected: "ña",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.n); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
