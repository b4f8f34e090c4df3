package sqlutil

import "testing"

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"articles", `"articles"`},
		{"comment_count", `"comment_count"`},
		{"select", `"select"`},         // reserved word
		{"first name", `"first name"`}, // space in name
		{`a"b`, `"a""b"`},              // quote in name
		{"", `""`},                     // empty string
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := QuoteIdentifier(tt.input)
			if result != tt.expected {
				t.Errorf("QuoteIdentifier(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
