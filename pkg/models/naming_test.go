package models

import "testing"

func TestUniqueName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single word lowercased",
			input:    "Alice",
			expected: "alice",
		},
		{
			name:     "spaces become underscores",
			input:    "Raw Material",
			expected: "raw_material",
		},
		{
			name:     "mixed case multi word",
			input:    "Free Software Foundation",
			expected: "free_software_foundation",
		},
		{
			name:     "already a slug",
			input:    "alice",
			expected: "alice",
		},
		{
			name:     "consecutive spaces each replaced",
			input:    "a  b",
			expected: "a__b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UniqueName(tt.input); got != tt.expected {
				t.Errorf("UniqueName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
