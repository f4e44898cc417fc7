package errors

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"simple", "a.com", false},
		{"with path", "https://example.com/a/b?q=1", false},
		{"empty left to engine", "", false},
		{"space", "a b.com", true},
		{"tab", "a\tb", true},
		{"newline", "a.com\n", true},
		{"control", "a\x00b", true},
		{"too long", strings.Repeat("a", maxURLLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		wantErr  bool
	}{
		{"nil", nil, false},
		{"tokens", []string{"go", "graphs"}, false},
		{"empty keyword", []string{"go", ""}, true},
		{"space inside", []string{"two words"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeywords(tt.keywords)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKeywords(%v) error = %v, wantErr %v", tt.keywords, err, tt.wantErr)
			}
		})
	}
}
