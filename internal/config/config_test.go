package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGeminiKeyPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		geminiKey string
		googleKey string
		want      string
	}{
		{name: "gemini key wins", geminiKey: "gem", googleKey: "goog", want: "gem"},
		{name: "google key fallback", geminiKey: "", googleKey: "goog", want: "goog"},
		{name: "both empty", geminiKey: "", googleKey: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{GeminiAPIKey: tt.geminiKey, GoogleAPIKey: tt.googleKey}
			assert.Equal(t, tt.want, cfg.DefaultGeminiKey())
		})
	}
}

func TestAdminEmailList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single address", in: "admin@example.com", want: []string{"admin@example.com"}},
		{
			name: "multiple with whitespace",
			in:   "one@example.com, two@example.com ,three@example.com",
			want: []string{"one@example.com", "two@example.com", "three@example.com"},
		},
		{name: "trailing comma", in: "one@example.com,", want: []string{"one@example.com"}},
		{name: "only separators", in: " , ,", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AdminEmails: tt.in}
			assert.Equal(t, tt.want, cfg.AdminEmailList())
		})
	}
}
