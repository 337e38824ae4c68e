package api

import (
	"net/http/httptest"
	"testing"

	"astral-content/internal/locale"

	"github.com/stretchr/testify/assert"
)

func TestLocaleFromRequest(t *testing.T) {
	locales := createTestLocaleService(t, map[string]locale.Document{})

	tests := []struct {
		name           string
		acceptLanguage string
		userLocale     string
		expected       string
	}{
		{
			name:           "accept-language matches spanish",
			acceptLanguage: "es-MX,es;q=0.9",
			expected:       "es-ES",
		},
		{
			name:           "accept-language matches english",
			acceptLanguage: "en-GB,en;q=0.8",
			expected:       "en-US",
		},
		{
			name:           "custom header wins when accept-language is absent",
			userLocale:     "es-ES",
			expected:       "es-ES",
		},
		{
			name:           "unsupported custom header falls back to default",
			userLocale:     "fr-FR",
			expected:       "en-US",
		},
		{
			name:     "no headers yields the default",
			expected: "en-US",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			if tt.userLocale != "" {
				req.Header.Set("X-User-Locale", tt.userLocale)
			}
			assert.Equal(t, tt.expected, LocaleFromRequest(req, locales))
		})
	}
}
