package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestDocument() Document {
	return Document{
		"api": map[string]interface{}{
			"errors": map[string]interface{}{
				"notFound":    "We could not find that.",
				"rateLimited": "Too many requests. Try again in {{retryAfter}} seconds.",
			},
		},
		"common": map[string]interface{}{
			"greeting": "Hello {{name}}",
			"empty":    "",
			"number":   42,
		},
	}
}

// ==========================
// Lookup Tests
// ==========================

func TestDocument_Lookup(t *testing.T) {
	doc := createTestDocument()

	tests := []struct {
		name          string
		path          string
		expectFound   bool
		expectedValue string
	}{
		{
			name:          "resolves nested string leaf",
			path:          "api.errors.notFound",
			expectFound:   true,
			expectedValue: "We could not find that.",
		},
		{
			name:        "missing leaf key",
			path:        "api.errors.unknown",
			expectFound: false,
		},
		{
			name:        "missing intermediate section",
			path:        "nothing.here.at.all",
			expectFound: false,
		},
		{
			name:        "path through a string leaf",
			path:        "common.greeting.deeper",
			expectFound: false,
		},
		{
			name:        "empty string leaf counts as missing",
			path:        "common.empty",
			expectFound: false,
		},
		{
			name:        "non-string leaf counts as missing",
			path:        "common.number",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := doc.Lookup(tt.path)
			assert.Equal(t, tt.expectFound, result.Found)
			if tt.expectFound {
				assert.Equal(t, tt.expectedValue, result.Value)
			} else {
				assert.Equal(t, "["+tt.path+"]", result.String())
			}
		})
	}
}

func TestDocument_Section(t *testing.T) {
	doc := createTestDocument()

	assert.NotNil(t, doc.Section("api"))
	assert.Nil(t, doc.Section("missing"))
}

// ==========================
// Substitution Tests
// ==========================

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		vars     map[string]string
		expected string
	}{
		{
			name:     "replaces known placeholders",
			input:    "Hello {{name}}, it is {{date}}",
			vars:     map[string]string{"name": "Luna", "date": "today"},
			expected: "Hello Luna, it is today",
		},
		{
			name:     "tolerates whitespace inside braces",
			input:    "Hello {{ name }}",
			vars:     map[string]string{"name": "Luna"},
			expected: "Hello Luna",
		},
		{
			name:     "unknown placeholder stays literal",
			input:    "Hello {{name}} and {{other}}",
			vars:     map[string]string{"name": "Luna"},
			expected: "Hello Luna and {{other}}",
		},
		{
			name:     "nil vars returns input unchanged",
			input:    "Hello {{name}}",
			vars:     nil,
			expected: "Hello {{name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(tt.input, tt.vars)
			assert.Equal(t, tt.expected, got)

			// Substitution is idempotent for a fixed variable map.
			assert.Equal(t, got, Substitute(got, tt.vars))
		})
	}
}

func TestUnresolvedPlaceholders(t *testing.T) {
	assert.Nil(t, UnresolvedPlaceholders("all resolved"))
	assert.Equal(t, []string{"a", "b.c"}, UnresolvedPlaceholders("{{a}} then {{ b.c }}"))
}

// ==========================
// Schema Tests
// ==========================

func TestSchema_RequiresAllSections(t *testing.T) {
	schema := Schema()

	required, ok := schema["required"].([]string)
	assert.True(t, ok)
	assert.ElementsMatch(t, RequiredSections, required)

	props, ok := schema["properties"].(map[string]interface{})
	assert.True(t, ok)
	for _, sec := range RequiredSections {
		assert.Contains(t, props, sec)
	}
}

func TestMinimalDocument_CoversRequiredSections(t *testing.T) {
	doc := MinimalDocument()
	for _, sec := range RequiredSections {
		assert.NotNil(t, doc.Section(sec), "section %s", sec)
	}
}
