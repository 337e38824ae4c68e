package prompt

import (
	"testing"
	"time"

	"astral-content/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestComposer(t *testing.T) *Composer {
	return NewComposer(NewCatalog(), logger.NewTestLogger(t))
}

func createTestUser() UserProfile {
	return UserProfile{
		Name:          "Luna",
		Tier:          "pro",
		Perspective:   "success",
		FocusAreas:    []string{"career", "love"},
		BirthLocation: "Lisbon, Portugal",
		Timezone:      "Europe/Lisbon",
		RisingSign:    "Virgo",
		Locale:        "en-US",
	}
}

func createTestEphemeris() EphemerisContext {
	return EphemerisContext{
		Date:       time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		SunSign:    "Pisces",
		SunDegree:  14.7,
		MoonSign:   "Cancer",
		MoonDegree: 3.2,
		MoonPhase:  "waxing crescent",
		Aspects: []Aspect{
			{Planet1: "Sun", Planet2: "Saturn", Name: "conjunction"},
			{Planet1: "Venus", Planet2: "Mars", Name: "trine"},
		},
		Retrogrades: []string{"Mercury"},
	}
}

// ==========================
// Compose Tests
// ==========================

func TestComposer_Compose_Success(t *testing.T) {
	composer := createTestComposer(t)

	composed := composer.Compose(createTestUser(), createTestEphemeris(), "daily", "spring equinox approaching")
	require.NotNil(t, composed)

	assert.Equal(t, "success-daily-pro", composed.Template.ID)
	assert.Contains(t, composed.SystemPrompt, "astrology coach")
	assert.Contains(t, composed.UserPrompt, "March 5, 2025")
	assert.Contains(t, composed.UserPrompt, "Pisces at 14.7°")
	assert.Contains(t, composed.UserPrompt, "Cancer at 3.2°, waxing crescent")
	assert.Contains(t, composed.UserPrompt, "Sun-Saturn conjunction, Venus-Mars trine")
	assert.Contains(t, composed.UserPrompt, "Retrograde: Mercury")
	assert.Contains(t, composed.UserPrompt, "Primary focus: career. Secondary focus: love.")
	assert.Contains(t, composed.UserPrompt, "spring equinox approaching")
	assert.Contains(t, composed.UserPrompt, "rising sign Virgo")
	assert.NotContains(t, composed.UserPrompt, "{{")
}

func TestComposer_Compose_MissingTemplateReturnsNil(t *testing.T) {
	composer := createTestComposer(t)
	user := createTestUser()
	user.Perspective = "mystic"

	assert.Nil(t, composer.Compose(user, createTestEphemeris(), "daily", ""))
}

func TestComposer_Compose_Defaults(t *testing.T) {
	composer := createTestComposer(t)

	user := createTestUser()
	user.RisingSign = ""
	user.FocusAreas = nil

	eph := createTestEphemeris()
	eph.Aspects = nil
	eph.Retrogrades = nil

	composed := composer.Compose(user, eph, "daily", "")
	require.NotNil(t, composed)

	assert.Contains(t, composed.UserPrompt, "rising sign Unknown")
	assert.Contains(t, composed.UserPrompt, "gentle cosmic harmony")
	assert.Contains(t, composed.UserPrompt, "no retrograde planets")
	assert.Contains(t, composed.UserPrompt, "no notable world events to weave in")
	assert.Contains(t, composed.UserPrompt, "Primary focus: growth. Secondary focus: health.")
}

// ==========================
// Formatter Tests
// ==========================

func TestFormatAspects_TopThree(t *testing.T) {
	aspects := []Aspect{
		{Planet1: "Sun", Planet2: "Moon", Name: "square"},
		{Planet1: "Mars", Planet2: "Jupiter", Name: "sextile"},
		{Planet1: "Venus", Planet2: "Neptune", Name: "opposition"},
		{Planet1: "Pluto", Planet2: "Saturn", Name: "trine"},
	}

	got := formatAspects(aspects)
	assert.Equal(t, "Sun-Moon square, Mars-Jupiter sextile, Venus-Neptune opposition", got)
}

func TestFocusKeywords(t *testing.T) {
	tests := []struct {
		name     string
		areas    []string
		expected string
	}{
		{
			name:     "single area yields its full pool",
			areas:    []string{"love"},
			expected: "connection, intimacy, trust, romance, empathy, openness",
		},
		{
			name:     "two areas are capped at six keywords",
			areas:    []string{"career", "health"},
			expected: "ambition, recognition, strategy, leadership, craft, growth",
		},
		{
			name:     "unknown area contributes nothing",
			areas:    []string{"wealth"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, focusKeywords(tt.areas))
		})
	}
}
