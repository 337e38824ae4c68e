// internal/prompt/ephemeris.go
package prompt

import (
	"fmt"
	"strings"
	"time"
)

// Aspect is one angular relation between two planets.
type Aspect struct {
	Planet1 string `json:"planet1"`
	Planet2 string `json:"planet2"`
	Name    string `json:"name"`
}

// EphemerisContext holds the computed astronomical snapshot for a date. It is
// opaque input to the composer: produced elsewhere, consumed as-is.
type EphemerisContext struct {
	Date        time.Time `json:"date"`
	SunSign     string    `json:"sunSign"`
	SunDegree   float64   `json:"sunDegree"`
	MoonSign    string    `json:"moonSign"`
	MoonDegree  float64   `json:"moonDegree"`
	MoonPhase   string    `json:"moonPhase"`
	Aspects     []Aspect  `json:"aspects"`
	Retrogrades []string  `json:"retrogrades"`
}

// UserProfile carries the subscriber facts the composer needs.
type UserProfile struct {
	Name          string   `json:"name"`
	Tier          string   `json:"tier"`
	Perspective   string   `json:"perspective"`
	FocusAreas    []string `json:"focusAreas"`
	BirthLocation string   `json:"birthLocation"`
	Timezone      string   `json:"timezone"`
	RisingSign    string   `json:"risingSign"`
	Locale        string   `json:"locale"`
}

const (
	noAspectsPhrase    = "gentle cosmic harmony"
	noRetrogradePhrase = "no retrograde planets"
	defaultNewsContext = "no notable world events to weave in"
	unknownRisingSign  = "Unknown"

	maxAspects       = 3
	maxFocusKeywords = 6
)

// formatAspects renders at most the top three aspects as
// "planet1-planet2 name", comma-joined. An empty list renders the fixed
// harmony phrase.
func formatAspects(aspects []Aspect) string {
	if len(aspects) == 0 {
		return noAspectsPhrase
	}
	if len(aspects) > maxAspects {
		aspects = aspects[:maxAspects]
	}
	parts := make([]string, 0, len(aspects))
	for _, a := range aspects {
		parts = append(parts, fmt.Sprintf("%s-%s %s", a.Planet1, a.Planet2, a.Name))
	}
	return strings.Join(parts, ", ")
}

// formatRetrogrades renders the retrograde planet list, or the fixed phrase
// when empty.
func formatRetrogrades(retrogrades []string) string {
	if len(retrogrades) == 0 {
		return noRetrogradePhrase
	}
	return strings.Join(retrogrades, ", ")
}

// focusKeywordTable maps each focus area to its keyword pool.
var focusKeywordTable = map[string][]string{
	"love":   {"connection", "intimacy", "trust", "romance", "empathy", "openness"},
	"career": {"ambition", "recognition", "strategy", "leadership", "craft", "growth"},
	"health": {"vitality", "rest", "rhythm", "nourishment", "movement", "renewal"},
	"growth": {"reflection", "learning", "courage", "change", "purpose", "clarity"},
}

// focusKeywords flattens the keyword pools of the given focus areas and joins
// the first six. Unknown areas contribute nothing.
func focusKeywords(areas []string) string {
	flattened := make([]string, 0, maxFocusKeywords)
	for _, area := range areas {
		for _, kw := range focusKeywordTable[area] {
			if len(flattened) == maxFocusKeywords {
				return strings.Join(flattened, ", ")
			}
			flattened = append(flattened, kw)
		}
	}
	return strings.Join(flattened, ", ")
}

// focusArea returns the nth focus area or the fallback.
func focusArea(areas []string, n int, fallback string) string {
	if n < len(areas) {
		return areas[n]
	}
	return fallback
}
