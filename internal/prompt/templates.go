// internal/prompt/templates.go
package prompt

import "fmt"

// ModelConfig is the generation configuration attached to a template.
type ModelConfig struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
}

// Template is one static prompt template, keyed
// {perspective}-{contentType}-{tier} and versioned with the code.
type Template struct {
	ID           string             `json:"id"`
	SystemPrompt string             `json:"systemPrompt"`
	BasePrompt   string             `json:"basePrompt"`
	FocusWeights map[string]float64 `json:"focusWeights"`
	Model        ModelConfig        `json:"model"`
}

// TemplateID builds the catalog key for a (perspective, contentType, tier)
// triple.
func TemplateID(perspective, contentType, tier string) string {
	return fmt.Sprintf("%s-%s-%s", perspective, contentType, tier)
}

// Tiers and content types the catalog is built for. Every
// (perspective, contentType) pair carries at least the free tier, which is
// the defined fallback for paid tiers without an exact entry.
var (
	catalogTiers        = []string{"free", "pro"}
	catalogContentTypes = []string{"daily", "weekly"}
)

var systemPrompts = map[string]string{
	"calm":      "You are a thoughtful astrology writer. Keep the tone soothing and grounded; the reader comes to you to slow down.",
	"knowledge": "You are an astrology educator. Explain what the sky is doing and why it matters before saying what it means.",
	"success":   "You are an astrology coach. Translate planetary timing into concrete, motivating next steps.",
	"evidence":  "You are a careful astrology columnist. Hedge claims, cite tradition, and invite the reader to observe for themselves.",
}

var basePromptBodies = map[string]string{
	"daily": "Write a personalized daily horoscope for {{date}}.\n" +
		"Sun: {{sun_sign}} at {{sun_degree}}. Moon: {{moon_sign}} at {{moon_degree}}, {{moon_phase}}.\n" +
		"Major aspects: {{major_aspects}}. Retrograde: {{retrogrades}}.\n" +
		"Reader: born in {{birth_location}} ({{timezone}}), rising sign {{rising_sign}}.\n" +
		"Primary focus: {{primary_focus}}. Secondary focus: {{secondary_focus}}. Themes: {{focus_keywords}}.\n" +
		"Context: {{news_context}}.",
	"weekly": "Write a personalized weekly outlook starting {{date}}.\n" +
		"Sun: {{sun_sign}} at {{sun_degree}}. Moon: {{moon_sign}} at {{moon_degree}}, {{moon_phase}}.\n" +
		"Major aspects this week: {{major_aspects}}. Retrograde: {{retrogrades}}.\n" +
		"Reader: born in {{birth_location}} ({{timezone}}), rising sign {{rising_sign}}.\n" +
		"Primary focus: {{primary_focus}}. Secondary focus: {{secondary_focus}}. Themes: {{focus_keywords}}.\n" +
		"Context: {{news_context}}.",
}

var tierInstructions = map[string]string{
	"free": "Keep it to two short paragraphs.",
	"pro":  "Write four rich paragraphs: an overview, the primary focus area in depth, the secondary focus area, and one practical suggestion for the day.",
}

var tierModels = map[string]ModelConfig{
	"free": {Model: "gpt-4o-mini", Temperature: 0.8, MaxTokens: 400},
	"pro":  {Model: "gpt-4o", Temperature: 0.7, MaxTokens: 1200},
}

var perspectiveFocusWeights = map[string]map[string]float64{
	"calm":      {"health": 0.4, "growth": 0.3, "love": 0.2, "career": 0.1},
	"knowledge": {"growth": 0.4, "career": 0.3, "health": 0.2, "love": 0.1},
	"success":   {"career": 0.5, "growth": 0.2, "love": 0.15, "health": 0.15},
	"evidence":  {"growth": 0.3, "career": 0.25, "health": 0.25, "love": 0.2},
}

// Catalog holds the static template set. Built once at construction;
// read-only afterwards.
type Catalog struct {
	templates map[string]*Template
}

func NewCatalog() *Catalog {
	c := &Catalog{templates: make(map[string]*Template)}
	for perspective, system := range systemPrompts {
		for _, contentType := range catalogContentTypes {
			for _, tier := range catalogTiers {
				id := TemplateID(perspective, contentType, tier)
				c.templates[id] = &Template{
					ID:           id,
					SystemPrompt: system,
					BasePrompt:   basePromptBodies[contentType] + "\n" + tierInstructions[tier],
					FocusWeights: perspectiveFocusWeights[perspective],
					Model:        tierModels[tier],
				}
			}
		}
	}
	return c
}

// Get returns the template with the exact ID.
func (c *Catalog) Get(id string) (*Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// Select resolves a (perspective, contentType, tier) triple to a template.
// An exact tier match wins; otherwise the free tier for the same perspective
// and content type is the defined fallback. fellBack reports that the
// fallback was taken. A nil template after fallback is a catalog defect, not
// a runtime fault — the caller logs it at error severity.
func (c *Catalog) Select(perspective, contentType, tier string) (t *Template, fellBack bool) {
	if t, ok := c.templates[TemplateID(perspective, contentType, tier)]; ok {
		return t, false
	}
	if t, ok := c.templates[TemplateID(perspective, contentType, "free")]; ok {
		return t, true
	}
	return nil, false
}
