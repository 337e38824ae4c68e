// internal/locale/perspectives.go
package locale

// PerspectiveProfile is a static tone/content-bias profile applied to
// generated text. Profiles are compiled into the service and never stored
// externally.
type PerspectiveProfile struct {
	ID        string
	Tone      string
	Focus     string
	Style     string
	Keywords  []string
	Influence float64 // in [0,1], share of the perspective vs general guidance
}

var perspectiveProfiles = map[string]PerspectiveProfile{
	"calm": {
		ID:        "calm",
		Tone:      "soothing, reassuring, unhurried",
		Focus:     "inner balance, acceptance, emotional steadiness",
		Style:     "soft imagery, gentle suggestions, no urgency",
		Keywords:  []string{"peace", "breathe", "balance", "stillness", "gentle"},
		Influence: 0.6,
	},
	"knowledge": {
		ID:        "knowledge",
		Tone:      "curious, explanatory, precise",
		Focus:     "understanding planetary mechanics and symbolism",
		Style:     "clear explanations, astronomical context, teaching moments",
		Keywords:  []string{"learn", "understand", "pattern", "cycle", "meaning"},
		Influence: 0.8,
	},
	"success": {
		ID:        "success",
		Tone:      "energetic, motivating, forward-looking",
		Focus:     "opportunity, timing, decisive action",
		Style:     "direct calls to action, momentum language, concrete wins",
		Keywords:  []string{"achieve", "momentum", "opportunity", "ambition", "act"},
		Influence: 0.7,
	},
	"evidence": {
		ID:        "evidence",
		Tone:      "measured, skeptic-friendly, transparent",
		Focus:     "observable correlations and documented traditions",
		Style:     "hedged claims, historical references, reflective questions",
		Keywords:  []string{"observe", "tradition", "reflect", "consider", "notice"},
		Influence: 0.9,
	},
}

// SupportedPerspectives returns the closed set of perspective identifiers.
func SupportedPerspectives() []string {
	return []string{"calm", "knowledge", "success", "evidence"}
}

// ProfileFor returns the static profile for a perspective identifier.
func ProfileFor(perspective string) (PerspectiveProfile, bool) {
	p, ok := perspectiveProfiles[perspective]
	return p, ok
}

// culturalHints is a small static table of one-line cultural-context hints
// keyed by language tag. Locales not in the table use the "en" hint.
var culturalHints = map[string]string{
	"en": "Address the reader directly and keep references broadly Western.",
	"es": "Usa un tono cercano y cálido; prefiere el tuteo y referencias culturales hispanohablantes.",
}

func culturalHintFor(localeCode string) string {
	if hint, ok := culturalHints[languageOf(localeCode)]; ok {
		return hint
	}
	return culturalHints["en"]
}

// languageOf extracts the primary language subtag ("es-ES" -> "es").
func languageOf(localeCode string) string {
	for i := 0; i < len(localeCode); i++ {
		if localeCode[i] == '-' || localeCode[i] == '_' {
			return localeCode[:i]
		}
	}
	return localeCode
}
