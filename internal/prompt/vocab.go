// internal/prompt/vocab.go
package prompt

import "strings"

// Static vocabulary translation tables for localized composition. Lookup is
// by lowercased English term; terms without an entry pass through unchanged.

var zodiacES = map[string]string{
	"aries": "Aries", "taurus": "Tauro", "gemini": "Géminis", "cancer": "Cáncer",
	"leo": "Leo", "virgo": "Virgo", "libra": "Libra", "scorpio": "Escorpio",
	"sagittarius": "Sagitario", "capricorn": "Capricornio", "aquarius": "Acuario",
	"pisces": "Piscis",
}

var moonPhaseES = map[string]string{
	"new moon": "luna nueva", "waxing crescent": "luna creciente",
	"first quarter": "cuarto creciente", "waxing gibbous": "gibosa creciente",
	"full moon": "luna llena", "waning gibbous": "gibosa menguante",
	"last quarter": "cuarto menguante", "waning crescent": "luna menguante",
}

var aspectES = map[string]string{
	"conjunction": "conjunción", "opposition": "oposición", "trine": "trígono",
	"square": "cuadratura", "sextile": "sextil",
}

var keywordES = map[string]string{
	"connection": "conexión", "intimacy": "intimidad", "trust": "confianza",
	"romance": "romance", "empathy": "empatía", "openness": "apertura",
	"ambition": "ambición", "recognition": "reconocimiento", "strategy": "estrategia",
	"leadership": "liderazgo", "craft": "oficio", "growth": "crecimiento",
	"vitality": "vitalidad", "rest": "descanso", "rhythm": "ritmo",
	"nourishment": "nutrición", "movement": "movimiento", "renewal": "renovación",
	"reflection": "reflexión", "learning": "aprendizaje", "courage": "coraje",
	"change": "cambio", "purpose": "propósito", "clarity": "claridad",
}

var vocabTablesES = []map[string]string{zodiacES, moonPhaseES, aspectES, keywordES}

// translateTerm translates a single vocabulary term for the target language.
// Only Spanish has tables; every other language returns the term unchanged.
func translateTerm(term, lang string) string {
	if lang != "es" {
		return term
	}
	key := strings.ToLower(term)
	for _, table := range vocabTablesES {
		if translated, ok := table[key]; ok {
			return translated
		}
	}
	return term
}

// translateList translates each comma-separated term in a list value.
func translateList(list, lang string) string {
	if lang != "es" || list == "" {
		return list
	}
	parts := strings.Split(list, ", ")
	for i, p := range parts {
		parts[i] = translateTerm(p, lang)
	}
	return strings.Join(parts, ", ")
}
