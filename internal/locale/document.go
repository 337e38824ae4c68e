// internal/locale/document.go
package locale

import (
	"regexp"
	"strings"
)

// Document is the full translation/content catalog for one (locale, brand)
// pair. It is authored offline, uploaded as an atomic JSON blob, and read-only
// at request time.
type Document map[string]interface{}

// RequiredSections are the top-level sections every served document must carry.
var RequiredSections = []string{
	"email",
	"perspectives",
	"formats",
	"ui",
	"api",
	"validation",
	"prompts",
	"common",
	"focus_areas",
}

// TokenResult is the outcome of a dotted-path lookup: either the resolved
// string or the missing path. Callers that need to distinguish real
// translations from placeholders check Found instead of inspecting the
// rendered string.
type TokenResult struct {
	Value string
	Path  string
	Found bool
}

// String renders the result: the resolved value, or the bracketed path as a
// visible-but-non-fatal marker for missing keys.
func (r TokenResult) String() string {
	if r.Found {
		return r.Value
	}
	return "[" + r.Path + "]"
}

// Lookup navigates the document by splitting path on ".". Only non-empty
// string leaves count as found; absent keys, intermediate non-map values and
// empty strings all resolve to Missing.
func (d Document) Lookup(path string) TokenResult {
	parts := strings.Split(path, ".")
	current := interface{}(map[string]interface{}(d))

	for _, part := range parts {
		currentMap, ok := current.(map[string]interface{})
		if !ok {
			return TokenResult{Path: path}
		}
		val, exists := currentMap[part]
		if !exists {
			return TokenResult{Path: path}
		}
		current = val
	}

	leaf, ok := current.(string)
	if !ok || leaf == "" {
		return TokenResult{Path: path}
	}
	return TokenResult{Value: leaf, Path: path, Found: true}
}

// Section returns a nested map section, or nil when absent.
func (d Document) Section(name string) map[string]interface{} {
	if sec, ok := d[name].(map[string]interface{}); ok {
		return sec
	}
	return nil
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.]+)\s*\}\}`)

// Substitute replaces every {{key}} occurrence with the matching value.
// Keys without a supplied value are left as literal {{key}} text, so running
// substitution twice with the same variable map yields the same result.
func Substitute(s string, vars map[string]string) string {
	if len(vars) == 0 {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := strings.TrimSpace(match[2 : len(match)-2])
		if val, ok := vars[key]; ok {
			return val
		}
		return match
	})
}

// UnresolvedPlaceholders returns the {{...}} names still present in s after
// substitution. Leftovers signal catalog/template drift, not a runtime fault.
func UnresolvedPlaceholders(s string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Schema describes the minimum shape a served document must satisfy: every
// required section present as an object. Used by the upload tooling; serving
// never blocks on it.
func Schema() map[string]interface{} {
	props := make(map[string]interface{}, len(RequiredSections))
	for _, sec := range RequiredSections {
		props[sec] = map[string]interface{}{"type": "object"}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   RequiredSections,
	}
}
