// internal/api/negotiate.go
package api

import (
	"net/http"
	"strings"

	"astral-content/internal/locale"
)

// LocaleFromRequest negotiates the request locale: a best-effort substring
// match on Accept-Language against the supported language tags, then an
// exact match on the X-User-Locale header, else the platform default.
func LocaleFromRequest(r *http.Request, locales *locale.Service) string {
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		for _, supported := range locales.SupportedLocales() {
			lang := supported
			if i := strings.IndexAny(supported, "-_"); i >= 0 {
				lang = supported[:i]
			}
			if strings.Contains(accept, lang) {
				return supported
			}
		}
	}

	if custom := r.Header.Get("X-User-Locale"); locales.IsValidLocale(custom) {
		return custom
	}

	return locales.DefaultLocale()
}
