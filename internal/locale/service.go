// internal/locale/service.go
package locale

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"astral-content/internal/common/config"
	"astral-content/internal/common/logger"
	"astral-content/internal/common/metrics"
)

// Service resolves a (locale, brand) pair to a Document with caching and an
// explicit fallback chain, and provides token lookup with variable
// interpolation. It is designed to never surface a hard failure: every
// failure mode degrades to the fallback locale, the minimal hardcoded
// document, or a bracketed placeholder string.
type Service struct {
	store         Store
	logger        logger.Logger
	defaultLocale string
	supported     []string
	brand         string

	mu    sync.RWMutex
	cache map[string]Document
}

func NewService(store Store, cfg config.LocaleConfig, log logger.Logger) *Service {
	return &Service{
		store:         store,
		logger:        log.WithFields(map[string]interface{}{"component": "locale-service"}),
		defaultLocale: cfg.Default,
		supported:     cfg.Supported,
		brand:         cfg.Brand,
		cache:         make(map[string]Document),
	}
}

// DefaultLocale returns the platform default locale code.
func (s *Service) DefaultLocale() string { return s.defaultLocale }

// SupportedLocales returns the fixed supported locale set.
func (s *Service) SupportedLocales() []string { return s.supported }

// IsValidLocale reports membership in the supported locale set.
func (s *Service) IsValidLocale(localeCode string) bool {
	for _, l := range s.supported {
		if l == localeCode {
			return true
		}
	}
	return false
}

// IsValidPerspective reports membership in the supported perspective set.
func (s *Service) IsValidPerspective(perspective string) bool {
	_, ok := ProfileFor(perspective)
	return ok
}

// fallbackChain is the ordered list of locales tried before the minimal
// document. The order is data, not control flow, so tests can assert it.
func (s *Service) fallbackChain(requested string) []string {
	if !s.IsValidLocale(requested) || requested == s.defaultLocale {
		return []string{s.defaultLocale}
	}
	return []string{requested, s.defaultLocale}
}

// LoadLocale resolves a locale code to a served document. Missing documents,
// store errors and malformed JSON all degrade down the chain; the minimal
// hardcoded document is the guaranteed last resort.
func (s *Service) LoadLocale(ctx context.Context, requested string) Document {
	chain := s.fallbackChain(requested)

	for _, candidate := range chain {
		cacheKey := candidate + ":" + s.brand

		s.mu.RLock()
		doc, cached := s.cache[cacheKey]
		s.mu.RUnlock()
		if cached {
			metrics.LocaleCacheHits.WithLabelValues(candidate).Inc()
			s.recordFallback(requested, candidate)
			return doc
		}
		metrics.LocaleCacheMisses.WithLabelValues(candidate).Inc()

		doc, found, err := s.store.GetDocument(ctx, candidate, s.brand)
		if err != nil {
			s.logger.WithError(err).Warn("locale document load failed, degrading", map[string]interface{}{
				"locale": candidate,
				"brand":  s.brand,
			})
			continue
		}
		if !found {
			s.logger.Warn("locale document absent, degrading", map[string]interface{}{
				"locale": candidate,
				"brand":  s.brand,
			})
			continue
		}

		s.mu.Lock()
		s.cache[cacheKey] = doc
		s.mu.Unlock()

		s.recordFallback(requested, candidate)
		return doc
	}

	s.logger.Error("all locale documents unavailable, serving minimal fallback", map[string]interface{}{
		"requested": requested,
		"brand":     s.brand,
	})
	metrics.LocaleFallbacks.WithLabelValues(requested, "minimal").Inc()
	return MinimalDocument()
}

func (s *Service) recordFallback(requested, served string) {
	if requested == served {
		return
	}
	s.logger.Info("locale fallback", map[string]interface{}{
		"requested": requested,
		"served":    served,
	})
	metrics.LocaleFallbacks.WithLabelValues(requested, served).Inc()
}

// Resolve performs a dotted-path lookup without rendering, so callers can
// distinguish a real translation from a missing key.
func (s *Service) Resolve(doc Document, path string) TokenResult {
	return doc.Lookup(path)
}

// Token resolves a dotted path and applies variable interpolation. Missing
// keys render as the bracketed path and are logged at warning level; unknown
// {{placeholders}} are left literal.
func (s *Service) Token(doc Document, path string, vars map[string]string) string {
	result := doc.Lookup(path)
	if !result.Found {
		s.logger.Warn("missing locale token", map[string]interface{}{
			"path": path,
		})
		return result.String()
	}
	return Substitute(result.Value, vars)
}

// ApplyPerspective appends the perspective's weighted instructional block and
// a locale cultural hint to a base prompt. Unknown perspectives leave the
// prompt unchanged.
func (s *Service) ApplyPerspective(basePrompt, perspective, localeCode string) string {
	profile, ok := ProfileFor(perspective)
	if !ok {
		s.logger.Warn("unknown perspective, prompt left unchanged", map[string]interface{}{
			"perspective": perspective,
		})
		return basePrompt
	}

	influencePct := int(profile.Influence * 100)
	var b strings.Builder
	b.WriteString(basePrompt)
	fmt.Fprintf(&b, "\n\nPerspective guidance (%s): apply this perspective with %d%% influence, general guidance the remaining %d%%.\n",
		profile.ID, influencePct, 100-influencePct)
	fmt.Fprintf(&b, "Tone: %s.\n", profile.Tone)
	fmt.Fprintf(&b, "Focus: %s.\n", profile.Focus)
	fmt.Fprintf(&b, "Style: %s.\n", profile.Style)
	fmt.Fprintf(&b, "Keywords: %s.\n", strings.Join(profile.Keywords, ", "))
	fmt.Fprintf(&b, "Cultural context: %s", culturalHintFor(localeCode))
	return b.String()
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders a locale-aware long date. Unknown locales fall back to
// the English long form rather than failing.
func (s *Service) FormatDate(t time.Time, localeCode string) string {
	switch languageOf(localeCode) {
	case "es":
		month := int(t.Month()) - 1
		if month < 0 || month >= len(spanishMonths) {
			return t.String()
		}
		return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[month], t.Year())
	default:
		return t.Format("January 2, 2006")
	}
}

// ClearCache empties the in-memory document cache.
func (s *Service) ClearCache() {
	s.mu.Lock()
	s.cache = make(map[string]Document)
	s.mu.Unlock()
}
