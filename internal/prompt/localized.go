// internal/prompt/localized.go
package prompt

import (
	"context"
	"fmt"
	"strings"

	"astral-content/internal/common/logger"
	"astral-content/internal/locale"
)

// LocalizedComposer wraps the base Composer: prompt fragments come from the
// locale document's prompts section instead of the static English catalog,
// the perspective weighting block is applied, and a fixed domain vocabulary
// is translated via static tables. Any failure degrades to the English
// locale, then to the base composer — the pipeline always returns something
// renderable (or nil only for a missing catalog entry, which the base
// composer reports the same way).
type LocalizedComposer struct {
	base    *Composer
	locales *locale.Service
	logger  logger.Logger
}

func NewLocalizedComposer(base *Composer, locales *locale.Service, log logger.Logger) *LocalizedComposer {
	return &LocalizedComposer{
		base:    base,
		locales: locales,
		logger:  log.WithFields(map[string]interface{}{"component": "localized-composer"}),
	}
}

// Compose produces a localized instruction pair for the user's locale.
func (lc *LocalizedComposer) Compose(ctx context.Context, user UserProfile, eph EphemerisContext, contentType, newsContext, localeCode string) *ComposedPrompt {
	lang := languageOf(localeCode)
	if !lc.locales.IsValidLocale(localeCode) || lang == "en" {
		return lc.base.Compose(user, eph, contentType, newsContext)
	}

	tmpl, _ := lc.base.catalog.Select(user.Perspective, contentType, user.Tier)
	if tmpl == nil {
		// Same missing-catalog-entry semantics as the base composer.
		return lc.base.Compose(user, eph, contentType, newsContext)
	}

	doc := lc.locales.LoadLocale(ctx, localeCode)
	baseFragment, systemFragment, ok := lc.promptFragments(doc, user)
	if !ok {
		lc.logger.Warn("localized prompt fragments missing, degrading to default locale", map[string]interface{}{
			"locale":      localeCode,
			"perspective": user.Perspective,
			"tier":        user.Tier,
		})
		doc = lc.locales.LoadLocale(ctx, lc.locales.DefaultLocale())
		baseFragment, systemFragment, ok = lc.promptFragments(doc, user)
		if !ok {
			return lc.base.Compose(user, eph, contentType, newsContext)
		}
	}

	vars := lc.base.computeVariables(user, eph, newsContext)
	lc.localizeVariables(vars, eph, doc, localeCode, lang)

	userPrompt := locale.Substitute(baseFragment, vars)
	userPrompt = lc.locales.ApplyPerspective(userPrompt, user.Perspective, localeCode)

	if leftover := locale.UnresolvedPlaceholders(userPrompt); len(leftover) > 0 {
		lc.logger.Warn("unresolved placeholders after localized substitution", map[string]interface{}{
			"template":     tmpl.ID,
			"locale":       localeCode,
			"placeholders": leftover,
		})
	}

	return &ComposedPrompt{
		SystemPrompt: systemFragment,
		UserPrompt:   userPrompt,
		Template:     tmpl,
	}
}

// promptFragments extracts the tier base prompt and perspective system prompt
// from a locale document. The tier fragment falls back to the free tier, the
// same rule the static catalog applies.
func (lc *LocalizedComposer) promptFragments(doc locale.Document, user UserProfile) (base, system string, ok bool) {
	baseResult := doc.Lookup(fmt.Sprintf("prompts.tiers.%s.base", user.Tier))
	if !baseResult.Found {
		baseResult = doc.Lookup("prompts.tiers.free.base")
	}
	systemResult := doc.Lookup(fmt.Sprintf("prompts.perspectives.%s.system", user.Perspective))

	if !baseResult.Found || !systemResult.Found {
		return "", "", false
	}
	return baseResult.Value, systemResult.Value, true
}

// localizeVariables rewrites the locale-sensitive variables in place: the
// formatted date, the fixed empty-list phrases (from the document's formats
// section when present), and the domain vocabulary.
func (lc *LocalizedComposer) localizeVariables(vars map[string]string, eph EphemerisContext, doc locale.Document, localeCode, lang string) {
	vars["date"] = lc.locales.FormatDate(eph.Date, localeCode)
	vars["sun_sign"] = translateTerm(eph.SunSign, lang)
	vars["moon_sign"] = translateTerm(eph.MoonSign, lang)
	vars["moon_phase"] = translateTerm(eph.MoonPhase, lang)
	vars["focus_keywords"] = translateList(vars["focus_keywords"], lang)

	if len(eph.Aspects) == 0 {
		if r := doc.Lookup("formats.aspects_none"); r.Found {
			vars["major_aspects"] = r.Value
		}
	} else {
		vars["major_aspects"] = formatAspectsLocalized(eph.Aspects, lang)
	}

	if len(eph.Retrogrades) == 0 {
		if r := doc.Lookup("formats.retrograde_none"); r.Found {
			vars["retrogrades"] = r.Value
		}
	}
}

// formatAspectsLocalized mirrors formatAspects with translated aspect names.
func formatAspectsLocalized(aspects []Aspect, lang string) string {
	if len(aspects) > maxAspects {
		aspects = aspects[:maxAspects]
	}
	parts := make([]string, 0, len(aspects))
	for _, a := range aspects {
		parts = append(parts, fmt.Sprintf("%s-%s %s", a.Planet1, a.Planet2, translateTerm(a.Name, lang)))
	}
	return strings.Join(parts, ", ")
}

// languageOf extracts the primary language subtag ("es-ES" -> "es").
func languageOf(localeCode string) string {
	if i := strings.IndexAny(localeCode, "-_"); i >= 0 {
		return localeCode[:i]
	}
	return localeCode
}
