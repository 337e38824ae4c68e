// internal/prompt/composer.go
package prompt

import (
	"fmt"

	"astral-content/internal/common/logger"
	"astral-content/internal/common/metrics"
	"astral-content/internal/locale"
)

// ComposedPrompt is the request-scoped result of composition: a ready-to-send
// instruction pair plus the template it came from. Never persisted.
type ComposedPrompt struct {
	SystemPrompt string
	UserPrompt   string
	Template     *Template
}

// Composer combines a static template with ephemeris and user variables into
// a final instruction pair.
type Composer struct {
	catalog *Catalog
	logger  logger.Logger
}

func NewComposer(catalog *Catalog, log logger.Logger) *Composer {
	return &Composer{
		catalog: catalog,
		logger:  log.WithFields(map[string]interface{}{"component": "prompt-composer"}),
	}
}

// Compose selects the template for the user's tier/perspective and the
// content type, computes the variable set, and substitutes it into the base
// prompt. A nil result means no template exists even after tier fallback —
// a missing catalog entry, logged at error severity.
func (c *Composer) Compose(user UserProfile, eph EphemerisContext, contentType, newsContext string) *ComposedPrompt {
	tmpl, fellBack := c.catalog.Select(user.Perspective, contentType, user.Tier)
	if tmpl == nil {
		c.logger.Error("no prompt template for request", map[string]interface{}{
			"perspective": user.Perspective,
			"contentType": contentType,
			"tier":        user.Tier,
		})
		metrics.PromptCompositions.WithLabelValues(
			TemplateID(user.Perspective, contentType, user.Tier), "missing").Inc()
		return nil
	}
	if fellBack {
		c.logger.Info("template tier fallback", map[string]interface{}{
			"requested": TemplateID(user.Perspective, contentType, user.Tier),
			"selected":  tmpl.ID,
		})
	}

	vars := c.computeVariables(user, eph, newsContext)
	userPrompt := locale.Substitute(tmpl.BasePrompt, vars)

	if leftover := locale.UnresolvedPlaceholders(userPrompt); len(leftover) > 0 {
		c.logger.Warn("unresolved placeholders after substitution", map[string]interface{}{
			"template":     tmpl.ID,
			"placeholders": leftover,
		})
	}

	metrics.PromptCompositions.WithLabelValues(tmpl.ID, "composed").Inc()
	return &ComposedPrompt{
		SystemPrompt: tmpl.SystemPrompt,
		UserPrompt:   userPrompt,
		Template:     tmpl,
	}
}

// computeVariables builds the fixed named-variable set from the ephemeris and
// user objects.
func (c *Composer) computeVariables(user UserProfile, eph EphemerisContext, newsContext string) map[string]string {
	if newsContext == "" {
		newsContext = defaultNewsContext
	}
	rising := user.RisingSign
	if rising == "" {
		rising = unknownRisingSign
	}

	return map[string]string{
		"date":            eph.Date.Format("January 2, 2006"),
		"sun_sign":        eph.SunSign,
		"sun_degree":      fmt.Sprintf("%.1f°", eph.SunDegree),
		"moon_sign":       eph.MoonSign,
		"moon_degree":     fmt.Sprintf("%.1f°", eph.MoonDegree),
		"moon_phase":      eph.MoonPhase,
		"primary_focus":   focusArea(user.FocusAreas, 0, "growth"),
		"secondary_focus": focusArea(user.FocusAreas, 1, "health"),
		"major_aspects":   formatAspects(eph.Aspects),
		"retrogrades":     formatRetrogrades(eph.Retrogrades),
		"birth_location":  user.BirthLocation,
		"timezone":        user.Timezone,
		"focus_keywords":  focusKeywords(user.FocusAreas),
		"news_context":    newsContext,
		"rising_sign":     rising,
	}
}
