// internal/email/renderer.go
package email

import (
	"context"
	"time"

	"astral-content/internal/common/logger"
	"astral-content/internal/locale"
	"astral-content/internal/subscriber"
)

// Renderer produces localized email copy from the locale document's email
// section. Like every other locale consumer it never fails hard: missing keys
// render as bracketed placeholders.
type Renderer struct {
	locales *locale.Service
	logger  logger.Logger
}

func NewRenderer(locales *locale.Service, log logger.Logger) *Renderer {
	return &Renderer{
		locales: locales,
		logger:  log.WithFields(map[string]interface{}{"component": "email-renderer"}),
	}
}

// RenderWelcome renders the welcome message for a new subscriber.
func (r *Renderer) RenderWelcome(ctx context.Context, sub *subscriber.Subscriber) (subject, body string) {
	doc := r.locales.LoadLocale(ctx, sub.Locale)
	vars := map[string]string{
		"name":      sub.Name,
		"frequency": frequencyFor(sub.Tier),
		"date":      r.locales.FormatDate(time.Now(), sub.Locale),
	}
	subject = r.locales.Token(doc, "email.welcome.subject", vars)
	body = r.locales.Token(doc, "email.welcome.body", vars)
	return subject, body
}

// RenderDaily renders a daily newsletter email around generated content.
func (r *Renderer) RenderDaily(ctx context.Context, sub *subscriber.Subscriber, content string, date time.Time) (subject, body string) {
	doc := r.locales.LoadLocale(ctx, sub.Locale)
	vars := map[string]string{
		"name":    sub.Name,
		"content": content,
		"date":    r.locales.FormatDate(date, sub.Locale),
	}
	subject = r.locales.Token(doc, "email.daily.subject", vars)
	body = r.locales.Token(doc, "email.daily.body", vars)
	return subject, body
}

func frequencyFor(tier string) string {
	switch tier {
	case "pro", "basic":
		return "daily"
	default:
		return "weekly"
	}
}
