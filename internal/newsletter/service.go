// internal/newsletter/service.go
package newsletter

import (
	"context"

	"astral-content/internal/common/logger"
	"astral-content/internal/prompt"
	"astral-content/internal/subscriber"

	stderrors "astral-content/internal/common/errors"
)

// Generator produces newsletter text from a composed prompt.
type Generator interface {
	Generate(ctx context.Context, composed *prompt.ComposedPrompt) (string, error)
}

// DailyMailer dispatches the rendered daily email.
type DailyMailer interface {
	SendDaily(ctx context.Context, sub *subscriber.Subscriber, content string) error
}

// Service runs the per-subscriber delivery pipeline: compose the localized
// prompt, generate the content, send the email.
type Service struct {
	composer  *prompt.LocalizedComposer
	generator Generator
	mailer    DailyMailer
	logger    logger.Logger
}

func NewService(composer *prompt.LocalizedComposer, generator Generator, mailer DailyMailer, log logger.Logger) *Service {
	return &Service{
		composer:  composer,
		generator: generator,
		mailer:    mailer,
		logger:    log.WithFields(map[string]interface{}{"component": "newsletter"}),
	}
}

// Deliver produces and sends one edition for one subscriber. The returned
// content is what was emailed.
func (s *Service) Deliver(ctx context.Context, sub *subscriber.Subscriber, eph prompt.EphemerisContext, contentType, newsContext string) (string, error) {
	profile := prompt.UserProfile{
		Name:          sub.Name,
		Tier:          sub.Tier,
		Perspective:   sub.Perspective,
		FocusAreas:    sub.FocusAreas,
		BirthLocation: sub.BirthLocation,
		Timezone:      sub.Timezone,
		Locale:        sub.Locale,
	}

	composed := s.composer.Compose(ctx, profile, eph, contentType, newsContext, sub.Locale)
	if composed == nil {
		return "", stderrors.NewTemplateNotFoundError(
			prompt.TemplateID(sub.Perspective, contentType, sub.Tier))
	}

	content, err := s.generator.Generate(ctx, composed)
	if err != nil {
		return "", err
	}

	if err := s.mailer.SendDaily(ctx, sub, content); err != nil {
		return "", err
	}

	s.logger.Info("edition delivered", map[string]interface{}{
		"subscriberId": sub.ID,
		"template":     composed.Template.ID,
		"locale":       sub.Locale,
	})
	return content, nil
}
