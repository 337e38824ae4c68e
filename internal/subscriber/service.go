// internal/subscriber/service.go
package subscriber

import (
	"context"
	"regexp"
	"time"

	stderrors "astral-content/internal/common/errors"
	"astral-content/internal/common/logger"
	"astral-content/internal/locale"

	"github.com/google/uuid"
)

// WelcomeMailer dispatches the localized welcome email after registration.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, sub *Subscriber) error
}

// Service implements the signup funnel: validate, persist, welcome email.
type Service struct {
	store   Store
	mailer  WelcomeMailer
	locales *locale.Service
	logger  logger.Logger
}

func NewService(store Store, mailer WelcomeMailer, locales *locale.Service, log logger.Logger) *Service {
	return &Service{
		store:   store,
		mailer:  mailer,
		locales: locales,
		logger:  log.WithFields(map[string]interface{}{"component": "subscriber-service"}),
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks a registration payload. The returned map is keyed by field
// name with validation error keys matching the locale document's validation
// section; an empty map means the input is acceptable.
func (s *Service) Validate(input *RegistrationInput) map[string][]string {
	fieldErrors := make(map[string][]string)

	if input.Email == "" {
		fieldErrors["email"] = append(fieldErrors["email"], "required")
	} else if !emailPattern.MatchString(input.Email) {
		fieldErrors["email"] = append(fieldErrors["email"], "invalidEmail")
	}

	if input.Name == "" {
		fieldErrors["name"] = append(fieldErrors["name"], "required")
	}

	if input.Locale != "" && !s.locales.IsValidLocale(input.Locale) {
		fieldErrors["locale"] = append(fieldErrors["locale"], "unsupportedLocale")
	}

	if input.Perspective != "" && !s.locales.IsValidPerspective(input.Perspective) {
		fieldErrors["perspective"] = append(fieldErrors["perspective"], "invalidPerspective")
	}

	if input.Tier != "" && !SupportedTiers[input.Tier] {
		fieldErrors["tier"] = append(fieldErrors["tier"], "invalidTier")
	}

	for _, area := range input.FocusAreas {
		if !SupportedFocusAreas[area] {
			fieldErrors["focusAreas"] = append(fieldErrors["focusAreas"], "invalidInput")
			break
		}
	}

	return fieldErrors
}

// Register validates and persists a new subscriber, then dispatches the
// welcome email. Email delivery failure is logged but does not fail the
// registration. The fieldErrors return is non-empty for validation
// rejections; a non-nil error covers duplicates and storage faults.
func (s *Service) Register(ctx context.Context, input *RegistrationInput) (*Subscriber, map[string][]string, error) {
	if fieldErrors := s.Validate(input); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	sub := &Subscriber{
		ID:            uuid.NewString(),
		Email:         input.Email,
		Name:          input.Name,
		Locale:        input.Locale,
		Perspective:   input.Perspective,
		Tier:          input.Tier,
		FocusAreas:    input.FocusAreas,
		BirthDate:     input.BirthDate,
		BirthLocation: input.BirthLocation,
		Timezone:      input.Timezone,
		CreatedAt:     time.Now().UTC(),
	}
	s.applyDefaults(sub)

	if err := s.store.Insert(ctx, sub); err != nil {
		return nil, nil, err
	}

	s.logger.Info("subscriber registered", map[string]interface{}{
		"subscriberId": sub.ID,
		"locale":       sub.Locale,
		"tier":         sub.Tier,
	})

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, sub); err != nil {
			s.logger.WithError(err).Warn("welcome email dispatch failed", map[string]interface{}{
				"subscriberId": sub.ID,
				"errorCode":    string(stderrors.CodeOf(err)),
			})
		}
	}

	return sub, nil, nil
}

// GetByEmail looks up an existing subscriber.
func (s *Service) GetByEmail(ctx context.Context, email string) (*Subscriber, error) {
	return s.store.GetByEmail(ctx, email)
}

func (s *Service) applyDefaults(sub *Subscriber) {
	if sub.Locale == "" {
		sub.Locale = s.locales.DefaultLocale()
	}
	if sub.Perspective == "" {
		sub.Perspective = "calm"
	}
	if sub.Tier == "" {
		sub.Tier = "free"
	}
	if len(sub.FocusAreas) == 0 {
		sub.FocusAreas = []string{"growth"}
	}
	if sub.Timezone == "" {
		sub.Timezone = "UTC"
	}
}
