// internal/api/handlers.go
package api

import (
	"net/http"
	"time"

	stderrors "astral-content/internal/common/errors"
	"astral-content/internal/prompt"
	"astral-content/internal/subscriber"

	"github.com/gin-gonic/gin"
)

// contentPreviewRequest is the payload for the preview endpoint: a profile
// plus a precomputed ephemeris snapshot.
type contentPreviewRequest struct {
	Profile     prompt.UserProfile      `json:"profile"`
	Ephemeris   prompt.EphemerisContext `json:"ephemeris"`
	ContentType string                  `json:"contentType"`
	NewsContext string                  `json:"newsContext"`
	Locale      string                  `json:"locale"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   s.cfg.App.Name,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleSignup registers a subscriber. The response locale comes from the
// request headers unless the payload names a supported locale itself.
func (s *Server) handleSignup(c *gin.Context) {
	ctx := c.Request.Context()
	localeCode := LocaleFromRequest(c.Request, s.locales)

	var input subscriber.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		write(c, s.responses.Error(ctx, "invalidInput", localeCode, nil))
		return
	}
	if s.locales.IsValidLocale(input.Locale) {
		localeCode = input.Locale
	}

	sub, fieldErrors, err := s.subscribers.Register(ctx, &input)
	if len(fieldErrors) > 0 {
		write(c, s.responses.ValidationError(ctx, fieldErrors, localeCode))
		return
	}
	if err != nil {
		switch stderrors.CodeOf(err) {
		case stderrors.ErrCodeDuplicateSubscriber:
			write(c, s.responses.Error(ctx, "emailExists", localeCode, nil))
		default:
			s.logger.WithError(err).Error("signup failed", map[string]interface{}{
				"requestId": c.GetString("requestID"),
			})
			write(c, s.responses.Error(ctx, "internal", localeCode, nil))
		}
		return
	}

	write(c, s.responses.Success(ctx, "signupComplete", gin.H{
		"subscriberId": sub.ID,
		"locale":       sub.Locale,
		"tier":         sub.Tier,
	}, localeCode, map[string]string{"name": sub.Name}))
}

// dispatchRequest triggers one edition for one existing subscriber: operator
// tooling for smoke-testing the full pipeline.
type dispatchRequest struct {
	Email       string                  `json:"email"`
	Ephemeris   prompt.EphemerisContext `json:"ephemeris"`
	ContentType string                  `json:"contentType"`
	NewsContext string                  `json:"newsContext"`
}

func (s *Server) handleNewsletterDispatch(c *gin.Context) {
	ctx := c.Request.Context()
	localeCode := LocaleFromRequest(c.Request, s.locales)

	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		write(c, s.responses.Error(ctx, "invalidInput", localeCode, nil))
		return
	}
	if req.ContentType == "" {
		req.ContentType = "daily"
	}

	sub, err := s.subscribers.GetByEmail(ctx, req.Email)
	if err != nil {
		write(c, s.responses.Error(ctx, "notFound", localeCode, nil))
		return
	}

	content, err := s.newsletters.Deliver(ctx, sub, req.Ephemeris, req.ContentType, req.NewsContext)
	if err != nil {
		switch stderrors.CodeOf(err) {
		case stderrors.ErrCodeTemplateNotFound:
			write(c, s.responses.Error(ctx, "notFound", localeCode, nil))
		default:
			s.logger.WithError(err).Error("newsletter dispatch failed", map[string]interface{}{
				"requestId": c.GetString("requestID"),
			})
			write(c, s.responses.Error(ctx, "internal", localeCode, nil))
		}
		return
	}

	write(c, s.responses.Success(ctx, "newsletterSent", gin.H{
		"subscriberId": sub.ID,
		"characters":   len(content),
	}, localeCode, map[string]string{"email": sub.Email}))
}

// handleContentPreview composes the generation prompt for a given profile and
// ephemeris snapshot without calling the model, so operators can inspect what
// a subscriber would receive.
func (s *Server) handleContentPreview(c *gin.Context) {
	ctx := c.Request.Context()
	localeCode := LocaleFromRequest(c.Request, s.locales)

	var req contentPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		write(c, s.responses.Error(ctx, "invalidInput", localeCode, nil))
		return
	}
	if s.locales.IsValidLocale(req.Locale) {
		localeCode = req.Locale
	}
	if req.ContentType == "" {
		req.ContentType = "daily"
	}

	composed := s.composer.Compose(ctx, req.Profile, req.Ephemeris, req.ContentType, req.NewsContext, localeCode)
	if composed == nil {
		write(c, s.responses.Error(ctx, "notFound", localeCode, nil))
		return
	}

	write(c, s.responses.Success(ctx, "previewReady", gin.H{
		"systemPrompt": composed.SystemPrompt,
		"userPrompt":   composed.UserPrompt,
		"templateId":   composed.Template.ID,
		"model":        composed.Template.Model.Model,
	}, localeCode, nil))
}
