// internal/api/responses.go
package api

import (
	"context"
	"strconv"
	"time"

	"astral-content/internal/common/logger"
	"astral-content/internal/locale"
)

// ResponseBody is the uniform JSON body shape for every API response.
type ResponseBody struct {
	Success          bool                `json:"success"`
	Message          string              `json:"message,omitempty"`
	Error            string              `json:"error,omitempty"`
	ErrorCode        string              `json:"errorCode,omitempty"`
	Data             interface{}         `json:"data,omitempty"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`
	RetryAfter       int                 `json:"retryAfter,omitempty"`
	Timestamp        string              `json:"timestamp"`
}

// Response is an HTTP-response-shaped value: status, extra headers, body.
// Request-scoped, never persisted.
type Response struct {
	Status  int
	Headers map[string]string
	Body    ResponseBody
}

// statusByErrorCode is the fixed error-code-to-status table. Unmapped codes
// default to 500, making the mapping total.
var statusByErrorCode = map[string]int{
	"notFound":      404,
	"unauthorized":  401,
	"rateLimited":   429,
	"invalidInput":  400,
	"emailExists":   409,
	"paymentFailed": 402,
}

// StatusForErrorCode maps an error code to its HTTP status.
func StatusForErrorCode(code string) int {
	if status, ok := statusByErrorCode[code]; ok {
		return status
	}
	return 500
}

// ResponseBuilder produces uniform, locale-aware responses. Every builder
// method is panic-proof: any failure in the localization path degrades to a
// generic English 500, never an unhandled error to the client.
type ResponseBuilder struct {
	locales *locale.Service
	logger  logger.Logger
}

func NewResponseBuilder(locales *locale.Service, log logger.Logger) *ResponseBuilder {
	return &ResponseBuilder{
		locales: locales,
		logger:  log.WithFields(map[string]interface{}{"component": "response-builder"}),
	}
}

// resolveLocale normalizes a requested locale to a supported one.
func (b *ResponseBuilder) resolveLocale(localeCode string) string {
	if b.locales.IsValidLocale(localeCode) {
		return localeCode
	}
	return b.locales.DefaultLocale()
}

// Error builds a localized error response with the status from the fixed
// code table and a Content-Language header.
func (b *ResponseBuilder) Error(ctx context.Context, errorCode, localeCode string, vars map[string]string) (resp *Response) {
	defer b.recoverTo(&resp, errorCode)

	resolved := b.resolveLocale(localeCode)
	doc := b.locales.LoadLocale(ctx, resolved)
	message := b.locales.Token(doc, "api.errors."+errorCode, vars)
	status := StatusForErrorCode(errorCode)

	b.logEvent(status, "api error response", map[string]interface{}{
		"errorCode": errorCode,
		"locale":    resolved,
		"status":    status,
	})

	return &Response{
		Status:  status,
		Headers: map[string]string{"Content-Language": resolved},
		Body: ResponseBody{
			Success:   false,
			Error:     message,
			ErrorCode: errorCode,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// Success builds a localized 200 response carrying data.
func (b *ResponseBuilder) Success(ctx context.Context, successCode string, data interface{}, localeCode string, vars map[string]string) (resp *Response) {
	defer b.recoverTo(&resp, successCode)

	resolved := b.resolveLocale(localeCode)
	doc := b.locales.LoadLocale(ctx, resolved)
	message := b.locales.Token(doc, "api.success."+successCode, vars)

	b.logEvent(200, "api success response", map[string]interface{}{
		"successCode": successCode,
		"locale":      resolved,
	})

	return &Response{
		Status:  200,
		Headers: map[string]string{"Content-Language": resolved},
		Body: ResponseBody{
			Success:   true,
			Message:   message,
			Data:      data,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// ValidationError builds a 400 response with per-field localized messages.
// A field-specific key (validation.{field}.{errorKey}) wins when the locale
// document carries one; otherwise the generic validation.{errorKey} message
// is used. The decision relies on the structured lookup result, not on
// inspecting the rendered string.
func (b *ResponseBuilder) ValidationError(ctx context.Context, fieldErrors map[string][]string, localeCode string) (resp *Response) {
	defer b.recoverTo(&resp, "invalidInput")

	resolved := b.resolveLocale(localeCode)
	doc := b.locales.LoadLocale(ctx, resolved)

	validationErrors := make(map[string][]string, len(fieldErrors))
	for field, errorKeys := range fieldErrors {
		messages := make([]string, 0, len(errorKeys))
		for _, errorKey := range errorKeys {
			result := b.locales.Resolve(doc, "validation."+field+"."+errorKey)
			if !result.Found {
				messages = append(messages, b.locales.Token(doc, "validation."+errorKey, nil))
				continue
			}
			messages = append(messages, result.Value)
		}
		validationErrors[field] = messages
	}

	b.logEvent(400, "api validation error response", map[string]interface{}{
		"fields": len(fieldErrors),
		"locale": resolved,
	})

	return &Response{
		Status:  400,
		Headers: map[string]string{"Content-Language": resolved},
		Body: ResponseBody{
			Success:          false,
			Error:            b.locales.Token(doc, "api.errors.invalidInput", nil),
			ValidationErrors: validationErrors,
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// RateLimit builds a 429 response with a Retry-After header echoing the
// same value carried in the body.
func (b *ResponseBuilder) RateLimit(ctx context.Context, retryAfterSeconds int, localeCode string) (resp *Response) {
	defer b.recoverTo(&resp, "rateLimited")

	resolved := b.resolveLocale(localeCode)
	doc := b.locales.LoadLocale(ctx, resolved)
	message := b.locales.Token(doc, "api.errors.rateLimited", map[string]string{
		"retryAfter": strconv.Itoa(retryAfterSeconds),
	})

	b.logEvent(429, "api rate limit response", map[string]interface{}{
		"retryAfter": retryAfterSeconds,
		"locale":     resolved,
	})

	return &Response{
		Status: 429,
		Headers: map[string]string{
			"Content-Language": resolved,
			"Retry-After":      strconv.Itoa(retryAfterSeconds),
		},
		Body: ResponseBody{
			Success:    false,
			Error:      message,
			ErrorCode:  "rateLimited",
			RetryAfter: retryAfterSeconds,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// recoverTo converts a panic anywhere in the build path into the generic
// English 500.
func (b *ResponseBuilder) recoverTo(resp **Response, code string) {
	if r := recover(); r != nil {
		b.logger.Error("response builder panic, serving generic 500", map[string]interface{}{
			"code":  code,
			"panic": r,
		})
		*resp = genericInternalError()
	}
}

func genericInternalError() *Response {
	return &Response{
		Status:  500,
		Headers: map[string]string{"Content-Language": "en-US"},
		Body: ResponseBody{
			Success:   false,
			Error:     "Something went wrong. Please try again later.",
			ErrorCode: "internal",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// logEvent picks the log level appropriate to the HTTP status. Never logs a
// request body.
func (b *ResponseBuilder) logEvent(status int, msg string, fields map[string]interface{}) {
	switch {
	case status >= 500:
		b.logger.Error(msg, fields)
	case status >= 400:
		b.logger.Warn(msg, fields)
	default:
		b.logger.Info(msg, fields)
	}
}
