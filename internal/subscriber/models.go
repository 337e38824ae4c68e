// internal/subscriber/models.go
package subscriber

import "time"

// Subscriber is the minimal user/preference record kept by the signup funnel.
type Subscriber struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Locale        string    `json:"locale"`
	Perspective   string    `json:"perspective"`
	Tier          string    `json:"tier"`
	FocusAreas    []string  `json:"focusAreas"`
	BirthDate     string    `json:"birthDate"` // YYYY-MM-DD, date only
	BirthLocation string    `json:"birthLocation"`
	Timezone      string    `json:"timezone"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RegistrationInput is the payload accepted by the signup endpoint.
type RegistrationInput struct {
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Locale        string   `json:"locale"`
	Perspective   string   `json:"perspective"`
	Tier          string   `json:"tier"`
	FocusAreas    []string `json:"focusAreas"`
	BirthDate     string   `json:"birthDate"`
	BirthLocation string   `json:"birthLocation"`
	Timezone      string   `json:"timezone"`
}

// SupportedTiers is the closed subscription tier set.
var SupportedTiers = map[string]bool{
	"trial": true, "free": true, "basic": true, "pro": true,
}

// SupportedFocusAreas is the closed focus area set.
var SupportedFocusAreas = map[string]bool{
	"love": true, "career": true, "health": true, "growth": true,
}
