// internal/locale/fallback.go
package locale

// MinimalDocument is the hardcoded last-resort catalog, used only when the
// default locale document itself cannot be loaded. It covers every required
// section with generic English strings so the system can always produce a
// response, never polished copy.
func MinimalDocument() Document {
	return Document{
		"email": map[string]interface{}{
			"welcome": map[string]interface{}{
				"subject": "Welcome to your cosmic journey, {{name}}",
				"body":    "Hello {{name}},\n\nYour personalized astrology newsletter is on its way. Your first reading arrives with the next {{frequency}} edition.\n\nThe Astral Team",
			},
			"daily": map[string]interface{}{
				"subject": "Your reading for {{date}}",
				"body":    "Hello {{name}},\n\n{{content}}\n\nThe Astral Team",
			},
		},
		"perspectives": map[string]interface{}{
			"calm":      map[string]interface{}{"name": "Calm"},
			"knowledge": map[string]interface{}{"name": "Knowledge"},
			"success":   map[string]interface{}{"name": "Success"},
			"evidence":  map[string]interface{}{"name": "Evidence"},
		},
		"formats": map[string]interface{}{
			"date_long":       "January 2, 2006",
			"aspects_none":    "gentle cosmic harmony",
			"retrograde_none": "no retrograde planets",
		},
		"ui": map[string]interface{}{
			"signup": map[string]interface{}{
				"title":       "Start your journey",
				"email_label": "Email address",
				"submit":      "Subscribe",
			},
		},
		"api": map[string]interface{}{
			"errors": map[string]interface{}{
				"notFound":      "The requested resource was not found.",
				"unauthorized":  "You are not authorized to perform this action.",
				"rateLimited":   "Too many requests. Please try again in {{retryAfter}} seconds.",
				"invalidInput":  "The request contains invalid input.",
				"emailExists":   "An account with this email already exists.",
				"paymentFailed": "Payment could not be processed.",
				"internal":      "Something went wrong. Please try again later.",
			},
			"success": map[string]interface{}{
				"signupComplete": "Welcome aboard, {{name}}! Check your inbox.",
				"previewReady":   "Your content preview is ready.",
				"newsletterSent": "The edition was delivered to {{email}}.",
			},
		},
		"validation": map[string]interface{}{
			"required":           "This field is required.",
			"invalidEmail":       "Please enter a valid email address.",
			"unsupportedLocale":  "This language is not supported yet.",
			"invalidPerspective": "Please choose one of the available perspectives.",
			"invalidTier":        "Unknown subscription tier.",
			"invalidInput":       "This value is not allowed.",
		},
		"prompts": map[string]interface{}{
			"tiers": map[string]interface{}{
				"free": map[string]interface{}{
					"base": "Write a short astrology reading for {{date}}. Sun in {{sun_sign}}, Moon in {{moon_sign}} ({{moon_phase}}). Major aspects: {{major_aspects}}.",
				},
			},
			"perspectives": map[string]interface{}{
				"calm": map[string]interface{}{
					"system": "You are a thoughtful astrology writer. Keep the tone soothing and grounded.",
				},
			},
		},
		"common": map[string]interface{}{
			"brand_name": "Astral",
			"tagline":    "Your sky, explained.",
		},
		"focus_areas": map[string]interface{}{
			"love":   "Love & Relationships",
			"career": "Career & Purpose",
			"health": "Health & Energy",
			"growth": "Personal Growth",
		},
	}
}
