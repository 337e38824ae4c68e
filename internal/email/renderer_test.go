package email

import (
	"context"
	"testing"
	"time"

	"astral-content/internal/common/config"
	"astral-content/internal/common/logger"
	"astral-content/internal/locale"
	"astral-content/internal/subscriber"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

type memStore struct {
	docs map[string]locale.Document
}

func (m *memStore) GetDocument(_ context.Context, localeCode, brand string) (locale.Document, bool, error) {
	doc, ok := m.docs[locale.StoreKey(localeCode, brand)]
	return doc, ok, nil
}

func (m *memStore) PutDocument(_ context.Context, localeCode, brand string, doc locale.Document) error {
	m.docs[locale.StoreKey(localeCode, brand)] = doc
	return nil
}

func createTestRenderer(t *testing.T, docs map[string]locale.Document) *Renderer {
	locales := locale.NewService(&memStore{docs: docs}, config.LocaleConfig{
		Default:   "en-US",
		Supported: []string{"en-US", "es-ES"},
		Brand:     "astral",
	}, logger.NewTestLogger(t))
	return NewRenderer(locales, logger.NewTestLogger(t))
}

func emailDocument() locale.Document {
	return locale.Document{
		"email": map[string]interface{}{
			"welcome": map[string]interface{}{
				"subject": "Bienvenido, {{name}}",
				"body":    "Hola {{name}}, tu boletín llega con la próxima edición {{frequency}}.",
			},
			"daily": map[string]interface{}{
				"subject": "Tu lectura del {{date}}",
				"body":    "Hola {{name}},\n\n{{content}}",
			},
		},
	}
}

func spanishSubscriber(tier string) *subscriber.Subscriber {
	return &subscriber.Subscriber{
		ID:     "sub-1",
		Email:  "sol@example.com",
		Name:   "Sol",
		Locale: "es-ES",
		Tier:   tier,
	}
}

// ==========================
// Renderer Tests
// ==========================

func TestRenderer_RenderWelcome(t *testing.T) {
	renderer := createTestRenderer(t, map[string]locale.Document{
		locale.StoreKey("es-ES", "astral"): emailDocument(),
	})

	subject, body := renderer.RenderWelcome(context.Background(), spanishSubscriber("pro"))

	assert.Equal(t, "Bienvenido, Sol", subject)
	assert.Contains(t, body, "Hola Sol")
	assert.Contains(t, body, "edición daily")
}

func TestRenderer_RenderDaily(t *testing.T) {
	renderer := createTestRenderer(t, map[string]locale.Document{
		locale.StoreKey("es-ES", "astral"): emailDocument(),
	})

	date := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.UTC)
	subject, body := renderer.RenderDaily(context.Background(), spanishSubscriber("free"), "Hoy el cielo te favorece.", date)

	assert.Equal(t, "Tu lectura del 5 de marzo de 2025", subject)
	assert.Contains(t, body, "Hoy el cielo te favorece.")
}

func TestRenderer_MissingDocumentUsesFallbackChain(t *testing.T) {
	renderer := createTestRenderer(t, map[string]locale.Document{})

	subject, body := renderer.RenderWelcome(context.Background(), spanishSubscriber("free"))

	// Served from the minimal catalog: English, but complete.
	assert.Contains(t, subject, "Sol")
	assert.NotContains(t, subject, "[email.welcome")
	assert.NotContains(t, body, "[email.welcome")
}

func TestFrequencyFor(t *testing.T) {
	assert.Equal(t, "daily", frequencyFor("pro"))
	assert.Equal(t, "daily", frequencyFor("basic"))
	assert.Equal(t, "weekly", frequencyFor("free"))
	assert.Equal(t, "weekly", frequencyFor("trial"))
}
