package locale

import (
	"context"
	"errors"
	"testing"
	"time"

	"astral-content/internal/common/config"
	"astral-content/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

// fakeStore is an in-memory Store with controllable failures.
type fakeStore struct {
	docs     map[string]Document
	err      error
	getCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]Document)}
}

func (f *fakeStore) GetDocument(_ context.Context, localeCode, brand string) (Document, bool, error) {
	f.getCalls++
	if f.err != nil {
		return nil, false, f.err
	}
	doc, ok := f.docs[StoreKey(localeCode, brand)]
	return doc, ok, nil
}

func (f *fakeStore) PutDocument(_ context.Context, localeCode, brand string, doc Document) error {
	f.docs[StoreKey(localeCode, brand)] = doc
	return nil
}

func createTestService(t *testing.T, store Store) *Service {
	return NewService(store, config.LocaleConfig{
		Default:   "en-US",
		Supported: []string{"en-US", "es-ES"},
		Brand:     "astral",
	}, logger.NewTestLogger(t))
}

func seedDocument(store *fakeStore, localeCode, greeting string) {
	store.docs[StoreKey(localeCode, "astral")] = Document{
		"common": map[string]interface{}{"greeting": greeting},
		"api": map[string]interface{}{
			"errors": map[string]interface{}{
				"notFound": greeting + " not found",
			},
		},
	}
}

// ==========================
// LoadLocale Tests
// ==========================

func TestService_LoadLocale_ServesRequested(t *testing.T) {
	store := newFakeStore()
	seedDocument(store, "en-US", "hello")
	seedDocument(store, "es-ES", "hola")
	svc := createTestService(t, store)

	doc := svc.LoadLocale(context.Background(), "es-ES")
	assert.Equal(t, "hola", doc.Lookup("common.greeting").Value)
}

func TestService_LoadLocale_UnsupportedFallsBackToDefault(t *testing.T) {
	store := newFakeStore()
	seedDocument(store, "en-US", "hello")
	svc := createTestService(t, store)

	doc := svc.LoadLocale(context.Background(), "fr-FR")
	assert.Equal(t, "hello", doc.Lookup("common.greeting").Value)
}

func TestService_LoadLocale_MissingDocumentDegradesToDefault(t *testing.T) {
	store := newFakeStore()
	seedDocument(store, "en-US", "hello")
	svc := createTestService(t, store)

	// es-ES is supported but has no document uploaded.
	doc := svc.LoadLocale(context.Background(), "es-ES")
	assert.Equal(t, "hello", doc.Lookup("common.greeting").Value)
}

func TestService_LoadLocale_StoreErrorServesMinimal(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	svc := createTestService(t, store)

	doc := svc.LoadLocale(context.Background(), "es-ES")
	require.NotNil(t, doc)

	// The hardcoded last-resort catalog still answers.
	result := doc.Lookup("api.errors.notFound")
	assert.True(t, result.Found)
	for _, sec := range RequiredSections {
		assert.NotNil(t, doc.Section(sec), "section %s", sec)
	}
}

func TestService_LoadLocale_CachesPerLocale(t *testing.T) {
	store := newFakeStore()
	seedDocument(store, "en-US", "hello")
	svc := createTestService(t, store)

	svc.LoadLocale(context.Background(), "en-US")
	svc.LoadLocale(context.Background(), "en-US")
	assert.Equal(t, 1, store.getCalls)

	svc.ClearCache()
	svc.LoadLocale(context.Background(), "en-US")
	assert.Equal(t, 2, store.getCalls)
}

// ==========================
// Token Tests
// ==========================

func TestService_Token(t *testing.T) {
	store := newFakeStore()
	svc := createTestService(t, store)

	doc := Document{
		"api": map[string]interface{}{
			"success": map[string]interface{}{
				"signupComplete": "Welcome aboard, {{name}}!",
			},
		},
	}

	tests := []struct {
		name     string
		path     string
		vars     map[string]string
		expected string
	}{
		{
			name:     "resolves and interpolates",
			path:     "api.success.signupComplete",
			vars:     map[string]string{"name": "Luna"},
			expected: "Welcome aboard, Luna!",
		},
		{
			name:     "missing key renders bracketed path",
			path:     "api.success.unknown",
			expected: "[api.success.unknown]",
		},
		{
			name:     "missing variable stays literal",
			path:     "api.success.signupComplete",
			vars:     map[string]string{},
			expected: "Welcome aboard, {{name}}!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Token(doc, tt.path, tt.vars))
		})
	}
}

func TestService_Resolve_DistinguishesMissing(t *testing.T) {
	store := newFakeStore()
	svc := createTestService(t, store)
	doc := Document{"validation": map[string]interface{}{"required": "Required."}}

	assert.True(t, svc.Resolve(doc, "validation.required").Found)
	assert.False(t, svc.Resolve(doc, "validation.email.required").Found)
}

// ==========================
// Locale Helpers
// ==========================

func TestService_IsValidLocale(t *testing.T) {
	svc := createTestService(t, newFakeStore())

	assert.True(t, svc.IsValidLocale("en-US"))
	assert.True(t, svc.IsValidLocale("es-ES"))
	assert.False(t, svc.IsValidLocale("fr-FR"))
	assert.False(t, svc.IsValidLocale(""))
}

func TestService_FormatDate(t *testing.T) {
	svc := createTestService(t, newFakeStore())
	date := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "March 5, 2025", svc.FormatDate(date, "en-US"))
	assert.Equal(t, "5 de marzo de 2025", svc.FormatDate(date, "es-ES"))
	assert.Equal(t, "March 5, 2025", svc.FormatDate(date, "fr-FR"))
}
