package subscriber

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "astral-content/internal/common/errors"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func createTestSubscriber() *Subscriber {
	return &Subscriber{
		ID:            "sub-123",
		Email:         "luna@example.com",
		Name:          "Luna",
		Locale:        "en-US",
		Perspective:   "calm",
		Tier:          "free",
		FocusAreas:    []string{"growth"},
		BirthDate:     "1990-06-15",
		BirthLocation: "Lisbon, Portugal",
		Timezone:      "Europe/Lisbon",
		CreatedAt:     time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC),
	}
}

// ==========================
// Insert Tests
// ==========================

func TestPostgresStore_Insert_Success(t *testing.T) {
	store, mock := createTestStore(t)
	sub := createTestSubscriber()

	mock.ExpectExec("INSERT INTO subscribers").
		WithArgs(sub.ID, sub.Email, sub.Name, sub.Locale, sub.Perspective, sub.Tier,
			pq.Array(sub.FocusAreas), sub.BirthDate, sub.BirthLocation, sub.Timezone, sub.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Insert(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Insert_DuplicateEmail(t *testing.T) {
	store, mock := createTestStore(t)
	sub := createTestSubscriber()

	mock.ExpectExec("INSERT INTO subscribers").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "subscribers_email_key"})

	err := store.Insert(context.Background(), sub)
	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeDuplicateSubscriber, stderrors.CodeOf(err))
}

// ==========================
// GetByEmail Tests
// ==========================

func TestPostgresStore_GetByEmail_Found(t *testing.T) {
	store, mock := createTestStore(t)
	want := createTestSubscriber()

	rows := sqlmock.NewRows([]string{
		"id", "email", "name", "locale", "perspective", "tier",
		"focus_areas", "birth_date", "birth_location", "timezone", "created_at",
	}).AddRow(
		want.ID, want.Email, want.Name, want.Locale, want.Perspective, want.Tier,
		"{growth}", want.BirthDate, want.BirthLocation, want.Timezone, want.CreatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM subscribers WHERE email").
		WithArgs(want.Email).
		WillReturnRows(rows)

	got, err := store.GetByEmail(context.Background(), want.Email)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, []string{"growth"}, got.FocusAreas)
	assert.Equal(t, want.CreatedAt, got.CreatedAt)
}

func TestPostgresStore_GetByEmail_NotFound(t *testing.T) {
	store, mock := createTestStore(t)

	mock.ExpectQuery("SELECT (.+) FROM subscribers WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.GetByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeSubscriberNotFound, stderrors.CodeOf(err))
}
