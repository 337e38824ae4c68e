// internal/subscriber/store.go
package subscriber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	stderrors "astral-content/internal/common/errors"

	"github.com/lib/pq"
)

// Store persists subscriber records.
type Store interface {
	Insert(ctx context.Context, sub *Subscriber) error
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
}

// PostgresStore is the SQL-backed subscriber store.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const uniqueViolation = "23505"

// Insert writes a new subscriber. A unique-constraint violation on email
// surfaces as a DuplicateSubscriber error.
func (s *PostgresStore) Insert(ctx context.Context, sub *Subscriber) error {
	query := `INSERT INTO subscribers
		(id, email, name, locale, perspective, tier, focus_areas, birth_date, birth_location, timezone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.ExecContext(ctx, query,
		sub.ID, sub.Email, sub.Name, sub.Locale, sub.Perspective, sub.Tier,
		pq.Array(sub.FocusAreas), sub.BirthDate, sub.BirthLocation, sub.Timezone, sub.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return stderrors.NewDuplicateSubscriberError(sub.Email)
		}
		return stderrors.NewDatabaseInsertFailedError(err)
	}
	return nil
}

// GetByEmail looks a subscriber up by email.
func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*Subscriber, error) {
	query := `SELECT id, email, name, locale, perspective, tier, focus_areas, birth_date, birth_location, timezone, created_at
		FROM subscribers WHERE email = $1`

	var sub Subscriber
	var createdAt time.Time
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&sub.ID, &sub.Email, &sub.Name, &sub.Locale, &sub.Perspective, &sub.Tier,
		pq.Array(&sub.FocusAreas), &sub.BirthDate, &sub.BirthLocation, &sub.Timezone, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, stderrors.NewSubscriberNotFoundError(email)
		}
		return nil, fmt.Errorf("subscriber lookup: %w", err)
	}
	sub.CreatedAt = createdAt
	return &sub, nil
}
