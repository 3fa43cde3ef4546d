package repository

import (
	"context"

	"github.com/vibe-gaming/tourism/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	States States
	Cities Cities
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		States: newStateRepository(db),
		Cities: newCityRepository(db),
	}
}

type States interface {
	// GetAll returns states ordered by id. A non-empty timeZone keeps only
	// the states whose time zone equals it exactly.
	GetAll(ctx context.Context, timeZone string) ([]domain.State, error)
	GetByID(ctx context.Context, id int64) (*domain.State, error)
	// GetTimeZones returns the distinct non-empty time zones in sort order.
	GetTimeZones(ctx context.Context) ([]string, error)
	Create(ctx context.Context, state *domain.State) error
	Update(ctx context.Context, state *domain.State) error
	// Delete removes the state together with every city it owns.
	Delete(ctx context.Context, id int64) error
}

type Cities interface {
	GetByState(ctx context.Context, stateID int64) ([]domain.City, error)
	Create(ctx context.Context, city *domain.City) error
}

// insertReturningID runs an INSERT and reports the id the store assigned.
// Postgres needs RETURNING; MySQL exposes LAST_INSERT_ID through the result.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, args ...any) (int64, error) {
	if db.DriverName() == "postgres" {
		var id int64
		err := db.QueryRowxContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
