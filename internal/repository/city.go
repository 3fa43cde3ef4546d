package repository

import (
	"context"
	"fmt"

	"github.com/vibe-gaming/tourism/internal/db"
	"github.com/vibe-gaming/tourism/internal/domain"

	"github.com/jmoiron/sqlx"
)

type cityRepository struct {
	db *sqlx.DB
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

func (r *cityRepository) GetByState(ctx context.Context, stateID int64) ([]domain.City, error) {
	const query = `SELECT id, state_id, name FROM cities WHERE state_id = ? ORDER BY id ASC`

	cities := []domain.City{}
	if err := r.db.SelectContext(ctx, &cities, r.db.Rebind(query), stateID); err != nil {
		return nil, fmt.Errorf("select from cities by state failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	const query = `INSERT INTO cities (name, state_id) VALUES (?, ?)`

	id, err := insertReturningID(ctx, r.db, query, city.Name, city.StateID)
	if err != nil {
		return fmt.Errorf("db insert city: %w", db.TranslateError(err))
	}
	city.ID = id
	return nil
}
