package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vibe-gaming/tourism/internal/db"
	"github.com/vibe-gaming/tourism/internal/domain"

	"github.com/jmoiron/sqlx"
)

type stateRepository struct {
	db *sqlx.DB
}

func newStateRepository(db *sqlx.DB) *stateRepository {
	return &stateRepository{
		db: db,
	}
}

func (r *stateRepository) GetAll(ctx context.Context, timeZone string) ([]domain.State, error) {
	query := `SELECT id, name, abbreviation, time_zone FROM states`
	var args []any
	if timeZone != "" {
		query += ` WHERE time_zone = ?`
		args = append(args, timeZone)
	}
	query += ` ORDER BY id ASC`

	states := []domain.State{}
	if err := r.db.SelectContext(ctx, &states, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select from states failed: %w", err)
	}
	return states, nil
}

func (r *stateRepository) GetByID(ctx context.Context, id int64) (*domain.State, error) {
	const query = `SELECT id, name, abbreviation, time_zone FROM states WHERE id = ?`

	var state domain.State
	if err := r.db.GetContext(ctx, &state, r.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from states by id failed: %w", err)
	}
	return &state, nil
}

func (r *stateRepository) GetTimeZones(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT time_zone FROM states WHERE time_zone <> '' ORDER BY time_zone ASC`

	timeZones := []string{}
	if err := r.db.SelectContext(ctx, &timeZones, query); err != nil {
		return nil, fmt.Errorf("select time zones failed: %w", err)
	}
	return timeZones, nil
}

func (r *stateRepository) Create(ctx context.Context, state *domain.State) error {
	const query = `INSERT INTO states (name, abbreviation, time_zone) VALUES (?, ?, ?)`

	id, err := insertReturningID(ctx, r.db, query, state.Name, state.Abbreviation, state.TimeZone)
	if err != nil {
		return fmt.Errorf("db insert state: %w", db.TranslateError(err))
	}
	state.ID = id
	return nil
}

func (r *stateRepository) Update(ctx context.Context, state *domain.State) error {
	const query = `UPDATE states SET name = ?, abbreviation = ?, time_zone = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), state.Name, state.Abbreviation, state.TimeZone, state.ID)
	if err != nil {
		return fmt.Errorf("db update state: %w", db.TranslateError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stateRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM cities WHERE state_id = ?`), id); err != nil {
		return fmt.Errorf("db delete cities of state: %w", err)
	}

	result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM states WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("db delete state: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete state: %w", err)
	}
	return nil
}
