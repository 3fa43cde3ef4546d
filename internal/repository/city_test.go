package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/vibe-gaming/tourism/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityGetByStateScopesToOneState(t *testing.T) {
	dbx, mock := newMockDB(t, "postgres")
	repo := newCityRepository(dbx)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, state_id, name FROM cities WHERE state_id = $1 ORDER BY id ASC`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state_id", "name"}).
			AddRow(1, 1, "Denver").
			AddRow(2, 1, "Boulder"))

	cities, err := repo.GetByState(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.City{
		{ID: 1, StateID: 1, Name: "Denver"},
		{ID: 2, StateID: 1, Name: "Boulder"},
	}, cities)
}

func TestCityCreate(t *testing.T) {
	dbx, mock := newMockDB(t, "postgres")
	repo := newCityRepository(dbx)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cities (name, state_id) VALUES ($1, $2) RETURNING id`)).
		WithArgs("Des Moines", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	city := &domain.City{Name: "Des Moines", StateID: 1}
	require.NoError(t, repo.Create(context.Background(), city))
	assert.Equal(t, int64(11), city.ID)
}

func TestCityCreateMissingStateIsForeignKeyViolation(t *testing.T) {
	dbx, mock := newMockDB(t, "postgres")
	repo := newCityRepository(dbx)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cities`)).
		WithArgs("Ames", int64(77)).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.Create(context.Background(), &domain.City{Name: "Ames", StateID: 77})
	assert.ErrorIs(t, err, domain.ErrForeignKeyViolation)
}
