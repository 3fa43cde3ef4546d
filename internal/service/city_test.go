package service

import (
	"context"
	"testing"

	"github.com/vibe-gaming/tourism/internal/domain"
	mock_repository "github.com/vibe-gaming/tourism/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCityListAttachesCitiesToState(t *testing.T) {
	ctx := context.Background()
	states := new(mock_repository.States)
	cities := new(mock_repository.Cities)
	states.On("GetByID", ctx, int64(1)).
		Return(&domain.State{ID: 1, Name: "Colorado", Abbreviation: "CO"}, nil)
	cities.On("GetByState", ctx, int64(1)).
		Return([]domain.City{{ID: 1, StateID: 1, Name: "Denver"}, {ID: 2, StateID: 1, Name: "Boulder"}}, nil)

	state, err := newCityService(states, cities).List(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "Colorado", state.Name)
	require.Len(t, state.Cities, 2)
	assert.Equal(t, "Denver", state.Cities[0].Name)
	assert.Equal(t, "Boulder", state.Cities[1].Name)
}

func TestCityListUnknownState(t *testing.T) {
	ctx := context.Background()
	states := new(mock_repository.States)
	cities := new(mock_repository.Cities)
	states.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)

	_, err := newCityService(states, cities).List(ctx, 9)
	assert.ErrorIs(t, err, ErrStateNotFound)
	cities.AssertNotCalled(t, "GetByState", mock.Anything, mock.Anything)
}

func TestCityCreateSetsOwner(t *testing.T) {
	ctx := context.Background()
	states := new(mock_repository.States)
	cities := new(mock_repository.Cities)
	states.On("GetByID", ctx, int64(1)).Return(&domain.State{ID: 1, Name: "Iowa", Abbreviation: "IA"}, nil)
	cities.On("Create", ctx, mock.MatchedBy(func(c *domain.City) bool {
		return c.StateID == 1 && c.Name == "Des Moines"
	})).Return(nil)

	city := &domain.City{Name: "Des Moines"}
	require.NoError(t, newCityService(states, cities).Create(ctx, 1, city))
	assert.Equal(t, int64(1), city.StateID)
	cities.AssertExpectations(t)
}

func TestCityCreateUnknownStateDoesNotInsert(t *testing.T) {
	ctx := context.Background()
	states := new(mock_repository.States)
	cities := new(mock_repository.Cities)
	states.On("GetByID", ctx, int64(2)).Return(nil, domain.ErrNotFound)

	err := newCityService(states, cities).Create(ctx, 2, &domain.City{Name: "Ames"})
	assert.ErrorIs(t, err, ErrStateNotFound)
	cities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCityCreateStateDeletedConcurrently(t *testing.T) {
	ctx := context.Background()
	states := new(mock_repository.States)
	cities := new(mock_repository.Cities)
	states.On("GetByID", ctx, int64(2)).Return(&domain.State{ID: 2, Name: "Iowa"}, nil)
	cities.On("Create", ctx, mock.Anything).Return(domain.ErrForeignKeyViolation)

	err := newCityService(states, cities).Create(ctx, 2, &domain.City{Name: "Ames"})
	assert.ErrorIs(t, err, ErrStateNotFound)
}
