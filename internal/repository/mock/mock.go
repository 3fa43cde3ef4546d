package mock_repository

import (
	"context"

	"github.com/vibe-gaming/tourism/internal/domain"

	"github.com/stretchr/testify/mock"
)

type States struct {
	mock.Mock
}

func (m *States) GetAll(ctx context.Context, timeZone string) ([]domain.State, error) {
	args := m.Called(ctx, timeZone)

	states, _ := args.Get(0).([]domain.State)
	return states, args.Error(1)
}

func (m *States) GetByID(ctx context.Context, id int64) (*domain.State, error) {
	args := m.Called(ctx, id)

	state, _ := args.Get(0).(*domain.State)
	return state, args.Error(1)
}

func (m *States) GetTimeZones(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	zones, _ := args.Get(0).([]string)
	return zones, args.Error(1)
}

func (m *States) Create(ctx context.Context, state *domain.State) error {
	args := m.Called(ctx, state)

	return args.Error(0)
}

func (m *States) Update(ctx context.Context, state *domain.State) error {
	args := m.Called(ctx, state)

	return args.Error(0)
}

func (m *States) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type Cities struct {
	mock.Mock
}

func (m *Cities) GetByState(ctx context.Context, stateID int64) ([]domain.City, error) {
	args := m.Called(ctx, stateID)

	cities, _ := args.Get(0).([]domain.City)
	return cities, args.Error(1)
}

func (m *Cities) Create(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)

	return args.Error(0)
}
