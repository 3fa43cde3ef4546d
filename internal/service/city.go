package service

import (
	"context"

	"github.com/vibe-gaming/tourism/internal/domain"
	"github.com/vibe-gaming/tourism/internal/repository"

	"github.com/pkg/errors"
)

type cityService struct {
	stateRepository repository.States
	cityRepository  repository.Cities
}

func newCityService(stateRepository repository.States, cityRepository repository.Cities) *cityService {
	return &cityService{
		stateRepository: stateRepository,
		cityRepository:  cityRepository,
	}
}

func (s *cityService) List(ctx context.Context, stateID int64) (*domain.State, error) {
	state, err := s.stateRepository.GetByID(ctx, stateID)
	if err != nil {
		return nil, stateError(err, "get state")
	}

	cities, err := s.cityRepository.GetByState(ctx, stateID)
	if err != nil {
		return nil, errors.Wrap(err, "list cities")
	}
	state.Cities = cities

	return state, nil
}

func (s *cityService) Create(ctx context.Context, stateID int64, city *domain.City) error {
	if _, err := s.stateRepository.GetByID(ctx, stateID); err != nil {
		return stateError(err, "get state")
	}

	city.StateID = stateID
	// the state can still vanish before the insert; the foreign key catches it
	if err := s.cityRepository.Create(ctx, city); err != nil {
		return stateError(err, "create city")
	}
	return nil
}
