package service

import (
	"context"

	"github.com/vibe-gaming/tourism/internal/domain"
	"github.com/vibe-gaming/tourism/internal/repository"

	"github.com/pkg/errors"
)

type stateService struct {
	stateRepository repository.States
}

func newStateService(stateRepository repository.States) *stateService {
	return &stateService{
		stateRepository: stateRepository,
	}
}

func (s *stateService) List(ctx context.Context, timeZone string) (*StateList, error) {
	states, err := s.stateRepository.GetAll(ctx, timeZone)
	if err != nil {
		return nil, errors.Wrap(err, "list states")
	}

	timeZones, err := s.stateRepository.GetTimeZones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list time zones")
	}

	return &StateList{
		States:    states,
		TimeZones: timeZones,
		TimeZone:  timeZone,
	}, nil
}

func (s *stateService) Get(ctx context.Context, id int64) (*domain.State, error) {
	state, err := s.stateRepository.GetByID(ctx, id)
	if err != nil {
		return nil, stateError(err, "get state")
	}
	return state, nil
}

func (s *stateService) Create(ctx context.Context, state *domain.State) error {
	return errors.Wrap(s.stateRepository.Create(ctx, state), "create state")
}

func (s *stateService) Update(ctx context.Context, state *domain.State) error {
	if err := s.stateRepository.Update(ctx, state); err != nil {
		return stateError(err, "update state")
	}
	return nil
}

func (s *stateService) Delete(ctx context.Context, id int64) error {
	if err := s.stateRepository.Delete(ctx, id); err != nil {
		return stateError(err, "delete state")
	}
	return nil
}

// stateError turns a missing row into ErrStateNotFound and wraps the rest.
func stateError(err error, op string) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForeignKeyViolation) {
		return ErrStateNotFound
	}
	return errors.Wrap(err, op)
}
