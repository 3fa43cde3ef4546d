package service

import (
	"context"

	"github.com/vibe-gaming/tourism/internal/domain"
	"github.com/vibe-gaming/tourism/internal/repository"
)

type Services struct {
	States States
	Cities Cities
}

type Deps struct {
	Repos *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		States: newStateService(deps.Repos.States),
		Cities: newCityService(deps.Repos.States, deps.Repos.Cities),
	}
}

// StateList is what the states index page is built from.
type StateList struct {
	States []domain.State
	// TimeZones holds every distinct non-empty time zone in the store,
	// independent of the active filter.
	TimeZones []string
	// TimeZone is the active filter, empty when all states are listed.
	TimeZone string
}

type States interface {
	List(ctx context.Context, timeZone string) (*StateList, error)
	Get(ctx context.Context, id int64) (*domain.State, error)
	Create(ctx context.Context, state *domain.State) error
	Update(ctx context.Context, state *domain.State) error
	Delete(ctx context.Context, id int64) error
}

type Cities interface {
	// List returns the state with Cities holding only its own cities.
	List(ctx context.Context, stateID int64) (*domain.State, error)
	Create(ctx context.Context, stateID int64, city *domain.City) error
}
