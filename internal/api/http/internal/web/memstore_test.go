package web

import (
	"context"
	"sort"
	"sync"

	"github.com/vibe-gaming/tourism/internal/domain"
	"github.com/vibe-gaming/tourism/internal/repository"
)

// memoryStore is an in-process stand-in for the relational store with the
// same observable rules: ids assigned on insert, cities cascade with their state.
type memoryStore struct {
	mu sync.Mutex

	states     []domain.State
	cities     []domain.City
	nextState  int64
	nextCity   int64
	failOnList error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextState: 1, nextCity: 1}
}

func (s *memoryStore) repositories() *repository.Repositories {
	return &repository.Repositories{
		States: memoryStates{s},
		Cities: memoryCities{s},
	}
}

// addState seeds a state and its cities, returning the assigned ids.
func (s *memoryStore) addState(state domain.State, cityNames ...string) int64 {
	_ = memoryStates{s}.Create(context.Background(), &state)
	for _, name := range cityNames {
		_ = memoryCities{s}.Create(context.Background(), &domain.City{Name: name, StateID: state.ID})
	}
	return state.ID
}

func (s *memoryStore) citiesOf(stateID int64) []domain.City {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.City
	for _, c := range s.cities {
		if c.StateID == stateID {
			out = append(out, c)
		}
	}
	return out
}

func (s *memoryStore) cityCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cities)
}

type memoryStates struct{ s *memoryStore }

func (m memoryStates) GetAll(_ context.Context, timeZone string) ([]domain.State, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.failOnList != nil {
		return nil, m.s.failOnList
	}
	out := []domain.State{}
	for _, st := range m.s.states {
		if timeZone == "" || st.TimeZone == timeZone {
			out = append(out, st)
		}
	}
	return out, nil
}

func (m memoryStates) GetByID(_ context.Context, id int64) (*domain.State, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, st := range m.s.states {
		if st.ID == id {
			found := st
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m memoryStates) GetTimeZones(_ context.Context) ([]string, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, st := range m.s.states {
		if st.TimeZone != "" && !seen[st.TimeZone] {
			seen[st.TimeZone] = true
			out = append(out, st.TimeZone)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m memoryStates) Create(_ context.Context, state *domain.State) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	state.ID = m.s.nextState
	m.s.nextState++
	stored := *state
	stored.Cities = nil
	m.s.states = append(m.s.states, stored)
	return nil
}

func (m memoryStates) Update(_ context.Context, state *domain.State) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i := range m.s.states {
		if m.s.states[i].ID == state.ID {
			m.s.states[i].Name = state.Name
			m.s.states[i].Abbreviation = state.Abbreviation
			m.s.states[i].TimeZone = state.TimeZone
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m memoryStates) Delete(_ context.Context, id int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	idx := -1
	for i, st := range m.s.states {
		if st.ID == id {
			idx = i
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	kept := m.s.cities[:0]
	for _, c := range m.s.cities {
		if c.StateID != id {
			kept = append(kept, c)
		}
	}
	m.s.cities = kept
	m.s.states = append(m.s.states[:idx], m.s.states[idx+1:]...)
	return nil
}

type memoryCities struct{ s *memoryStore }

func (m memoryCities) GetByState(_ context.Context, stateID int64) ([]domain.City, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := []domain.City{}
	for _, c := range m.s.cities {
		if c.StateID == stateID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m memoryCities) Create(_ context.Context, city *domain.City) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	exists := false
	for _, st := range m.s.states {
		if st.ID == city.StateID {
			exists = true
		}
	}
	if !exists {
		return domain.ErrForeignKeyViolation
	}
	city.ID = m.s.nextCity
	m.s.nextCity++
	m.s.cities = append(m.s.cities, *city)
	return nil
}
