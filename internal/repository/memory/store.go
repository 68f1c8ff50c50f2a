package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
)

// Store - потокобезопасное хранилище кандидатов в памяти процесса.
// Используется при STORE_DRIVER=memory и в тестах.
type Store struct {
	mu         sync.RWMutex
	candidates map[domain.CandidateKind][]domain.Candidate
}

func NewStore() *Store {
	return &Store{
		candidates: make(map[domain.CandidateKind][]domain.Candidate),
	}
}

// Add stores a copy of each candidate under its kind; later adds with the same ID replace earlier ones.
func (s *Store) Add(candidates ...domain.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range candidates {
		kind := c.Kind()
		if kind == "" {
			return fmt.Errorf("candidate %q has no payload", c.ID)
		}

		list := s.candidates[kind]
		replaced := false
		for i := range list {
			if list[i].ID == c.ID {
				list[i] = clone(c)
				replaced = true
				break
			}
		}
		if !replaced {
			s.candidates[kind] = append(list, clone(c))
		}
	}
	return nil
}

// Len returns the number of stored candidates of kind.
func (s *Store) Len(kind domain.CandidateKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates[kind])
}

func (s *Store) get(ctx context.Context, kind domain.CandidateKind, id string) (*domain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.candidates[kind] {
		if c.ID == id {
			cp := clone(c)
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) find(ctx context.Context, kind domain.CandidateKind, q repository.CandidateQuery) ([]domain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Candidate, 0, len(s.candidates[kind]))
	for _, c := range s.candidates[kind] {
		if !matchesQuery(c, q) {
			continue
		}
		result = append(result, clone(c))
	}
	return result, nil
}

func matchesQuery(c domain.Candidate, q repository.CandidateQuery) bool {
	if q.BloodGroup != "" {
		switch c.Kind() {
		case domain.KindDonor:
			if c.Donor.BloodGroup != q.BloodGroup || c.Donor.Availability != domain.AvailabilityAvailable {
				return false
			}
		case domain.KindBloodBank:
			if c.BloodBank.Units(q.BloodGroup) <= 0 {
				return false
			}
		}
	}

	if q.Area != nil && (c.Coordinate == nil || !q.Area.Contains(*c.Coordinate)) {
		return false
	}

	return true
}

// clone copies the payload pointers and inventory map so callers cannot mutate stored state.
func clone(c domain.Candidate) domain.Candidate {
	if c.Coordinate != nil {
		coord := *c.Coordinate
		c.Coordinate = &coord
	}
	if c.Donor != nil {
		d := *c.Donor
		c.Donor = &d
	}
	if c.BloodBank != nil {
		b := *c.BloodBank
		b.Inventory = make(map[domain.BloodGroup]int, len(c.BloodBank.Inventory))
		for g, units := range c.BloodBank.Inventory {
			b.Inventory[g] = units
		}
		c.BloodBank = &b
	}
	if c.Oxygen != nil {
		o := *c.Oxygen
		c.Oxygen = &o
	}
	return c
}
