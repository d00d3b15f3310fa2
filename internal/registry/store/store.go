package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
)

// Store keeps all cases and offenders in memory. An RWMutex guards the
// indices so case creation stays atomic with respect to concurrent readers
// of offender history and case listings; per-case state has its own lock
// inside the case itself.
type Store struct {
	mu        sync.RWMutex
	cases     map[uuid.UUID]*casefile.Case
	caseOrder []uuid.UUID
	offenders map[uuid.UUID]*offense.Offender
}

func New() *Store {
	return &Store{
		cases:     make(map[uuid.UUID]*casefile.Case),
		offenders: make(map[uuid.UUID]*offense.Offender),
	}
}

func (s *Store) SaveCase(_ context.Context, c *casefile.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cases[c.ID()]; !exists {
		s.caseOrder = append(s.caseOrder, c.ID())
	}

	s.cases[c.ID()] = c

	return nil
}

func (s *Store) Case(_ context.Context, id uuid.UUID) (*casefile.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, registry.ErrCaseNotFound
	}

	return c, nil
}

// Cases returns every tracked case in insertion order.
func (s *Store) Cases(_ context.Context) ([]*casefile.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*casefile.Case, 0, len(s.caseOrder))
	for _, id := range s.caseOrder {
		out = append(out, s.cases[id])
	}

	return out, nil
}

func (s *Store) SaveOffender(_ context.Context, o *offense.Offender) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offenders[o.ID] = o

	return nil
}

func (s *Store) Offender(_ context.Context, id uuid.UUID) (*offense.Offender, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.offenders[id]
	if !ok {
		return nil, registry.ErrOffenderNotFound
	}

	return o, nil
}

// OffenderByIdentity matches an offender on full name (case-insensitive)
// and date of birth. Linear scan; fine at in-memory scale.
func (s *Store) OffenderByIdentity(_ context.Context, fullName string, dateOfBirth time.Time) (*offense.Offender, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	y, m, d := dateOfBirth.Date()

	for _, o := range s.offenders {
		oy, om, od := o.DateOfBirth.Date()
		if strings.EqualFold(o.FullName, fullName) && oy == y && om == m && od == d {
			return o, nil
		}
	}

	return nil, registry.ErrOffenderNotFound
}

func (s *Store) AppendCaseToHistory(_ context.Context, offenderID, caseID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.offenders[offenderID]
	if !ok {
		return registry.ErrOffenderNotFound
	}

	o.CaseIDs = append(o.CaseIDs, caseID)

	return nil
}

// HistoryCountByType counts the offender's past cases with the given
// offense type. Only exact type matches count towards the penalty factor.
func (s *Store) HistoryCountByType(_ context.Context, offenderID uuid.UUID, t offense.Type) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.offenders[offenderID]
	if !ok {
		return 0, registry.ErrOffenderNotFound
	}

	count := 0

	for _, caseID := range o.CaseIDs {
		c, ok := s.cases[caseID]
		if !ok {
			continue
		}

		if c.OffenseType() == t {
			count++
		}
	}

	return count, nil
}
