package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cedbrasil/enrolld/internal/core/domain"

	"github.com/google/uuid"
)

// EnrollmentStore implements ports.EnrollmentRepository in process memory,
// for single-instance deployments and tests. A single mutex makes every
// Transition a compare-and-set.
type EnrollmentStore struct {
	mu      sync.Mutex
	intents map[string]*domain.EnrollmentIntent
}

// NewEnrollmentStore creates an empty store.
func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{intents: make(map[string]*domain.EnrollmentIntent)}
}

// Create stores the intent with status AWAITING_PAYMENT.
func (s *EnrollmentStore) Create(_ context.Context, intent *domain.EnrollmentIntent) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if intent.CorrelationID == "" {
		intent.CorrelationID = uuid.New().String()
	}
	now := time.Now().UTC()
	intent.Status = domain.StatusAwaitingPayment
	intent.CreatedAt = now
	intent.LastUpdatedAt = now

	stored := *intent
	s.intents[intent.CorrelationID] = &stored
	return intent.CorrelationID, nil
}

// Get returns a copy of the intent, nil when absent.
func (s *EnrollmentStore) Get(_ context.Context, correlationID string) (*domain.EnrollmentIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.intents[correlationID]
	if !ok {
		return nil, nil
	}
	out := *stored
	return &out, nil
}

// Transition applies the compare-and-set update under the store lock.
func (s *EnrollmentStore) Transition(_ context.Context, correlationID string, from []domain.Status, to domain.Status, mutate func(*domain.EnrollmentIntent)) (*domain.EnrollmentIntent, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.intents[correlationID]
	if !ok {
		return nil, false, nil
	}

	matched := false
	for _, st := range from {
		if stored.Status == st {
			matched = true
			break
		}
	}
	if !matched {
		out := *stored
		return &out, false, nil
	}

	stored.Status = to
	if mutate != nil {
		mutate(stored)
	}
	stored.LastUpdatedAt = time.Now().UTC()

	out := *stored
	return &out, true, nil
}

// FindByEmail returns the most recent non-terminal intent for the email.
func (s *EnrollmentStore) FindByEmail(_ context.Context, email string) (*domain.EnrollmentIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best *domain.EnrollmentIntent
	for _, stored := range s.intents {
		if stored.Email != email || stored.Status.IsTerminal() {
			continue
		}
		if best == nil || stored.CreatedAt.After(best.CreatedAt) {
			best = stored
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}

// List returns intents newest first.
func (s *EnrollmentStore) List(_ context.Context, filter domain.IntentFilter) ([]domain.EnrollmentIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.EnrollmentIntent
	for _, stored := range s.intents {
		if filter.Status != "" && stored.Status != filter.Status {
			continue
		}
		out = append(out, *stored)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
