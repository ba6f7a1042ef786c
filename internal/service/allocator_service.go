package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/rs/zerolog"
)

// AttemptPolicy bounds allocation retries.
type AttemptPolicy struct {
	MaxAttempts int
}

// AllocatorService produces registration codes verified free against the
// academic system. A single mutex spans the whole count+verify sequence so
// two concurrent callers cannot derive the same candidate from a stale
// count. The local process is never trusted for global uniqueness.
type AllocatorService struct {
	mu       sync.Mutex
	academic ports.AcademicClient
	prefix   string
	padWidth int
	policy   AttemptPolicy
	log      zerolog.Logger
}

// NewAllocatorService creates the allocator.
func NewAllocatorService(academic ports.AcademicClient, prefix string, padWidth int, policy AttemptPolicy, log zerolog.Logger) *AllocatorService {
	return &AllocatorService{
		academic: academic,
		prefix:   prefix,
		padWidth: padWidth,
		policy:   policy,
		log:      log.With().Str("component", "allocator_service").Logger(),
	}
}

// Allocate returns a registration code no student currently holds.
// Candidate sequence numbers start at count+1 and advance on each verified
// collision, up to the policy bound.
func (s *AllocatorService) Allocate(ctx context.Context) (domain.RegistrationCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.academic.CountStudents(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("student count failed, falling back to prefix count")
		count, err = s.academic.CountStudentsByCodePrefix(ctx, s.prefix)
		if err != nil {
			return "", apperror.ErrExternalUnavailable("academic system", err)
		}
	}

	for offset := 0; offset < s.policy.MaxAttempts; offset++ {
		candidate := s.format(count + 1 + offset)

		holder, err := s.academic.FindStudentByCode(ctx, candidate)
		if err != nil {
			return "", apperror.ErrExternalUnavailable("academic system", err)
		}
		if holder == "" {
			s.log.Info().
				Str("code", string(candidate)).
				Int("offset", offset).
				Msg("registration code allocated")
			return candidate, nil
		}

		s.log.Debug().
			Str("code", string(candidate)).
			Str("holder", holder).
			Msg("candidate code taken, advancing")
	}

	return "", apperror.ErrAllocationExhausted(s.policy.MaxAttempts)
}

func (s *AllocatorService) format(seq int) domain.RegistrationCode {
	return domain.RegistrationCode(fmt.Sprintf("%s%0*d", s.prefix, s.padWidth, seq))
}
