package ports

import (
	"context"

	"github.com/cedbrasil/enrolld/internal/core/domain"
)

// EnrollmentRepository defines persistence for enrollment intents.
//
// Transition is a compare-and-set update: the mutation is applied only when
// the current status is one of `from`. When it is not, the current intent is
// returned with applied=false and no error (idempotent no-op). This is the
// primary defense against duplicate webhook processing, so implementations
// must make the check-and-update atomic per correlation id.
type EnrollmentRepository interface {
	// Create stores the intent with status AWAITING_PAYMENT, generating a
	// correlation id when the caller did not supply one.
	Create(ctx context.Context, intent *domain.EnrollmentIntent) (string, error)
	Get(ctx context.Context, correlationID string) (*domain.EnrollmentIntent, error)
	Transition(ctx context.Context, correlationID string, from []domain.Status, to domain.Status, mutate func(*domain.EnrollmentIntent)) (*domain.EnrollmentIntent, bool, error)
	// FindByEmail returns the most recent non-terminal intent for the email,
	// or nil when none matches.
	FindByEmail(ctx context.Context, email string) (*domain.EnrollmentIntent, error)
	List(ctx context.Context, filter domain.IntentFilter) ([]domain.EnrollmentIntent, error)
}

// EventDedupStore is the fast-path duplicate-delivery guard for webhook
// events. It is an optimization only: the repository CAS remains the
// authoritative gate, so losing this store is safe.
type EventDedupStore interface {
	// Claim atomically marks the resource id as being processed. Returns true
	// when this caller won the claim, false when another delivery holds it.
	Claim(ctx context.Context, resourceID string) (bool, error)
	// Release frees a claim so a redelivery can retry after a processing
	// error.
	Release(ctx context.Context, resourceID string) error
}
