package ports

import (
	"context"
	"time"

	"github.com/cedbrasil/enrolld/internal/core/domain"
)

// CourseCatalog resolves course names to discipline ids against an in-memory
// table that reloads atomically.
type CourseCatalog interface {
	// Resolve matches case-insensitively first, then fuzzily above the
	// similarity threshold.
	Resolve(name string) ([]int, error)
	// ResolveMany returns the ordered union over names; any unresolved name
	// fails the whole batch.
	ResolveMany(names []string) ([]int, error)
	Names() []string
	Table() domain.CourseTable
	// NamesForDisciplines is the reverse lookup used in notification text.
	NamesForDisciplines(ids []int) []string
	// Replace swaps the whole table atomically.
	Replace(table domain.CourseTable)
}

// CodeAllocator produces a registration code verified free against the
// academic system, safe under concurrent callers in this process.
type CodeAllocator interface {
	Allocate(ctx context.Context) (domain.RegistrationCode, error)
}

// RegistrationOrchestrator runs the post-payment registration sequence.
type RegistrationOrchestrator interface {
	Register(ctx context.Context, intent *domain.EnrollmentIntent) (*domain.RegistrationResult, error)
}

// WebhookReconciler folds an inbound payment event into the matching
// enrollment intent.
type WebhookReconciler interface {
	Handle(ctx context.Context, event domain.WebhookEvent) error
}

// EnrollmentService is the intent-facing business logic: submission plus the
// operator queries.
type EnrollmentService interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	GetIntent(ctx context.Context, correlationID string) (*domain.EnrollmentIntent, error)
	ListIntents(ctx context.Context, filter domain.IntentFilter) ([]domain.EnrollmentIntent, error)
	// RetryRegistration re-runs registration for a REGISTRATION_FAILED intent.
	RetryRegistration(ctx context.Context, correlationID string) (*domain.EnrollmentIntent, error)
}

// SubmitRequest holds validated input for intent submission.
type SubmitRequest struct {
	StudentName   string
	ContactNumber string
	Email         string
	Courses       []string
	DisciplineIDs []int
	CorrelationID string // optional, generated when empty
	AmountCents   int64
}

// SubmitResult is returned to the prospective student.
type SubmitResult struct {
	CorrelationID string
	RedirectURL   string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the operator API.
type TokenService interface {
	Generate(username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Username string
}

// AuthService authenticates operators.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}
