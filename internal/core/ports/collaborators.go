package ports

import (
	"context"

	"github.com/cedbrasil/enrolld/internal/core/domain"
)

// AcademicClient talks to the external school management system. The local
// store is never authoritative for registration codes; every uniqueness
// decision goes through this client.
type AcademicClient interface {
	// CountStudents returns the total student count (primary allocation source).
	CountStudents(ctx context.Context) (int, error)
	// CountStudentsByCodePrefix counts students whose registration code starts
	// with prefix (fallback source, strictly slower).
	CountStudentsByCodePrefix(ctx context.Context, prefix string) (int, error)
	// FindStudentByCode returns the student id holding the code, or "" when
	// the code is free.
	FindStudentByCode(ctx context.Context, code domain.RegistrationCode) (string, error)
	// CreateStudent creates the student record and returns its id.
	CreateStudent(ctx context.Context, profile domain.StudentProfile) (string, error)
	// EnrollStudent binds the student to the discipline ids.
	EnrollStudent(ctx context.Context, studentID string, disciplineIDs []int) error
}

// PaymentProcessor talks to the external payment system.
type PaymentProcessor interface {
	// CreateCheckout builds a checkout whose external reference is the
	// intent's correlation id.
	CreateCheckout(ctx context.Context, summary domain.CheckoutSummary) (*domain.Checkout, error)
	// GetResource re-fetches the authoritative status for a notified
	// resource. Inbound payload status fields are never trusted.
	GetResource(ctx context.Context, topic domain.EventTopic, resourceID string) (*domain.PaymentResource, error)
}

// Notifier dispatches best-effort outbound messages. Implementations log and
// swallow their own failures; callers never fail on notification errors.
type Notifier interface {
	// SendWelcome messages the student their portal login and password.
	SendWelcome(ctx context.Context, contactNumber string, name string, code domain.RegistrationCode, password string) error
	// LogEvent posts an operational event to the team channel.
	LogEvent(ctx context.Context, title string, description string, success bool) error
}
