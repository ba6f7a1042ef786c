package domain

import (
	"time"
)

// Status is the lifecycle state of an enrollment intent.
type Status string

const (
	StatusAwaitingPayment  Status = "AWAITING_PAYMENT"
	StatusPaymentPending   Status = "PAYMENT_PENDING_PROCESSOR"
	StatusPaymentPaused    Status = "PAYMENT_PAUSED"
	StatusPaymentConfirmed Status = "PAYMENT_CONFIRMED"
	StatusRegistered       Status = "REGISTERED"
	StatusRegistrationFail Status = "REGISTRATION_FAILED"
	StatusPaymentRejected  Status = "PAYMENT_REJECTED"
	StatusPaymentCancelled Status = "PAYMENT_CANCELLED"
)

// IsTerminal reports whether no later event may move the intent out of s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRegistered, StatusRegistrationFail, StatusPaymentRejected, StatusPaymentCancelled:
		return true
	}
	return false
}

// Rank orders statuses by precedence. A transition driven by an out-of-order
// event is only applied when the target outranks the current status, so a
// cancelled event arriving after REGISTERED can never revert it.
func (s Status) Rank() int {
	switch s {
	case StatusAwaitingPayment:
		return 0
	case StatusPaymentPending, StatusPaymentPaused:
		return 1
	case StatusPaymentConfirmed:
		return 2
	case StatusPaymentRejected, StatusPaymentCancelled:
		return 3
	case StatusRegistrationFail:
		return 4
	case StatusRegistered:
		return 5
	}
	return -1
}

// RegistrationCode is the 11-digit login assigned to a student: a fixed
// prefix plus a zero-padded sequence number.
type RegistrationCode string

// EnrollmentIntent is a prospective student's request, created before payment
// and mutated as payment and registration progress.
type EnrollmentIntent struct {
	CorrelationID string `json:"correlation_id"`
	StudentName   string `json:"student_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email,omitempty"`

	// RequestedCourses holds course names to resolve against the catalog.
	// DisciplineIDs, when non-nil, takes precedence and skips resolution.
	RequestedCourses []string `json:"requested_courses"`
	DisciplineIDs    []int    `json:"discipline_ids,omitempty"`

	Status Status `json:"status"`

	// CheckoutResourceID is the processor-side id of the checkout created for
	// this intent, recorded for audit and support.
	CheckoutResourceID string `json:"checkout_resource_id,omitempty"`

	// Set exactly once, when Status becomes REGISTERED.
	AssignedStudentID        string           `json:"assigned_student_id,omitempty"`
	AssignedRegistrationCode RegistrationCode `json:"assigned_registration_code,omitempty"`

	FailureReason string `json:"failure_reason,omitempty"`

	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// RegistrationResult reports the outcome of a registration attempt.
// Partial marks the state where the student record exists but discipline
// enrollment failed; callers must not treat it as a clean success.
type RegistrationResult struct {
	StudentID           string           `json:"student_id"`
	RegistrationCode    RegistrationCode `json:"registration_code"`
	EnrolledDisciplines []int            `json:"enrolled_disciplines"`
	Partial             bool             `json:"partial"`
}

// StudentProfile carries the fields submitted to the academic system when
// creating a student record.
type StudentProfile struct {
	Name             string
	Email            string
	ContactNumber    string
	RegistrationCode RegistrationCode
	Password         string
}

// IntentFilter narrows operator listing queries.
type IntentFilter struct {
	Status Status
	Limit  int
}
