package domain

// EventTopic distinguishes the two notification families the payment
// processor delivers.
type EventTopic string

const (
	TopicPreapproval EventTopic = "preapproval"
	TopicPayment     EventTopic = "payment"
)

// PaymentStatus is the authoritative status re-fetched from the processor.
// The raw inbound payload is never trusted for this field.
type PaymentStatus string

const (
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentApproved   PaymentStatus = "approved"
	PaymentPending    PaymentStatus = "pending"
	PaymentPaused     PaymentStatus = "paused"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRejected   PaymentStatus = "rejected"
)

// IsApproval reports whether the status confirms payment.
func (p PaymentStatus) IsApproval() bool {
	return p == PaymentAuthorized || p == PaymentApproved
}

// WebhookEvent is a transient inbound trigger. The same ResourceID may be
// delivered zero, one, or many times, in any order relative to other
// resources; its effect is folded into EnrollmentIntent.Status.
type WebhookEvent struct {
	Topic      EventTopic
	ResourceID string
}

// PaymentResource is the processor's answer to a resource lookup: the
// authoritative payment status plus whatever correlation key it carries.
type PaymentResource struct {
	ResourceID    string
	Status        PaymentStatus
	CorrelationID string // external_reference; empty when the processor dropped it
	PayerEmail    string // fallback correlation key
}

// CheckoutSummary is what the processor needs to build a checkout for an
// intent.
type CheckoutSummary struct {
	CorrelationID string
	StudentName   string
	Email         string
	CourseNames   []string
	AmountCents   int64
}

// Checkout is the processor-side resource created for an intent.
type Checkout struct {
	ResourceID  string
	RedirectURL string
}
