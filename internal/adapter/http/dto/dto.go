package dto

// EnrollmentRequest is the request body for intent submission.
type EnrollmentRequest struct {
	Name          string   `json:"nome" binding:"required,min=2,max=120"`
	Whatsapp      string   `json:"whatsapp" binding:"required,min=8,max=20"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Courses       []string `json:"cursos"`
	DisciplineIDs []int    `json:"cursos_ids,omitempty"`
	AmountCents   int64    `json:"valor_centavos" binding:"omitempty,gt=0"`
}

// EnrollmentResponse is returned to the prospective student after submission.
type EnrollmentResponse struct {
	CorrelationID string `json:"id"`
	CheckoutURL   string `json:"checkout_url"`
}

// WebhookBody is the JSON shape of a payment processor notification. The
// processor also delivers the same information as query parameters; either
// shape is accepted and the body status is never trusted.
type WebhookBody struct {
	Type   string `json:"type"`
	Topic  string `json:"topic"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
	ID string `json:"id"`
}

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// IntentResponse is the operator view of an enrollment intent.
type IntentResponse struct {
	CorrelationID            string   `json:"id"`
	StudentName              string   `json:"nome"`
	ContactNumber            string   `json:"whatsapp"`
	Email                    string   `json:"email,omitempty"`
	RequestedCourses         []string `json:"cursos,omitempty"`
	DisciplineIDs            []int    `json:"cursos_ids,omitempty"`
	Status                   string   `json:"status"`
	CheckoutResourceID       string   `json:"checkout_resource_id,omitempty"`
	AssignedStudentID        string   `json:"aluno_id,omitempty"`
	AssignedRegistrationCode string   `json:"codigo,omitempty"`
	FailureReason            string   `json:"failure_reason,omitempty"`
	CreatedAt                string   `json:"created_at"`
	LastUpdatedAt            string   `json:"last_updated_at"`
}

// IntentListResponse wraps an intent listing.
type IntentListResponse struct {
	Items []IntentResponse `json:"items"`
	Total int              `json:"total"`
}

// CourseListResponse lists the catalog for the public enrollment form.
type CourseListResponse struct {
	Courses []string `json:"cursos"`
}
