package handler

import (
	"strconv"
	"time"

	"github.com/cedbrasil/enrolld/internal/adapter/http/dto"
	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports"
	"github.com/cedbrasil/enrolld/pkg/apperror"
	"github.com/cedbrasil/enrolld/pkg/response"

	"github.com/gin-gonic/gin"
)

// OperatorHandler exposes the authenticated operator views over enrollment
// intents.
type OperatorHandler struct {
	enrollSvc ports.EnrollmentService
}

// NewOperatorHandler creates a new OperatorHandler.
func NewOperatorHandler(enrollSvc ports.EnrollmentService) *OperatorHandler {
	return &OperatorHandler{enrollSvc: enrollSvc}
}

// List handles GET /api/v1/matriculas.
func (h *OperatorHandler) List(c *gin.Context) {
	var filter domain.IntentFilter
	if s := c.Query("status"); s != "" {
		filter.Status = domain.Status(s)
	}
	if l := c.Query("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil || limit <= 0 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	intents, err := h.enrollSvc.ListIntents(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.IntentResponse, len(intents))
	for i, intent := range intents {
		items[i] = toIntentResponse(&intent)
	}
	response.OK(c, dto.IntentListResponse{Items: items, Total: len(items)})
}

// Get handles GET /api/v1/matriculas/:id.
func (h *OperatorHandler) Get(c *gin.Context) {
	intent, err := h.enrollSvc.GetIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toIntentResponse(intent))
}

// Retry handles POST /api/v1/matriculas/:id/retry.
func (h *OperatorHandler) Retry(c *gin.Context) {
	intent, err := h.enrollSvc.RetryRegistration(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toIntentResponse(intent))
}

// toIntentResponse converts domain.EnrollmentIntent to DTO.
func toIntentResponse(intent *domain.EnrollmentIntent) dto.IntentResponse {
	return dto.IntentResponse{
		CorrelationID:            intent.CorrelationID,
		StudentName:              intent.StudentName,
		ContactNumber:            intent.ContactNumber,
		Email:                    intent.Email,
		RequestedCourses:         intent.RequestedCourses,
		DisciplineIDs:            intent.DisciplineIDs,
		Status:                   string(intent.Status),
		CheckoutResourceID:       intent.CheckoutResourceID,
		AssignedStudentID:        intent.AssignedStudentID,
		AssignedRegistrationCode: string(intent.AssignedRegistrationCode),
		FailureReason:            intent.FailureReason,
		CreatedAt:                intent.CreatedAt.Format(time.RFC3339),
		LastUpdatedAt:            intent.LastUpdatedAt.Format(time.RFC3339),
	}
}
