package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/cedbrasil/enrolld/internal/adapter/http/dto"
	"github.com/cedbrasil/enrolld/internal/core/ports"
	"github.com/cedbrasil/enrolld/pkg/apperror"
	"github.com/cedbrasil/enrolld/pkg/response"

	"github.com/gin-gonic/gin"
)

// EnrollmentHandler handles the public enrollment endpoints.
type EnrollmentHandler struct {
	enrollSvc ports.EnrollmentService
	catalog   ports.CourseCatalog
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollSvc ports.EnrollmentService, catalog ports.CourseCatalog) *EnrollmentHandler {
	return &EnrollmentHandler{enrollSvc: enrollSvc, catalog: catalog}
}

// Submit handles POST /api/v1/matricula.
func (h *EnrollmentHandler) Submit(c *gin.Context) {
	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.enrollSvc.Submit(c.Request.Context(), ports.SubmitRequest{
		StudentName:   req.Name,
		ContactNumber: req.Whatsapp,
		Email:         req.Email,
		Courses:       req.Courses,
		DisciplineIDs: req.DisciplineIDs,
		AmountCents:   req.AmountCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.EnrollmentResponse{
		CorrelationID: result.CorrelationID,
		CheckoutURL:   result.RedirectURL,
	})
}

// ListCourses handles GET /api/v1/cursos.
func (h *EnrollmentHandler) ListCourses(c *gin.Context) {
	response.OK(c, dto.CourseListResponse{Courses: h.catalog.Names()})
}

// PaymentStatus handles GET /pagamento-status, the page the checkout
// redirects the payer back to. Registration itself is driven by webhooks,
// so this only acknowledges the return.
func (h *EnrollmentHandler) PaymentStatus(c *gin.Context) {
	preapprovalID := c.Query("preapproval_id")
	if preapprovalID == "" {
		preapprovalID = "N/A"
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>CED - Pagamento</title></head>
<body>
<h1>Obrigado!</h1>
<p>Sua solicitação de assinatura (ID: %s) foi enviada.</p>
<p>Assim que o pagamento for confirmado, você receberá seus dados de acesso pelo WhatsApp.</p>
</body>
</html>`, html.EscapeString(preapprovalID))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
