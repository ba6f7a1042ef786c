package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/rs/zerolog"
)

// EnrollmentAppService handles intent submission and the operator-facing
// queries over stored intents.
type EnrollmentAppService struct {
	repo         ports.EnrollmentRepository
	catalog      ports.CourseCatalog
	processor    ports.PaymentProcessor
	orchestrator ports.RegistrationOrchestrator
	notifier     ports.Notifier
	metrics      *MetricsService
	log          zerolog.Logger
}

// NewEnrollmentAppService creates the service.
func NewEnrollmentAppService(
	repo ports.EnrollmentRepository,
	catalog ports.CourseCatalog,
	processor ports.PaymentProcessor,
	orchestrator ports.RegistrationOrchestrator,
	notifier ports.Notifier,
	metrics *MetricsService,
	log zerolog.Logger,
) *EnrollmentAppService {
	return &EnrollmentAppService{
		repo:         repo,
		catalog:      catalog,
		processor:    processor,
		orchestrator: orchestrator,
		notifier:     notifier,
		metrics:      metrics,
		log:          log.With().Str("component", "enrollment_service").Logger(),
	}
}

// Submit validates the request, stores the intent and opens a checkout with
// the correlation id as external reference.
func (s *EnrollmentAppService) Submit(ctx context.Context, req ports.SubmitRequest) (*ports.SubmitResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	intent := &domain.EnrollmentIntent{
		CorrelationID:    req.CorrelationID,
		StudentName:      strings.TrimSpace(req.StudentName),
		ContactNumber:    strings.TrimSpace(req.ContactNumber),
		Email:            strings.TrimSpace(req.Email),
		RequestedCourses: req.Courses,
		DisciplineIDs:    req.DisciplineIDs,
	}

	correlationID, err := s.repo.Create(ctx, intent)
	if err != nil {
		return nil, err
	}
	log := s.log.With().Str("correlation_id", correlationID).Logger()

	checkout, err := s.processor.CreateCheckout(ctx, domain.CheckoutSummary{
		CorrelationID: correlationID,
		StudentName:   intent.StudentName,
		Email:         intent.Email,
		CourseNames:   req.Courses,
		AmountCents:   req.AmountCents,
	})
	if err != nil {
		log.Error().Err(err).Msg("checkout creation failed")
		return nil, err
	}

	if _, _, err := s.repo.Transition(ctx, correlationID,
		[]domain.Status{domain.StatusAwaitingPayment}, domain.StatusAwaitingPayment,
		func(i *domain.EnrollmentIntent) { i.CheckoutResourceID = checkout.ResourceID }); err != nil {
		log.Warn().Err(err).Msg("recording checkout resource id failed")
	}

	log.Info().Str("resource_id", checkout.ResourceID).Msg("intent stored, checkout created")
	s.notifyEvent(ctx, "Intenção de matrícula",
		fmt.Sprintf("%s (%s) aguardando pagamento, cursos: %s",
			intent.StudentName, correlationID, strings.Join(req.Courses, ", ")), true)

	return &ports.SubmitResult{
		CorrelationID: correlationID,
		RedirectURL:   checkout.RedirectURL,
	}, nil
}

func (s *EnrollmentAppService) validate(req ports.SubmitRequest) error {
	if strings.TrimSpace(req.StudentName) == "" {
		return apperror.Validation("student name is required")
	}
	if strings.TrimSpace(req.ContactNumber) == "" {
		return apperror.Validation("contact number is required")
	}
	// Resolve up front so an unresolvable name fails before any money moves.
	if req.DisciplineIDs == nil && len(req.Courses) > 0 {
		if _, err := s.catalog.ResolveMany(req.Courses); err != nil {
			return err
		}
	}
	return nil
}

// GetIntent returns the intent or NotFound.
func (s *EnrollmentAppService) GetIntent(ctx context.Context, correlationID string) (*domain.EnrollmentIntent, error) {
	intent, err := s.repo.Get(ctx, correlationID)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, apperror.ErrNotFound("enrollment intent")
	}
	return intent, nil
}

// ListIntents returns stored intents for the operator API.
func (s *EnrollmentAppService) ListIntents(ctx context.Context, filter domain.IntentFilter) ([]domain.EnrollmentIntent, error) {
	return s.repo.List(ctx, filter)
}

// RetryRegistration re-runs registration for an intent stuck in
// REGISTRATION_FAILED. The payment was already confirmed, so the intent is
// moved back through PAYMENT_CONFIRMED and the orchestrator runs again.
func (s *EnrollmentAppService) RetryRegistration(ctx context.Context, correlationID string) (*domain.EnrollmentIntent, error) {
	log := s.log.With().Str("correlation_id", correlationID).Logger()

	confirmed, applied, err := s.repo.Transition(ctx, correlationID,
		[]domain.Status{domain.StatusRegistrationFail}, domain.StatusPaymentConfirmed,
		func(i *domain.EnrollmentIntent) { i.FailureReason = "" })
	if err != nil {
		return nil, err
	}
	if confirmed == nil {
		return nil, apperror.ErrNotFound("enrollment intent")
	}
	if !applied {
		return nil, apperror.Validation(fmt.Sprintf("intent %s is %s, only REGISTRATION_FAILED can be retried", correlationID, confirmed.Status))
	}

	result, regErr := s.orchestrator.Register(ctx, confirmed)
	if regErr != nil {
		reason := regErr.Error()
		if result != nil && result.Partial {
			reason = fmt.Sprintf("partial: student %s created without disciplines: %v", result.StudentID, regErr)
		}
		failed, _, err := s.repo.Transition(ctx, correlationID,
			[]domain.Status{domain.StatusPaymentConfirmed}, domain.StatusRegistrationFail,
			func(i *domain.EnrollmentIntent) { i.FailureReason = reason })
		if err != nil {
			return nil, err
		}
		log.Error().Err(regErr).Msg("manual retry failed")
		s.metrics.RecordRegistration(registrationResultLabel(result))
		return failed, regErr
	}

	registered, _, err := s.repo.Transition(ctx, correlationID,
		[]domain.Status{domain.StatusPaymentConfirmed}, domain.StatusRegistered,
		func(i *domain.EnrollmentIntent) {
			i.AssignedStudentID = result.StudentID
			i.AssignedRegistrationCode = result.RegistrationCode
		})
	if err != nil {
		return nil, err
	}

	log.Info().Str("student_id", result.StudentID).Msg("manual retry succeeded")
	s.metrics.RecordRegistration("success")
	return registered, nil
}

func (s *EnrollmentAppService) notifyEvent(ctx context.Context, title, description string, success bool) {
	if err := s.notifier.LogEvent(ctx, title, description, success); err != nil {
		s.log.Warn().Err(err).Msg("operational event failed")
	}
}
