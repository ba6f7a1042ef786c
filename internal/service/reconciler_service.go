package service

import (
	"context"
	"fmt"

	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports"

	"github.com/rs/zerolog"
)

// openStatuses are the states an inbound payment event may still move.
var openStatuses = []domain.Status{
	domain.StatusAwaitingPayment,
	domain.StatusPaymentPending,
	domain.StatusPaymentPaused,
}

// ReconcilerService folds inbound payment events into enrollment intents.
//
// Duplicate deliveries are filtered twice: a redis claim as the fast path
// and the repository compare-and-set as the authoritative gate. The claim is
// released when processing fails so a redelivery can retry. The status
// carried by the raw webhook payload is never trusted; the resource is
// re-fetched from the processor every time.
type ReconcilerService struct {
	repo         ports.EnrollmentRepository
	dedup        ports.EventDedupStore
	processor    ports.PaymentProcessor
	orchestrator ports.RegistrationOrchestrator
	notifier     ports.Notifier
	metrics      *MetricsService
	log          zerolog.Logger
}

// NewReconcilerService creates the reconciler.
func NewReconcilerService(
	repo ports.EnrollmentRepository,
	dedup ports.EventDedupStore,
	processor ports.PaymentProcessor,
	orchestrator ports.RegistrationOrchestrator,
	notifier ports.Notifier,
	metrics *MetricsService,
	log zerolog.Logger,
) *ReconcilerService {
	return &ReconcilerService{
		repo:         repo,
		dedup:        dedup,
		processor:    processor,
		orchestrator: orchestrator,
		notifier:     notifier,
		metrics:      metrics,
		log:          log.With().Str("component", "reconciler_service").Logger(),
	}
}

// Handle processes one webhook event. The transport layer acknowledges the
// delivery regardless of the returned error; the error is for logging and
// claim release only.
func (s *ReconcilerService) Handle(ctx context.Context, event domain.WebhookEvent) error {
	log := s.log.With().
		Str("topic", string(event.Topic)).
		Str("resource_id", event.ResourceID).
		Logger()

	claimed, err := s.dedup.Claim(ctx, event.ResourceID)
	if err != nil {
		// The dedup store is an optimization; the repository CAS still
		// guards correctness when it is down.
		log.Warn().Err(err).Msg("dedup claim failed, proceeding without fast path")
		claimed = true
	} else if !claimed {
		log.Info().Msg("duplicate delivery, already claimed")
		s.metrics.RecordWebhookEvent("duplicate")
		return nil
	}

	if err := s.process(ctx, event, log); err != nil {
		if relErr := s.dedup.Release(ctx, event.ResourceID); relErr != nil {
			log.Warn().Err(relErr).Msg("dedup release failed")
		}
		return err
	}
	return nil
}

func (s *ReconcilerService) process(ctx context.Context, event domain.WebhookEvent, log zerolog.Logger) error {
	resource, err := s.processor.GetResource(ctx, event.Topic, event.ResourceID)
	if err != nil {
		log.Error().Err(err).Msg("resource lookup failed")
		s.metrics.RecordWebhookEvent("lookup_failed")
		return err
	}

	log = log.With().
		Str("payment_status", string(resource.Status)).
		Str("correlation_id", resource.CorrelationID).
		Logger()

	intent, err := s.locateIntent(ctx, resource)
	if err != nil {
		return err
	}
	if intent == nil {
		// Unknown correlation: acknowledged, but flagged for operators.
		log.Warn().Str("payer_email", resource.PayerEmail).Msg("no intent matches event")
		s.metrics.RecordWebhookEvent("unknown_intent")
		s.notifyEvent(ctx, "Evento sem matrícula",
			fmt.Sprintf("Recurso %s (%s) sem intenção correspondente", resource.ResourceID, resource.Status), false)
		return nil
	}

	switch {
	case resource.Status.IsApproval():
		return s.handleApproval(ctx, intent, log)
	case resource.Status == domain.PaymentPending:
		return s.handleHold(ctx, intent, domain.StatusPaymentPending, log)
	case resource.Status == domain.PaymentPaused:
		return s.handleHold(ctx, intent, domain.StatusPaymentPaused, log)
	case resource.Status == domain.PaymentCancelled:
		return s.handleTerminal(ctx, intent, domain.StatusPaymentCancelled, log)
	case resource.Status == domain.PaymentRejected:
		return s.handleTerminal(ctx, intent, domain.StatusPaymentRejected, log)
	default:
		log.Warn().Msg("unrecognized payment status, ignoring")
		s.metrics.RecordWebhookEvent("unrecognized_status")
		return nil
	}
}

// locateIntent finds the intent by correlation id first, then by payer email.
func (s *ReconcilerService) locateIntent(ctx context.Context, resource *domain.PaymentResource) (*domain.EnrollmentIntent, error) {
	if resource.CorrelationID != "" {
		intent, err := s.repo.Get(ctx, resource.CorrelationID)
		if err != nil {
			return nil, err
		}
		if intent != nil {
			return intent, nil
		}
	}
	if resource.PayerEmail != "" {
		return s.repo.FindByEmail(ctx, resource.PayerEmail)
	}
	return nil, nil
}

// handleApproval gates registration behind the AWAITING_PAYMENT →
// PAYMENT_CONFIRMED compare-and-set: only the delivery that wins the
// transition runs the orchestrator.
func (s *ReconcilerService) handleApproval(ctx context.Context, intent *domain.EnrollmentIntent, log zerolog.Logger) error {
	confirmed, applied, err := s.repo.Transition(ctx, intent.CorrelationID, openStatuses, domain.StatusPaymentConfirmed, nil)
	if err != nil {
		return err
	}
	if !applied {
		log.Info().Str("status", string(confirmed.Status)).Msg("payment already processed, no-op")
		s.metrics.RecordWebhookEvent("noop")
		return nil
	}

	log.Info().Msg("payment confirmed, registering")
	result, regErr := s.orchestrator.Register(ctx, confirmed)

	if regErr != nil {
		reason := regErr.Error()
		if result != nil && result.Partial {
			reason = fmt.Sprintf("partial: student %s created without disciplines: %v", result.StudentID, regErr)
		}
		if _, _, err := s.repo.Transition(ctx, intent.CorrelationID,
			[]domain.Status{domain.StatusPaymentConfirmed}, domain.StatusRegistrationFail,
			func(i *domain.EnrollmentIntent) { i.FailureReason = reason }); err != nil {
			return err
		}
		log.Error().Err(regErr).Msg("registration failed, intent retained for recovery")
		s.metrics.RecordWebhookEvent("registration_failed")
		s.metrics.RecordRegistration(registrationResultLabel(result))
		s.notifyEvent(ctx, "Falha na matrícula",
			fmt.Sprintf("Matrícula %s falhou: %s", intent.CorrelationID, reason), false)
		return nil
	}

	if _, _, err := s.repo.Transition(ctx, intent.CorrelationID,
		[]domain.Status{domain.StatusPaymentConfirmed}, domain.StatusRegistered,
		func(i *domain.EnrollmentIntent) {
			i.AssignedStudentID = result.StudentID
			i.AssignedRegistrationCode = result.RegistrationCode
		}); err != nil {
		return err
	}

	log.Info().Str("student_id", result.StudentID).Msg("intent registered")
	s.metrics.RecordWebhookEvent("registered")
	s.metrics.RecordRegistration("success")
	return nil
}

// handleHold moves the intent into a reversible processor-side hold state.
func (s *ReconcilerService) handleHold(ctx context.Context, intent *domain.EnrollmentIntent, to domain.Status, log zerolog.Logger) error {
	from := make([]domain.Status, 0, len(openStatuses))
	for _, st := range openStatuses {
		if st != to {
			from = append(from, st)
		}
	}
	_, applied, err := s.repo.Transition(ctx, intent.CorrelationID, from, to, nil)
	if err != nil {
		return err
	}
	if !applied {
		s.metrics.RecordWebhookEvent("noop")
		return nil
	}
	log.Info().Str("to", string(to)).Msg("intent on hold")
	s.metrics.RecordWebhookEvent("hold")
	return nil
}

// handleTerminal closes the intent. Terminal states already reached are
// never overwritten, so a late cancelled event cannot revert REGISTERED.
func (s *ReconcilerService) handleTerminal(ctx context.Context, intent *domain.EnrollmentIntent, to domain.Status, log zerolog.Logger) error {
	_, applied, err := s.repo.Transition(ctx, intent.CorrelationID, openStatuses, to, nil)
	if err != nil {
		return err
	}
	if !applied {
		log.Info().Str("to", string(to)).Msg("terminal status already set, no-op")
		s.metrics.RecordWebhookEvent("noop")
		return nil
	}
	log.Info().Str("to", string(to)).Msg("intent closed")
	s.metrics.RecordWebhookEvent("closed")
	s.notifyEvent(ctx, "Pagamento encerrado",
		fmt.Sprintf("Matrícula %s encerrada com status %s", intent.CorrelationID, to), false)
	return nil
}

func (s *ReconcilerService) notifyEvent(ctx context.Context, title, description string, success bool) {
	if err := s.notifier.LogEvent(ctx, title, description, success); err != nil {
		s.log.Warn().Err(err).Msg("operational event failed")
	}
}

func registrationResultLabel(result *domain.RegistrationResult) string {
	if result != nil && result.Partial {
		return "partial"
	}
	return "failed"
}
