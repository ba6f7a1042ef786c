package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports/mocks"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerFixture struct {
	repo         *mocks.MockEnrollmentRepository
	dedup        *mocks.MockEventDedupStore
	processor    *mocks.MockPaymentProcessor
	orchestrator *mocks.MockRegistrationOrchestrator
	notifier     *mocks.MockNotifier
	svc          *ReconcilerService
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	ctrl := gomock.NewController(t)
	f := &reconcilerFixture{
		repo:         mocks.NewMockEnrollmentRepository(ctrl),
		dedup:        mocks.NewMockEventDedupStore(ctrl),
		processor:    mocks.NewMockPaymentProcessor(ctrl),
		orchestrator: mocks.NewMockRegistrationOrchestrator(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
	}
	f.svc = NewReconcilerService(
		f.repo, f.dedup, f.processor, f.orchestrator, f.notifier,
		NewMetricsService(), zerolog.Nop(),
	)
	return f
}

func awaitingIntent() *domain.EnrollmentIntent {
	return &domain.EnrollmentIntent{
		CorrelationID: "c-1",
		StudentName:   "Ana",
		ContactNumber: "6199990000",
		Status:        domain.StatusAwaitingPayment,
	}
}

func authorizedEvent() domain.WebhookEvent {
	return domain.WebhookEvent{Topic: domain.TopicPreapproval, ResourceID: "r-1"}
}

func TestHandle_ApprovalRegistersExactlyOnce(t *testing.T) {
	f := newReconcilerFixture(t)
	intent := awaitingIntent()
	confirmed := *intent
	confirmed.Status = domain.StatusPaymentConfirmed

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), domain.TopicPreapproval, "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentAuthorized, CorrelationID: "c-1",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(intent, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1", openStatuses, domain.StatusPaymentConfirmed, gomock.Any()).
		Return(&confirmed, true, nil)
	f.orchestrator.EXPECT().Register(gomock.Any(), &confirmed).Return(&domain.RegistrationResult{
		StudentID: "stu-1", RegistrationCode: "20254158001",
	}, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1",
		[]domain.Status{domain.StatusPaymentConfirmed}, domain.StatusRegistered, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []domain.Status, _ domain.Status, mutate func(*domain.EnrollmentIntent)) (*domain.EnrollmentIntent, bool, error) {
			final := confirmed
			mutate(&final)
			assert.Equal(t, "stu-1", final.AssignedStudentID)
			assert.Equal(t, domain.RegistrationCode("20254158001"), final.AssignedRegistrationCode)
			return &final, true, nil
		})

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_DuplicateClaimShortCircuits(t *testing.T) {
	f := newReconcilerFixture(t)

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(false, nil)
	// No processor lookup, no repo access.

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_DedupFailureFallsBackToStoreCAS(t *testing.T) {
	f := newReconcilerFixture(t)
	intent := awaitingIntent()
	registered := *intent
	registered.Status = domain.StatusRegistered

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(false, errors.New("redis down"))
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentAuthorized, CorrelationID: "c-1",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(&registered, nil)
	// Already registered: CAS refuses, nothing else runs.
	f.repo.EXPECT().Transition(gomock.Any(), "c-1", openStatuses, domain.StatusPaymentConfirmed, gomock.Any()).
		Return(&registered, false, nil)

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_LookupFailureReleasesClaim(t *testing.T) {
	f := newReconcilerFixture(t)

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").
		Return(nil, apperror.ErrExternalUnavailable("payment processor", errors.New("timeout")))
	f.dedup.EXPECT().Release(gomock.Any(), "r-1").Return(nil)

	err := f.svc.Handle(context.Background(), authorizedEvent())
	require.Error(t, err)
}

func TestHandle_UnknownIntentAckedAndFlagged(t *testing.T) {
	f := newReconcilerFixture(t)

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentCancelled, CorrelationID: "c-unknown",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-unknown").Return(nil, nil)
	f.notifier.EXPECT().LogEvent(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil)

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_EmailFallbackCorrelation(t *testing.T) {
	f := newReconcilerFixture(t)
	intent := awaitingIntent()
	intent.Email = "ana@example.com"
	confirmed := *intent
	confirmed.Status = domain.StatusPaymentConfirmed

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentApproved, PayerEmail: "ana@example.com",
	}, nil)
	f.repo.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(intent, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1", openStatuses, domain.StatusPaymentConfirmed, gomock.Any()).
		Return(&confirmed, true, nil)
	f.orchestrator.EXPECT().Register(gomock.Any(), &confirmed).Return(&domain.RegistrationResult{StudentID: "stu-9", RegistrationCode: "20254158009"}, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1",
		[]domain.Status{domain.StatusPaymentConfirmed}, domain.StatusRegistered, gomock.Any()).
		Return(&confirmed, true, nil)

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_RegistrationFailureRetainsIntent(t *testing.T) {
	f := newReconcilerFixture(t)
	intent := awaitingIntent()
	confirmed := *intent
	confirmed.Status = domain.StatusPaymentConfirmed

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentAuthorized, CorrelationID: "c-1",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(intent, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1", openStatuses, domain.StatusPaymentConfirmed, gomock.Any()).
		Return(&confirmed, true, nil)
	f.orchestrator.EXPECT().Register(gomock.Any(), &confirmed).
		Return(nil, apperror.ErrAllocationExhausted(100))
	f.repo.EXPECT().Transition(gomock.Any(), "c-1",
		[]domain.Status{domain.StatusPaymentConfirmed}, domain.StatusRegistrationFail, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []domain.Status, _ domain.Status, mutate func(*domain.EnrollmentIntent)) (*domain.EnrollmentIntent, bool, error) {
			failed := confirmed
			mutate(&failed)
			assert.Contains(t, failed.FailureReason, "ENR_001")
			return &failed, true, nil
		})
	f.notifier.EXPECT().LogEvent(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil)

	// Acked despite the failure: the intent is retained for manual recovery.
	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_PartialFailureReasonRecordsStudent(t *testing.T) {
	f := newReconcilerFixture(t)
	intent := awaitingIntent()
	confirmed := *intent
	confirmed.Status = domain.StatusPaymentConfirmed

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentAuthorized, CorrelationID: "c-1",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(intent, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1", openStatuses, domain.StatusPaymentConfirmed, gomock.Any()).
		Return(&confirmed, true, nil)
	f.orchestrator.EXPECT().Register(gomock.Any(), &confirmed).Return(
		&domain.RegistrationResult{StudentID: "stu-7", RegistrationCode: "20254158007", Partial: true},
		apperror.ErrPartialRegistration("stu-7", errors.New("enroll 500")),
	)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1",
		[]domain.Status{domain.StatusPaymentConfirmed}, domain.StatusRegistrationFail, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []domain.Status, _ domain.Status, mutate func(*domain.EnrollmentIntent)) (*domain.EnrollmentIntent, bool, error) {
			failed := confirmed
			mutate(&failed)
			assert.Contains(t, failed.FailureReason, "partial")
			assert.Contains(t, failed.FailureReason, "stu-7")
			return &failed, true, nil
		})
	f.notifier.EXPECT().LogEvent(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil)

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_CancelledAfterRegisteredIsNoop(t *testing.T) {
	f := newReconcilerFixture(t)
	registered := awaitingIntent()
	registered.Status = domain.StatusRegistered
	registered.AssignedStudentID = "stu-1"

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentCancelled, CorrelationID: "c-1",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(registered, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1", openStatuses, domain.StatusPaymentCancelled, gomock.Any()).
		Return(registered, false, nil)
	// No notifier call for a no-op.

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_CancelledClosesOpenIntent(t *testing.T) {
	f := newReconcilerFixture(t)
	intent := awaitingIntent()
	cancelled := *intent
	cancelled.Status = domain.StatusPaymentCancelled

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentCancelled, CorrelationID: "c-1",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(intent, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1", openStatuses, domain.StatusPaymentCancelled, gomock.Any()).
		Return(&cancelled, true, nil)
	f.notifier.EXPECT().LogEvent(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil)

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_PendingMovesToHold(t *testing.T) {
	f := newReconcilerFixture(t)
	intent := awaitingIntent()
	pending := *intent
	pending.Status = domain.StatusPaymentPending

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentPending, CorrelationID: "c-1",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(intent, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1",
		[]domain.Status{domain.StatusAwaitingPayment, domain.StatusPaymentPaused},
		domain.StatusPaymentPending, gomock.Any()).
		Return(&pending, true, nil)

	require.NoError(t, f.svc.Handle(context.Background(), authorizedEvent()))
}

func TestHandle_RegisteredTransitionErrorReleasesClaim(t *testing.T) {
	f := newReconcilerFixture(t)
	intent := awaitingIntent()

	f.dedup.EXPECT().Claim(gomock.Any(), "r-1").Return(true, nil)
	f.processor.EXPECT().GetResource(gomock.Any(), gomock.Any(), "r-1").Return(&domain.PaymentResource{
		ResourceID: "r-1", Status: domain.PaymentAuthorized, CorrelationID: "c-1",
	}, nil)
	f.repo.EXPECT().Get(gomock.Any(), "c-1").Return(intent, nil)
	f.repo.EXPECT().Transition(gomock.Any(), "c-1", openStatuses, domain.StatusPaymentConfirmed, gomock.Any()).
		Return(nil, false, errors.New("db down"))
	f.dedup.EXPECT().Release(gomock.Any(), "r-1").Return(nil)

	require.Error(t, f.svc.Handle(context.Background(), authorizedEvent()))
}
