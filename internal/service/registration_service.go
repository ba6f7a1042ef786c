package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/rs/zerolog"
)

// RegistrationService runs the post-payment registration sequence against
// the academic system. Steps are distinct failure domains; there is no
// rollback across them. A step-4 enrollment failure after the student record
// exists is reported as a partial result, never as a clean success or
// failure.
type RegistrationService struct {
	catalog   ports.CourseCatalog
	allocator ports.CodeAllocator
	academic  ports.AcademicClient
	notifier  ports.Notifier
	password  string
	policy    AttemptPolicy
	log       zerolog.Logger
}

// NewRegistrationService creates the orchestrator. password is the initial
// portal password handed to new students.
func NewRegistrationService(
	catalog ports.CourseCatalog,
	allocator ports.CodeAllocator,
	academic ports.AcademicClient,
	notifier ports.Notifier,
	password string,
	policy AttemptPolicy,
	log zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		catalog:   catalog,
		allocator: allocator,
		academic:  academic,
		notifier:  notifier,
		password:  password,
		policy:    policy,
		log:       log.With().Str("component", "registration_service").Logger(),
	}
}

// Register creates the student in the academic system and enrolls them in
// the resolved disciplines.
func (s *RegistrationService) Register(ctx context.Context, intent *domain.EnrollmentIntent) (*domain.RegistrationResult, error) {
	log := s.log.With().Str("correlation_id", intent.CorrelationID).Logger()

	disciplines, err := s.resolveDisciplines(intent)
	if err != nil {
		log.Error().Err(err).Msg("course resolution failed")
		return nil, err
	}

	// The external calls must not be aborted mid-sequence by a transport
	// disconnect; a cancellation between student creation and enrollment
	// would manufacture partial registrations.
	ctx = context.WithoutCancel(ctx)

	studentID, code, err := s.createStudent(ctx, intent)
	if err != nil {
		log.Error().Err(err).Msg("student creation failed")
		return nil, err
	}

	result := &domain.RegistrationResult{
		StudentID:           studentID,
		RegistrationCode:    code,
		EnrolledDisciplines: disciplines,
	}

	if len(disciplines) > 0 {
		if err := s.academic.EnrollStudent(ctx, studentID, disciplines); err != nil {
			log.Error().Err(err).
				Str("student_id", studentID).
				Ints("disciplines", disciplines).
				Msg("discipline enrollment failed after student creation")
			result.Partial = true
			result.EnrolledDisciplines = nil
			s.notifyEvent(ctx, "Matrícula parcial",
				fmt.Sprintf("Aluno %s (%s) criado mas sem disciplinas: %v", intent.StudentName, code, err), false)
			return result, apperror.ErrPartialRegistration(studentID, err)
		}
	}

	log.Info().
		Str("student_id", studentID).
		Str("code", string(code)).
		Ints("disciplines", disciplines).
		Msg("registration complete")

	s.notifyWelcome(ctx, intent, code)
	courses := s.catalog.NamesForDisciplines(disciplines)
	s.notifyEvent(ctx, "Matrícula concluída",
		fmt.Sprintf("Aluno %s, login %s, cursos: %s", intent.StudentName, code, strings.Join(courses, ", ")), true)

	return result, nil
}

// resolveDisciplines applies the precedence rule: explicit discipline ids
// win; otherwise course names are resolved fail-fast. An explicitly empty
// course list proceeds with zero disciplines.
func (s *RegistrationService) resolveDisciplines(intent *domain.EnrollmentIntent) ([]int, error) {
	if intent.DisciplineIDs != nil {
		return intent.DisciplineIDs, nil
	}
	if len(intent.RequestedCourses) == 0 {
		return nil, nil
	}
	return s.catalog.ResolveMany(intent.RequestedCourses)
}

// createStudent allocates a code and submits the record, retrying the whole
// allocate+create pair when the academic system reports the code already in
// use (a race against registrations made outside this process).
func (s *RegistrationService) createStudent(ctx context.Context, intent *domain.EnrollmentIntent) (string, domain.RegistrationCode, error) {
	for attempt := 0; attempt < s.policy.MaxAttempts; attempt++ {
		code, err := s.allocator.Allocate(ctx)
		if err != nil {
			return "", "", err
		}

		studentID, err := s.academic.CreateStudent(ctx, domain.StudentProfile{
			Name:             intent.StudentName,
			Email:            intent.Email,
			ContactNumber:    intent.ContactNumber,
			RegistrationCode: code,
			Password:         s.password,
		})
		if err == nil {
			return studentID, code, nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "EXT_003" {
			s.log.Warn().
				Str("correlation_id", intent.CorrelationID).
				Str("code", string(code)).
				Int("attempt", attempt+1).
				Msg("code taken at creation, reallocating")
			continue
		}
		return "", "", err
	}
	return "", "", apperror.ErrAllocationExhausted(s.policy.MaxAttempts)
}

func (s *RegistrationService) notifyWelcome(ctx context.Context, intent *domain.EnrollmentIntent, code domain.RegistrationCode) {
	if err := s.notifier.SendWelcome(ctx, intent.ContactNumber, intent.StudentName, code, s.password); err != nil {
		s.log.Warn().Err(err).
			Str("correlation_id", intent.CorrelationID).
			Msg("welcome message failed")
	}
}

func (s *RegistrationService) notifyEvent(ctx context.Context, title, description string, success bool) {
	if err := s.notifier.LogEvent(ctx, title, description, success); err != nil {
		s.log.Warn().Err(err).Msg("operational event failed")
	}
}
