package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cedbrasil/enrolld/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const intentColumns = `correlation_id, student_name, contact_number, email,
	requested_courses, discipline_ids, status, checkout_resource_id,
	assigned_student_id, assigned_registration_code, failure_reason,
	created_at, last_updated_at`

// EnrollmentRepo implements ports.EnrollmentRepository on PostgreSQL.
//
// Transition runs inside a transaction with a SELECT ... FOR UPDATE row lock,
// so two concurrent webhook deliveries cannot both observe the pre-transition
// status and both proceed.
type EnrollmentRepo struct {
	pool Pool
}

// NewEnrollmentRepo creates a new EnrollmentRepo.
func NewEnrollmentRepo(pool Pool) *EnrollmentRepo {
	return &EnrollmentRepo{pool: pool}
}

// Create stores the intent with status AWAITING_PAYMENT.
func (r *EnrollmentRepo) Create(ctx context.Context, intent *domain.EnrollmentIntent) (string, error) {
	if intent.CorrelationID == "" {
		intent.CorrelationID = uuid.New().String()
	}
	now := time.Now().UTC()
	intent.Status = domain.StatusAwaitingPayment
	intent.CreatedAt = now
	intent.LastUpdatedAt = now

	query := `INSERT INTO enrollment_intents (` + intentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		intent.CorrelationID, intent.StudentName, intent.ContactNumber, intent.Email,
		intent.RequestedCourses, disciplineIDsParam(intent.DisciplineIDs), intent.Status,
		intent.CheckoutResourceID, intent.AssignedStudentID,
		string(intent.AssignedRegistrationCode), intent.FailureReason,
		intent.CreatedAt, intent.LastUpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert enrollment intent: %w", err)
	}
	return intent.CorrelationID, nil
}

// Get fetches an intent by correlation id, nil when absent.
func (r *EnrollmentRepo) Get(ctx context.Context, correlationID string) (*domain.EnrollmentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM enrollment_intents WHERE correlation_id = $1`
	intent, err := scanIntent(r.pool.QueryRow(ctx, query, correlationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enrollment intent: %w", err)
	}
	return intent, nil
}

// Transition applies the compare-and-set update. The mutation only happens
// when the current status is one of from; otherwise the current intent is
// returned unchanged with applied=false.
func (r *EnrollmentRepo) Transition(ctx context.Context, correlationID string, from []domain.Status, to domain.Status, mutate func(*domain.EnrollmentIntent)) (*domain.EnrollmentIntent, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin transition: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `SELECT ` + intentColumns + ` FROM enrollment_intents WHERE correlation_id = $1 FOR UPDATE`
	intent, err := scanIntent(tx.QueryRow(ctx, query, correlationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lock enrollment intent: %w", err)
	}

	if !statusIn(intent.Status, from) {
		return intent, false, nil
	}

	intent.Status = to
	if mutate != nil {
		mutate(intent)
	}
	intent.LastUpdatedAt = time.Now().UTC()

	update := `UPDATE enrollment_intents SET
		status = $2, checkout_resource_id = $3, assigned_student_id = $4,
		assigned_registration_code = $5, failure_reason = $6, last_updated_at = $7
		WHERE correlation_id = $1`
	if _, err := tx.Exec(ctx, update,
		intent.CorrelationID, intent.Status, intent.CheckoutResourceID,
		intent.AssignedStudentID, string(intent.AssignedRegistrationCode),
		intent.FailureReason, intent.LastUpdatedAt,
	); err != nil {
		return nil, false, fmt.Errorf("update enrollment intent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit transition: %w", err)
	}
	return intent, true, nil
}

// FindByEmail returns the most recent non-terminal intent for the email.
func (r *EnrollmentRepo) FindByEmail(ctx context.Context, email string) (*domain.EnrollmentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM enrollment_intents
		WHERE email = $1 AND status = ANY($2)
		ORDER BY created_at DESC LIMIT 1`
	intent, err := scanIntent(r.pool.QueryRow(ctx, query, email, openStatusStrings()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find enrollment intent by email: %w", err)
	}
	return intent, nil
}

// List returns intents for the operator API, newest first.
func (r *EnrollmentRepo) List(ctx context.Context, filter domain.IntentFilter) ([]domain.EnrollmentIntent, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var rows pgx.Rows
	var err error
	if filter.Status != "" {
		query := `SELECT ` + intentColumns + ` FROM enrollment_intents
			WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
		rows, err = r.pool.Query(ctx, query, filter.Status, limit)
	} else {
		query := `SELECT ` + intentColumns + ` FROM enrollment_intents
			ORDER BY created_at DESC LIMIT $1`
		rows, err = r.pool.Query(ctx, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list enrollment intents: %w", err)
	}
	defer rows.Close()

	var out []domain.EnrollmentIntent
	for rows.Next() {
		intent, err := scanIntent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enrollment intent: %w", err)
		}
		out = append(out, *intent)
	}
	return out, rows.Err()
}

// scanIntent reads one intent row.
func scanIntent(row pgx.Row) (*domain.EnrollmentIntent, error) {
	var intent domain.EnrollmentIntent
	var disciplineIDs *[]int32
	var code string
	if err := row.Scan(
		&intent.CorrelationID, &intent.StudentName, &intent.ContactNumber, &intent.Email,
		&intent.RequestedCourses, &disciplineIDs, &intent.Status, &intent.CheckoutResourceID,
		&intent.AssignedStudentID, &code, &intent.FailureReason,
		&intent.CreatedAt, &intent.LastUpdatedAt,
	); err != nil {
		return nil, err
	}
	intent.AssignedRegistrationCode = domain.RegistrationCode(code)
	if disciplineIDs != nil {
		ids := make([]int, len(*disciplineIDs))
		for i, id := range *disciplineIDs {
			ids[i] = int(id)
		}
		intent.DisciplineIDs = ids
	}
	return &intent, nil
}

// disciplineIDsParam keeps NULL distinct from an explicit empty list; the
// distinction drives the resolution precedence rule.
func disciplineIDsParam(ids []int) *[]int32 {
	if ids == nil {
		return nil
	}
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return &out
}

func statusIn(status domain.Status, set []domain.Status) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func openStatusStrings() []string {
	return []string{
		string(domain.StatusAwaitingPayment),
		string(domain.StatusPaymentPending),
		string(domain.StatusPaymentPaused),
		string(domain.StatusPaymentConfirmed),
	}
}
