package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports/mocks"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAllocator(academic *mocks.MockAcademicClient, max int) *AllocatorService {
	return NewAllocatorService(academic, "20254158", 3, AttemptPolicy{MaxAttempts: max}, zerolog.Nop())
}

func TestAllocator_FirstCandidateFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	academic := mocks.NewMockAcademicClient(ctrl)
	alloc := newTestAllocator(academic, 100)

	academic.EXPECT().CountStudents(gomock.Any()).Return(41, nil)
	academic.EXPECT().FindStudentByCode(gomock.Any(), domain.RegistrationCode("20254158042")).Return("", nil)

	code, err := alloc.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationCode("20254158042"), code)
}

func TestAllocator_SkipsTakenCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	academic := mocks.NewMockAcademicClient(ctrl)
	alloc := newTestAllocator(academic, 100)

	academic.EXPECT().CountStudents(gomock.Any()).Return(9, nil)
	academic.EXPECT().FindStudentByCode(gomock.Any(), domain.RegistrationCode("20254158010")).Return("stu-10", nil)
	academic.EXPECT().FindStudentByCode(gomock.Any(), domain.RegistrationCode("20254158011")).Return("stu-11", nil)
	academic.EXPECT().FindStudentByCode(gomock.Any(), domain.RegistrationCode("20254158012")).Return("", nil)

	code, err := alloc.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationCode("20254158012"), code)
}

func TestAllocator_CountFallbackToPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	academic := mocks.NewMockAcademicClient(ctrl)
	alloc := newTestAllocator(academic, 100)

	academic.EXPECT().CountStudents(gomock.Any()).Return(0, errors.New("count endpoint down"))
	academic.EXPECT().CountStudentsByCodePrefix(gomock.Any(), "20254158").Return(7, nil)
	academic.EXPECT().FindStudentByCode(gomock.Any(), domain.RegistrationCode("20254158008")).Return("", nil)

	code, err := alloc.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationCode("20254158008"), code)
}

func TestAllocator_BothCountSourcesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	academic := mocks.NewMockAcademicClient(ctrl)
	alloc := newTestAllocator(academic, 100)

	academic.EXPECT().CountStudents(gomock.Any()).Return(0, errors.New("down"))
	academic.EXPECT().CountStudentsByCodePrefix(gomock.Any(), "20254158").Return(0, errors.New("also down"))

	_, err := alloc.Allocate(context.Background())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "EXT_001", appErr.Code)
}

func TestAllocator_Exhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	academic := mocks.NewMockAcademicClient(ctrl)
	alloc := newTestAllocator(academic, 5)

	academic.EXPECT().CountStudents(gomock.Any()).Return(0, nil)
	academic.EXPECT().FindStudentByCode(gomock.Any(), gomock.Any()).Return("taken", nil).Times(5)

	_, err := alloc.Allocate(context.Background())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ENR_001", appErr.Code)
}

func TestAllocator_VerifyErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	academic := mocks.NewMockAcademicClient(ctrl)
	alloc := newTestAllocator(academic, 100)

	academic.EXPECT().CountStudents(gomock.Any()).Return(3, nil)
	academic.EXPECT().FindStudentByCode(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

	_, err := alloc.Allocate(context.Background())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "EXT_001", appErr.Code)
}

// Concurrent callers must never receive the same code: the count+verify
// sequence is serialized, so each caller sees the effect of earlier
// allocations through the stub's state.
func TestAllocator_ConcurrentUniqueness(t *testing.T) {
	ctrl := gomock.NewController(t)
	academic := mocks.NewMockAcademicClient(ctrl)
	alloc := newTestAllocator(academic, 100)

	var stubMu sync.Mutex
	assigned := make(map[domain.RegistrationCode]bool)

	academic.EXPECT().CountStudents(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		stubMu.Lock()
		defer stubMu.Unlock()
		return len(assigned), nil
	}).AnyTimes()
	academic.EXPECT().FindStudentByCode(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, code domain.RegistrationCode) (string, error) {
		stubMu.Lock()
		defer stubMu.Unlock()
		if assigned[code] {
			return "someone", nil
		}
		// Simulates the external system recording the student right after
		// allocation, as the orchestrator does.
		assigned[code] = true
		return "", nil
	}).AnyTimes()

	const n = 20
	results := make(chan domain.RegistrationCode, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := alloc.Allocate(context.Background())
			require.NoError(t, err)
			results <- code
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[domain.RegistrationCode]bool)
	for code := range results {
		assert.False(t, seen[code], "code %s allocated twice", code)
		seen[code] = true
	}
	assert.Len(t, seen, n)
}
