package service

import (
	"errors"
	"testing"

	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	return NewCatalogService(domain.DefaultCourseTable(), 0.8, zerolog.Nop())
}

func TestCatalog_Resolve_Exact(t *testing.T) {
	cat := newTestCatalog(t)

	ids, err := cat.Resolve("Excel PRO")
	require.NoError(t, err)
	assert.Equal(t, []int{161, 197, 201}, ids)
}

func TestCatalog_Resolve_CaseInsensitive(t *testing.T) {
	cat := newTestCatalog(t)

	ids, err := cat.Resolve("excel pro")
	require.NoError(t, err)
	assert.Equal(t, []int{161, 197, 201}, ids)
}

func TestCatalog_Resolve_Fuzzy(t *testing.T) {
	cat := newTestCatalog(t)

	// One typo, well above the 0.8 floor.
	ids, err := cat.Resolve("Excel PR0")
	require.NoError(t, err)
	assert.Equal(t, []int{161, 197, 201}, ids)
}

func TestCatalog_Resolve_BelowThreshold(t *testing.T) {
	cat := newTestCatalog(t)

	_, err := cat.Resolve("Culinária Japonesa")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VAL_002", appErr.Code)
}

func TestCatalog_Resolve_EmptyName(t *testing.T) {
	cat := newTestCatalog(t)

	_, err := cat.Resolve("  ")
	require.Error(t, err)
}

func TestCatalog_Resolve_TieBreaksLexically(t *testing.T) {
	cat := NewCatalogService(domain.CourseTable{
		"Curso B": {2},
		"Curso A": {1},
	}, 0.8, zerolog.Nop())

	// Equidistant from both names; the lexically smallest must win.
	ids, err := cat.Resolve("Curso C")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
}

func TestCatalog_ResolveMany_OrderedUnion(t *testing.T) {
	cat := newTestCatalog(t)

	// Pacote Office overlaps Excel PRO on 161/197/201; union keeps first
	// occurrence order without duplicates.
	ids, err := cat.ResolveMany([]string{"Excel PRO", "Pacote Office"})
	require.NoError(t, err)
	assert.Equal(t, []int{161, 197, 201, 160, 162}, ids)
}

func TestCatalog_ResolveMany_FailFast(t *testing.T) {
	cat := newTestCatalog(t)

	ids, err := cat.ResolveMany([]string{"Excel PRO", "Curso Inexistente XYZ"})
	require.Error(t, err)
	assert.Nil(t, ids)
}

func TestCatalog_Replace_Atomic(t *testing.T) {
	cat := newTestCatalog(t)

	cat.Replace(domain.CourseTable{"Novo Curso": {7, 8}})

	_, err := cat.Resolve("Excel PRO")
	assert.Error(t, err)

	ids, err := cat.Resolve("Novo Curso")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, ids)
	assert.Equal(t, []string{"Novo Curso"}, cat.Names())
}

func TestCatalog_NamesForDisciplines_ExactSetWins(t *testing.T) {
	cat := newTestCatalog(t)

	names := cat.NamesForDisciplines([]int{161, 197, 201})
	assert.Equal(t, []string{"Excel PRO"}, names)
}

func TestCatalog_NamesForDisciplines_ContainmentFallback(t *testing.T) {
	cat := newTestCatalog(t)

	names := cat.NamesForDisciplines([]int{266})
	assert.Equal(t, []string{"Inglês Kids"}, names)

	assert.Nil(t, cat.NamesForDisciplines(nil))
}

func TestCatalog_Table_ReturnsCopy(t *testing.T) {
	cat := newTestCatalog(t)

	table := cat.Table()
	table["Excel PRO"][0] = 999

	ids, err := cat.Resolve("Excel PRO")
	require.NoError(t, err)
	assert.Equal(t, []int{161, 197, 201}, ids)
}
