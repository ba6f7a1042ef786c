package service

import (
	"sort"
	"strings"
	"sync"

	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"
)

// CatalogService resolves course names against an in-memory table.
// Lookups are pure; Replace swaps the whole table atomically so readers
// never see a partial update.
type CatalogService struct {
	mu        sync.RWMutex
	table     domain.CourseTable
	names     []string // sorted, for deterministic fuzzy tie-breaking
	threshold float64
	log       zerolog.Logger
}

// NewCatalogService creates a catalog over the given table.
// threshold is the minimum similarity (0..1) a fuzzy match must reach.
func NewCatalogService(table domain.CourseTable, threshold float64, log zerolog.Logger) *CatalogService {
	s := &CatalogService{
		threshold: threshold,
		log:       log.With().Str("component", "catalog_service").Logger(),
	}
	s.Replace(table)
	return s
}

// Replace swaps the whole course table.
func (s *CatalogService) Replace(table domain.CourseTable) {
	names := make([]string, 0, len(table))
	copied := make(domain.CourseTable, len(table))
	for name, ids := range table {
		names = append(names, name)
		copied[name] = append([]int(nil), ids...)
	}
	sort.Strings(names)

	s.mu.Lock()
	s.table = copied
	s.names = names
	s.mu.Unlock()
}

// Resolve maps a course name to its discipline ids. Exact match is
// case-insensitive; failing that, the best fuzzy candidate at or above the
// similarity threshold wins. Equal top scores resolve to the lexically
// smallest name.
func (s *CatalogService) Resolve(name string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := strings.ToLower(strings.TrimSpace(name))
	if wanted == "" {
		return nil, apperror.Validation("course name must not be empty")
	}

	for _, candidate := range s.names {
		if strings.ToLower(candidate) == wanted {
			return append([]int(nil), s.table[candidate]...), nil
		}
	}

	bestName := ""
	bestScore := 0.0
	for _, candidate := range s.names {
		score := similarity(wanted, strings.ToLower(candidate))
		if score > bestScore {
			bestScore = score
			bestName = candidate
		}
	}

	if bestName == "" || bestScore < s.threshold {
		return nil, apperror.ErrCourseNotFound(name)
	}

	s.log.Debug().
		Str("requested", name).
		Str("matched", bestName).
		Float64("score", bestScore).
		Msg("fuzzy course match")
	return append([]int(nil), s.table[bestName]...), nil
}

// ResolveMany returns the ordered union of Resolve over names. Any
// unresolved name fails the whole batch, no partial assignment.
func (s *CatalogService) ResolveMany(names []string) ([]int, error) {
	var out []int
	seen := make(map[int]bool)
	for _, name := range names {
		ids, err := s.Resolve(name)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out, nil
}

// Names returns the known course names in sorted order.
func (s *CatalogService) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.names...)
}

// Table returns a copy of the current course table.
func (s *CatalogService) Table() domain.CourseTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.CourseTable, len(s.table))
	for name, ids := range s.table {
		out[name] = append([]int(nil), ids...)
	}
	return out
}

// NamesForDisciplines is the reverse lookup: course names matching the given
// discipline ids. A course whose id set equals the input exactly wins;
// otherwise every course containing any of the ids is listed.
func (s *CatalogService) NamesForDisciplines(ids []int) []string {
	if len(ids) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idSet := make(map[int]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	var exact []string
	for _, name := range s.names {
		if sameIDSet(s.table[name], idSet) {
			exact = append(exact, name)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	var out []string
	seen := make(map[string]bool)
	for _, id := range ids {
		for _, name := range s.names {
			if seen[name] {
				continue
			}
			for _, cid := range s.table[name] {
				if cid == id {
					seen[name] = true
					out = append(out, name)
					break
				}
			}
		}
	}
	return out
}

func sameIDSet(ids []int, want map[int]bool) bool {
	if len(ids) == 0 {
		return false
	}
	have := make(map[int]bool, len(ids))
	for _, id := range ids {
		have[id] = true
	}
	if len(have) != len(want) {
		return false
	}
	for id := range want {
		if !have[id] {
			return false
		}
	}
	return true
}

// similarity normalizes Levenshtein distance to 0..1.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
