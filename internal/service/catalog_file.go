package service

import (
	"fmt"
	"os"

	"github.com/cedbrasil/enrolld/internal/core/domain"

	"gopkg.in/yaml.v3"
)

// LoadCourseTable reads a YAML course table (course name to discipline id
// list) used to override the built-in catalog at startup.
func LoadCourseTable(path string) (domain.CourseTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course table: %w", err)
	}

	var table domain.CourseTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parsing course table: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("course table %s is empty", path)
	}
	return table, nil
}
