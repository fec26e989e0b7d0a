package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrStudentNotFound = errors.New("Student not found")
	ErrDuplicatePhone  = errors.New("Phone number already exists")
	ErrDuplicateEmail  = errors.New("Email already exists")
	ErrNoSubjectIDs    = errors.New("subject_ids must not be empty")
)

// InvalidSubjectIDsError reports subject ids that do not exist. The ids are
// kept sorted ascending.
type InvalidSubjectIDsError struct {
	IDs []int
}

func NewInvalidSubjectIDsError(ids []int) *InvalidSubjectIDsError {
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)
	return &InvalidSubjectIDsError{IDs: sorted}
}

func (e *InvalidSubjectIDsError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("invalid subject ids: %s", strings.Join(parts, ", "))
}

// ValidationError collects per-field rule violations found before any
// persistence attempt.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " " + e.Fields[name]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
