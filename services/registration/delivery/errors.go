package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"registration/domain"
)

// statusForError maps the domain error taxonomy onto HTTP statuses:
// not-found 404, validation/conflict/bad-request 400, everything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrStudentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicatePhone),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrNoSubjectIDs):
		return fiber.StatusBadRequest
	}

	var invalidIDs *domain.InvalidSubjectIDsError
	if errors.As(err, &invalidIDs) {
		return fiber.StatusBadRequest
	}
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return fiber.StatusBadRequest
	}

	return fiber.StatusInternalServerError
}
