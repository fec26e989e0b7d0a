package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"registration/config"
	"registration/domain"
)

type enrollmentHandler struct {
	euc domain.EnrollmentUseCase
}

func NewEnrollmentHandler(api fiber.Router, uc domain.EnrollmentUseCase) {
	handler := &enrollmentHandler{
		euc: uc,
	}

	route := api.Group("/students/:id/subjects")
	route.Get("/", handler.GetEnrolledSubjects)
	route.Post("/", handler.AddSubjects)
	route.Post("/remove", handler.RemoveSubjects)
}

func (h *enrollmentHandler) GetEnrolledSubjects(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.LogRequest(fiber.StatusBadRequest, "GetEnrolledSubjects")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student id",
		})
	}

	subjects, err := h.euc.GetEnrolledSubjectsUC(c.Context(), id)
	if err != nil {
		status := statusForError(err)
		config.LogRequest(status, "GetEnrolledSubjects")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.LogRequest(fiber.StatusOK, "GetEnrolledSubjects")
	return c.Status(fiber.StatusOK).JSON(subjects)
}

func (h *enrollmentHandler) AddSubjects(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.LogRequest(fiber.StatusBadRequest, "AddSubjects")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student id",
		})
	}

	var payload domain.SubjectIDsPayload
	if err := c.BodyParser(&payload); err != nil {
		config.LogRequest(fiber.StatusBadRequest, "AddSubjects")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	added, err := h.euc.AddSubjectsUC(c.Context(), id, payload.SubjectIDs)
	if err != nil {
		status := statusForError(err)
		config.LogRequest(status, "AddSubjects")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.LogRequest(fiber.StatusOK, "AddSubjects")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"added":   added,
	})
}

func (h *enrollmentHandler) RemoveSubjects(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.LogRequest(fiber.StatusBadRequest, "RemoveSubjects")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student id",
		})
	}

	var payload domain.SubjectIDsPayload
	if err := c.BodyParser(&payload); err != nil {
		config.LogRequest(fiber.StatusBadRequest, "RemoveSubjects")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	removed, err := h.euc.RemoveSubjectsUC(c.Context(), id, payload.SubjectIDs)
	if err != nil {
		status := statusForError(err)
		config.LogRequest(status, "RemoveSubjects")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.LogRequest(fiber.StatusOK, "RemoveSubjects")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"removed": removed,
	})
}
