package delivery

import (
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"registration/config"
	"registration/domain"
)

type studentHandler struct {
	suc domain.StudentUseCase
}

func NewStudentHandler(api fiber.Router, uc domain.StudentUseCase) {
	handler := &studentHandler{
		suc: uc,
	}

	route := api.Group("/students")
	route.Post("/", handler.CreateStudent)
	route.Get("/", handler.GetAllStudents)
	route.Get("/:id", handler.GetStudentByID)
	route.Put("/:id", handler.UpdateStudent)
	route.Delete("/:id", handler.DeleteStudent)
}

func (h *studentHandler) CreateStudent(c *fiber.Ctx) error {
	var req domain.Student
	if err := c.BodyParser(&req); err != nil {
		config.LogRequest(fiber.StatusBadRequest, "CreateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.LogRequest(fiber.StatusBadRequest, "CreateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := h.suc.CreateStudentUC(c.Context(), &req); err != nil {
		status := statusForError(err)
		config.LogRequest(status, "CreateStudent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.LogRequest(fiber.StatusOK, "CreateStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student registered successfully!",
	})
}

func (h *studentHandler) GetAllStudents(c *fiber.Ctx) error {
	students, err := h.suc.GetAllStudentUC(c.Context())
	if err != nil {
		status := statusForError(err)
		config.LogRequest(status, "GetAllStudents")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.LogRequest(fiber.StatusOK, "GetAllStudents")
	return c.Status(fiber.StatusOK).JSON(students)
}

func (h *studentHandler) GetStudentByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.LogRequest(fiber.StatusBadRequest, "GetStudentByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student id",
		})
	}

	detail, err := h.suc.GetStudentByIDUC(c.Context(), id)
	if err != nil {
		status := statusForError(err)
		config.LogRequest(status, "GetStudentByID")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.LogRequest(fiber.StatusOK, "GetStudentByID")
	return c.Status(fiber.StatusOK).JSON(detail)
}

func (h *studentHandler) UpdateStudent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.LogRequest(fiber.StatusBadRequest, "UpdateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student id",
		})
	}

	var req domain.Student
	if err := c.BodyParser(&req); err != nil {
		config.LogRequest(fiber.StatusBadRequest, "UpdateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}
	req.ID = id

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.LogRequest(fiber.StatusBadRequest, "UpdateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if err := h.suc.UpdateStudentUC(c.Context(), &req); err != nil {
		status := statusForError(err)
		config.LogRequest(status, "UpdateStudent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.LogRequest(fiber.StatusOK, "UpdateStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully!",
	})
}

func (h *studentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.LogRequest(fiber.StatusBadRequest, "DeleteStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student id",
		})
	}

	if err := h.suc.DeleteStudentUC(c.Context(), id); err != nil {
		status := statusForError(err)
		config.LogRequest(status, "DeleteStudent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	config.LogRequest(fiber.StatusOK, "DeleteStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student deleted",
	})
}
