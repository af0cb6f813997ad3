// file: internals/features/attempts/controller/public_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "quizforge_backend/internals/features/attempts/dto"
	service "quizforge_backend/internals/features/attempts/service"
	helper "quizforge_backend/internals/helpers"
)

type PublicExamController struct {
	Validator *validator.Validate
	Gate      *service.AccessService
	Submitter *service.SubmitService
}

func NewPublicExamController(db *gorm.DB) *PublicExamController {
	return &PublicExamController{
		Validator: validator.New(),
		Gate:      service.NewAccessService(db),
		Submitter: service.NewSubmitService(db),
	}
}

/* =======================
   Handlers
======================= */

// GET /api/public/exams/:id/access?code=XXXXXXXX&student_key=...
// student_key is any stable per-student string (matric number works);
// it only seeds the shuffle and is never stored here.
func (ctrl *PublicExamController) Access(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.ErrExamGate)
	}

	code := c.Query("code")
	studentKey := strings.TrimSpace(c.Query("student_key"))

	out, err := ctrl.Gate.AccessExam(c.Context(), examID, code, studentKey)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/public/exams/:id/submit
func (ctrl *PublicExamController) Submit(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.ErrExamGate)
	}

	var body dto.SubmitExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	out, err := ctrl.Submitter.SubmitExam(c.Context(), examID, &body)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Submission graded", out)
}
