// file: internals/features/exams/controller/question_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "quizforge_backend/internals/features/exams/dto"
	model "quizforge_backend/internals/features/exams/model"
	helper "quizforge_backend/internals/helpers"
	authmw "quizforge_backend/internals/middlewares/auth"
)

type QuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// loadOwnedExam fetches the parent exam and enforces ownership. The question
// bank is frozen once the exam is published, so writes also check the status.
func (ctrl *QuestionController) loadOwnedExam(c *fiber.Ctx, examID, teacherID uuid.UUID, forWrite bool) (*model.ExamModel, error) {
	var exam model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&exam, "exam_id = ? AND exam_teacher_id = ?", examID, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return nil, err
	}
	if forWrite && exam.IsPublished() {
		return nil, fiber.NewError(fiber.StatusConflict, "Exam is published; questions can no longer be changed")
	}
	return &exam, nil
}

/* =======================
   Handlers
======================= */

// POST /api/a/questions
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if _, err := ctrl.loadOwnedExam(c, body.QuestionExamID, teacherID, true); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := body.ToModel(teacherID)
	if err := m.ValidateShape(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Question created", dto.FromQuestionModel(m))
}

// GET /api/a/questions?exam_id=
func (ctrl *QuestionController) List(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	examID, err := uuid.Parse(strings.TrimSpace(c.Query("exam_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id is required")
	}

	if _, err := ctrl.loadOwnedExam(c, examID, teacherID, false); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.QuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("question_exam_id = ?", examID).
		Order("question_position ASC, question_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromQuestionModels(rows), nil)
}

// PATCH /api/a/questions/:id
func (ctrl *QuestionController) Patch(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.QuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "question_id = ? AND question_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if _, err := ctrl.loadOwnedExam(c, m.QuestionExamID, teacherID, true); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	body.ApplyTo(&m)
	if err := m.ValidateShape(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Question updated", dto.FromQuestionModel(&m))
}

// DELETE /api/a/questions/:id
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.QuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "question_id = ? AND question_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if _, err := ctrl.loadOwnedExam(c, m.QuestionExamID, teacherID, true); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Question deleted", fiber.Map{
		"question_id": id,
	})
}
