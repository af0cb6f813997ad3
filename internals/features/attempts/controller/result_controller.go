// file: internals/features/attempts/controller/result_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "quizforge_backend/internals/features/attempts/dto"
	attemptModel "quizforge_backend/internals/features/attempts/model"
	examModel "quizforge_backend/internals/features/exams/model"
	helper "quizforge_backend/internals/helpers"
	authmw "quizforge_backend/internals/middlewares/auth"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

/* =======================
   Handlers
======================= */

// GET /api/a/exams/:id/attempts
func (ctrl *ResultController) ListByExam(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	// ownership gate before touching attempts
	var exam examModel.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("exam_id", "exam_teacher_id").
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exam.ExamTeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this exam")
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&attemptModel.AttemptModel{}).
		Where("attempt_exam_id = ?", examID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []attemptModel.AttemptModel
	if err := tx.
		Order("attempt_submitted_at DESC").
		Limit(p.PerPage).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromAttemptModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/attempts/:id
func (ctrl *ResultController) Detail(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	var attempt attemptModel.AttemptModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&attempt, "attempt_id = ?", attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var exam examModel.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("exam_id", "exam_teacher_id").
		First(&exam, "exam_id = ?", attempt.AttemptExamID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exam.ExamTeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this attempt")
	}

	var answers []attemptModel.AttemptAnswerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attempt_answer_attempt_id = ?", attemptID).
		Order("attempt_answer_created_at ASC").
		Find(&answers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := dto.AttemptDetailResponse{
		Attempt: dto.FromAttemptModel(&attempt),
		Answers: make([]dto.AttemptAnswerResponse, 0, len(answers)),
	}
	for i := range answers {
		out.Answers = append(out.Answers, dto.FromAttemptAnswerModel(&answers[i]))
	}
	return helper.JsonOK(c, "OK", out)
}
