// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptModel "quizforge_backend/internals/features/attempts/model"
	classModel "quizforge_backend/internals/features/classes/model"
	examModel "quizforge_backend/internals/features/exams/model"
	helper "quizforge_backend/internals/helpers"
	authmw "quizforge_backend/internals/middlewares/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type DashboardSummary struct {
	ClassCount     int64 `json:"class_count"`
	StudentCount   int64 `json:"student_count"`
	ExamCount      int64 `json:"exam_count"`
	PublishedCount int64 `json:"published_count"`
	AttemptCount   int64 `json:"attempt_count"`
}

// GET /api/a/dashboard
func (ctrl *DashboardController) Summary(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())
	var out DashboardSummary

	if err := db.Model(&classModel.ClassModel{}).
		Where("class_teacher_id = ?", teacherID).
		Count(&out.ClassCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&classModel.StudentModel{}).
		Where("student_teacher_id = ?", teacherID).
		Count(&out.StudentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&examModel.ExamModel{}).
		Where("exam_teacher_id = ?", teacherID).
		Count(&out.ExamCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&examModel.ExamModel{}).
		Where("exam_teacher_id = ? AND exam_status = ?", teacherID, examModel.ExamStatusPublished).
		Count(&out.PublishedCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&attemptModel.AttemptModel{}).
		Joins("JOIN exams ON exams.exam_id = attempts.attempt_exam_id").
		Where("exams.exam_teacher_id = ? AND exams.exam_deleted_at IS NULL", teacherID).
		Count(&out.AttemptCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", out)
}
