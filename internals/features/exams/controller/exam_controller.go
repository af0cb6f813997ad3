// file: internals/features/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "quizforge_backend/internals/features/classes/model"
	dto "quizforge_backend/internals/features/exams/dto"
	model "quizforge_backend/internals/features/exams/model"
	service "quizforge_backend/internals/features/exams/service"
	helper "quizforge_backend/internals/helpers"
	authmw "quizforge_backend/internals/middlewares/auth"

	"quizforge_backend/internals/configs"
)

type ExamController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Publisher *service.PublishService
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{
		DB:        db,
		Validator: validator.New(),
		Publisher: service.NewPublishService(db),
	}
}

/* =======================
   Filter & Sort
======================= */

func applySort(db *gorm.DB, sort string) *gorm.DB {
	switch strings.TrimSpace(strings.ToLower(sort)) {
	case "created_at":
		return db.Order("exam_created_at ASC")
	case "desc_created_at", "":
		return db.Order("exam_created_at DESC")
	case "title":
		return db.Order("exam_title ASC")
	case "desc_title":
		return db.Order("exam_title DESC")
	case "status":
		return db.Order("exam_status ASC")
	default:
		return db.Order("exam_created_at DESC")
	}
}

/* =======================
   Handlers
======================= */

// POST /api/a/exams
func (ctrl *ExamController) Create(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.CreateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// class must belong to the caller
	var cls classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("class_id").
		First(&cls, "class_id = ? AND class_teacher_id = ?", body.ExamClassID, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := body.ToModel(teacherID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Exam created", dto.FromExamModel(m))
}

// GET /api/a/exams
func (ctrl *ExamController) List(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.ExamModel{}).
		Where("exam_teacher_id = ?", teacherID)

	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		tx = tx.Where("exam_class_id = ?", classID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		if !model.ExamStatus(st).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status")
		}
		tx = tx.Where("exam_status = ?", st)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("(exam_title ILIKE ? OR COALESCE(exam_description,'') ILIKE ?)", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ExamModel
	if err := applySort(tx, c.Query("sort")).
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromExamModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/exams/:id (includes questions with correct answers — owner view)
func (ctrl *ExamController) GetByID(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "exam_id = ? AND exam_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("question_exam_id = ?", id).
		Order("question_position ASC, question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"exam":      dto.FromExamModel(&m),
		"questions": dto.FromQuestionModels(questions),
	})
}

// PATCH /api/a/exams/:id
func (ctrl *ExamController) Patch(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "exam_id = ? AND exam_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromExamModel(&m))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&m).
		Where("exam_id = ? AND exam_teacher_id = ?", id, teacherID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "exam_id = ? AND exam_teacher_id = ?", id, teacherID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Exam updated", dto.FromExamModel(&m))
}

// DELETE /api/a/exams/:id
func (ctrl *ExamController) Delete(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("exam_id").
		First(&m, "exam_id = ? AND exam_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Exam deleted", fiber.Map{
		"exam_id": id,
	})
}

// POST /api/a/exams/:id/publish
func (ctrl *ExamController) Publish(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	exam, err := ctrl.Publisher.PublishExam(c.Context(), id, teacherID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	code := ""
	if exam.ExamAccessCode != nil {
		code = *exam.ExamAccessCode
	}

	return helper.JsonOK(c, "Exam published", dto.PublishExamResponse{
		Exam:         dto.FromExamModel(exam),
		AccessCode:   code,
		ShareableURL: service.ShareableURL(configs.PublicOrigin, exam.ExamID, code),
	})
}
