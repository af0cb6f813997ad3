// file: internals/features/classes/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "quizforge_backend/internals/features/classes/dto"
	model "quizforge_backend/internals/features/classes/model"
	helper "quizforge_backend/internals/helpers"
	authmw "quizforge_backend/internals/middlewares/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ensureClassOwned loads a class only when it belongs to the teacher.
func ensureClassOwned(c *fiber.Ctx, db *gorm.DB, classID, teacherID uuid.UUID) error {
	var cls model.ClassModel
	if err := db.WithContext(c.Context()).
		Select("class_id").
		First(&cls, "class_id = ? AND class_teacher_id = ?", classID, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return nil
}

/* =======================
   Handlers
======================= */

// POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ensureClassOwned(c, ctrl.DB, body.StudentClassID, teacherID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := body.ToModel(teacherID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Student created", dto.FromStudentModel(m))
}

// GET /api/a/students?class_id=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("student_teacher_id = ?", teacherID)

	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		tx = tx.Where("student_class_id = ?", classID)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("(student_name ILIKE ? OR COALESCE(student_number,'') ILIKE ?)", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := tx.Order("student_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromStudentModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PATCH /api/a/students/:id
func (ctrl *StudentController) Patch(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "student_id = ? AND student_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromStudentModel(&m))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&m).
		Where("student_id = ? AND student_teacher_id = ?", id, teacherID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "student_id = ? AND student_teacher_id = ?", id, teacherID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Student updated", dto.FromStudentModel(&m))
}

// DELETE /api/a/students/:id
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("student_id").
		First(&m, "student_id = ? AND student_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{
		"student_id": id,
	})
}
