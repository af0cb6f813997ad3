// file: internals/features/classes/controller/class_controller.go
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

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Handlers
======================= */

// POST /api/a/classes
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := body.ToModel(teacherID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Class created", dto.FromClassModel(m))
}

// GET /api/a/classes
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.ClassModel{}).
		Where("class_teacher_id = ?", teacherID)

	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("(class_name ILIKE ? OR COALESCE(class_subject,'') ILIKE ?)", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ClassModel
	if err := tx.Order("class_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromClassModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/classes/:id
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "class_id = ? AND class_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromClassModel(&m))
}

// PATCH /api/a/classes/:id
func (ctrl *ClassController) Patch(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "class_id = ? AND class_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromClassModel(&m))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&m).
		Where("class_id = ? AND class_teacher_id = ?", id, teacherID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// reload
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "class_id = ? AND class_teacher_id = ?", id, teacherID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Class updated", dto.FromClassModel(&m))
}

// DELETE /api/a/classes/:id
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("class_id").
		First(&m, "class_id = ? AND class_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Class deleted", fiber.Map{
		"class_id": id,
	})
}
