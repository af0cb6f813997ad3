// file: internals/features/classes/controller/material_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "quizforge_backend/internals/features/classes/dto"
	model "quizforge_backend/internals/features/classes/model"
	helper "quizforge_backend/internals/helpers"
	ossHelper "quizforge_backend/internals/helpers/oss"
	authmw "quizforge_backend/internals/middlewares/auth"
)

type MaterialController struct {
	DB  *gorm.DB
	OSS *ossHelper.Client
}

func NewMaterialController(db *gorm.DB, ossClient *ossHelper.Client) *MaterialController {
	return &MaterialController{
		DB:  db,
		OSS: ossClient,
	}
}

/* =======================
   Handlers
======================= */

// POST /api/a/materials (multipart: title, class_id, file)
func (ctrl *MaterialController) Create(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if ctrl.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "title is required")
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.FormValue("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
	}

	if err := ensureClassOwned(c, ctrl.DB, classID, teacherID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	if fh.Size > ossHelper.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "File exceeds the maximum upload size")
	}

	url, contentType, size, err := ctrl.OSS.UploadMaterial("materials/"+classID.String(), fh)
	if err != nil {
		log.Printf("[ERROR] material upload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	meta, _ := sonic.Marshal(fiber.Map{
		"original_filename":     fh.Filename,
		"original_content_type": fh.Header.Get("Content-Type"),
		"original_size_bytes":   fh.Size,
	})

	m := model.MaterialModel{
		MaterialClassID:     classID,
		MaterialTeacherID:   teacherID,
		MaterialTitle:       title,
		MaterialURL:         url,
		MaterialContentType: contentType,
		MaterialSizeBytes:   size,
		MaterialMeta:        datatypes.JSON(meta),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		// record failed; object would otherwise leak
		if delErr := ctrl.OSS.DeleteByPublicURL(url); delErr != nil {
			log.Printf("[WARN] orphan object cleanup failed: %v", delErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Material uploaded", dto.FromMaterialModel(&m))
}

// GET /api/a/materials?class_id=
func (ctrl *MaterialController) List(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.MaterialModel{}).
		Where("material_teacher_id = ?", teacherID)

	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		tx = tx.Where("material_class_id = ?", classID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MaterialModel
	if err := tx.Order("material_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromMaterialModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// DELETE /api/a/materials/:id
func (ctrl *MaterialController) Delete(c *fiber.Ctx) error {
	teacherID, err := authmw.GetTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.MaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "material_id = ? AND material_teacher_id = ?", id, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// best-effort: soft-deleted rows keep the URL, drop the object anyway
	if ctrl.OSS != nil {
		if err := ctrl.OSS.DeleteByPublicURL(m.MaterialURL); err != nil {
			log.Printf("[WARN] object delete failed: %v", err)
		}
	}

	return helper.JsonDeleted(c, "Material deleted", fiber.Map{
		"material_id": id,
	})
}
