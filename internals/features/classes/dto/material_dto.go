// file: internals/features/classes/dto/material_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "quizforge_backend/internals/features/classes/model"
)

/* ==============================
   RESPONSE (create is multipart, no JSON request DTO)
============================== */

type MaterialResponse struct {
	MaterialID          uuid.UUID `json:"material_id"`
	MaterialClassID     uuid.UUID `json:"material_class_id"`
	MaterialTitle       string    `json:"material_title"`
	MaterialURL         string    `json:"material_url"`
	MaterialContentType string    `json:"material_content_type"`
	MaterialSizeBytes   int64     `json:"material_size_bytes"`

	MaterialMeta      datatypes.JSON `json:"material_meta,omitempty"`
	MaterialCreatedAt time.Time      `json:"material_created_at"`
}

func FromMaterialModel(m *model.MaterialModel) MaterialResponse {
	return MaterialResponse{
		MaterialID:          m.MaterialID,
		MaterialClassID:     m.MaterialClassID,
		MaterialTitle:       m.MaterialTitle,
		MaterialURL:         m.MaterialURL,
		MaterialContentType: m.MaterialContentType,
		MaterialSizeBytes:   m.MaterialSizeBytes,
		MaterialMeta:        m.MaterialMeta,
		MaterialCreatedAt:   m.MaterialCreatedAt,
	}
}

func FromMaterialModels(ms []model.MaterialModel) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromMaterialModel(&ms[i]))
	}
	return out
}
