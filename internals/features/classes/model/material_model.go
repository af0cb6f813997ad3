package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MaterialModel struct {
	MaterialID        uuid.UUID `gorm:"column:material_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"material_id"`
	MaterialClassID   uuid.UUID `gorm:"column:material_class_id;type:uuid;not null;index"                 json:"material_class_id"`
	MaterialTeacherID uuid.UUID `gorm:"column:material_teacher_id;type:uuid;not null;index"               json:"material_teacher_id"`

	MaterialTitle       string `gorm:"column:material_title;type:varchar(180);not null" json:"material_title"`
	MaterialURL         string `gorm:"column:material_url;type:text;not null"           json:"material_url"`
	MaterialContentType string `gorm:"column:material_content_type;type:varchar(100)"   json:"material_content_type"`
	MaterialSizeBytes   int64  `gorm:"column:material_size_bytes;not null;default:0"    json:"material_size_bytes"`

	// free-form upload metadata (original filename, recompression flag, ...)
	MaterialMeta datatypes.JSON `gorm:"column:material_meta;type:jsonb" json:"material_meta,omitempty"`

	MaterialCreatedAt time.Time      `gorm:"column:material_created_at;not null;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt time.Time      `gorm:"column:material_updated_at;not null;autoUpdateTime" json:"material_updated_at"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;index"                   json:"material_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (MaterialModel) TableName() string {
	return "materials"
}
