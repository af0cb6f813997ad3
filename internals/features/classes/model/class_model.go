package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID        uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	ClassTeacherID uuid.UUID `gorm:"column:class_teacher_id;type:uuid;not null;index"               json:"class_teacher_id"`

	ClassName        string  `gorm:"column:class_name;type:varchar(120);not null" json:"class_name"`
	ClassSubject     *string `gorm:"column:class_subject;type:varchar(120)"       json:"class_subject,omitempty"`
	ClassDescription *string `gorm:"column:class_description"                     json:"class_description,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index"                   json:"class_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (ClassModel) TableName() string {
	return "classes"
}
