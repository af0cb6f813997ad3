package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`

	TeacherName     string `gorm:"column:teacher_name;type:varchar(120);not null"          json:"teacher_name"`
	TeacherEmail    string `gorm:"column:teacher_email;type:varchar(160);not null;uniqueIndex" json:"teacher_email"`
	TeacherPassword string `gorm:"column:teacher_password;type:varchar(100);not null"      json:"-"`
	TeacherIsActive bool   `gorm:"column:teacher_is_active;not null;default:true"          json:"teacher_is_active"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index"                   json:"teacher_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (TeacherModel) TableName() string {
	return "teachers"
}
