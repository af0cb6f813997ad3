package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID        uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentClassID   uuid.UUID `gorm:"column:student_class_id;type:uuid;not null;index"                 json:"student_class_id"`
	StudentTeacherID uuid.UUID `gorm:"column:student_teacher_id;type:uuid;not null;index"               json:"student_teacher_id"`

	StudentName string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	// matriculation number, shown back to the teacher on attempt rows
	StudentNumber *string `gorm:"column:student_number;type:varchar(40)" json:"student_number,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"                   json:"student_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (StudentModel) TableName() string {
	return "students"
}
