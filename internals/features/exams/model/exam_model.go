// file: internals/features/exams/model/exam_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Exam Status ('draft','published')
============================================================================= */
type ExamStatus string

const (
	ExamStatusDraft     ExamStatus = "draft"
	ExamStatusPublished ExamStatus = "published"
)

func (s ExamStatus) String() string { return string(s) }
func (s ExamStatus) Valid() bool {
	switch s {
	case ExamStatusDraft, ExamStatusPublished:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (safe when scanning into the enum)
func (s *ExamStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ExamStatus(v)
	case []byte:
		*s = ExamStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for ExamStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid ExamStatus: %q", *s)
	}
	return nil
}
func (s ExamStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid ExamStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: exams
   Invariant (also a DB CHECK): exam_access_code IS NOT NULL
   exactly when exam_status = 'published'.
============================================================================= */
type ExamModel struct {
	ExamID        uuid.UUID `gorm:"column:exam_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_id"`
	ExamTeacherID uuid.UUID `gorm:"column:exam_teacher_id;type:uuid;not null;index"               json:"exam_teacher_id"`
	ExamClassID   uuid.UUID `gorm:"column:exam_class_id;type:uuid;not null;index"                 json:"exam_class_id"`

	ExamTitle       string  `gorm:"column:exam_title;type:varchar(180);not null" json:"exam_title"`
	ExamDescription *string `gorm:"column:exam_description"                      json:"exam_description,omitempty"`

	ExamStatus      ExamStatus `gorm:"column:exam_status;type:varchar(16);not null;default:'draft';index" json:"exam_status"`
	ExamAccessCode  *string    `gorm:"column:exam_access_code;type:char(8)"                               json:"exam_access_code,omitempty"`
	ExamPublishedAt *time.Time `gorm:"column:exam_published_at;type:timestamptz"                          json:"exam_published_at,omitempty"`

	ExamTimeLimitSec     *int `gorm:"column:exam_time_limit_sec"                         json:"exam_time_limit_sec,omitempty"`
	ExamStrictTiming     bool `gorm:"column:exam_strict_timing;not null;default:false"   json:"exam_strict_timing"`
	ExamShuffleQuestions bool `gorm:"column:exam_shuffle_questions;not null;default:false" json:"exam_shuffle_questions"`
	ExamShuffleOptions   bool `gorm:"column:exam_shuffle_options;not null;default:false" json:"exam_shuffle_options"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;not null;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;not null;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index"                   json:"exam_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (ExamModel) TableName() string {
	return "exams"
}

/* ===================================================================
   Helper methods
=================================================================== */

func (m *ExamModel) IsPublished() bool { return m.ExamStatus == ExamStatusPublished }
func (m *ExamModel) IsDraft() bool     { return m.ExamStatus == ExamStatusDraft }
