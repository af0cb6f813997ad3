// file: internals/features/attempts/model/attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: attempts
   One row per submission event. Rows are write-once: created together with
   their answer rows inside the submit transaction and never updated after.
============================================================================= */
type AttemptModel struct {
	AttemptID     uuid.UUID `gorm:"column:attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attempt_id"`
	AttemptExamID uuid.UUID `gorm:"column:attempt_exam_id;type:uuid;not null;index:idx_attempts_exam" json:"attempt_exam_id"`

	AttemptStudentName   string  `gorm:"column:attempt_student_name;type:varchar(120);not null" json:"attempt_student_name"`
	AttemptStudentNumber *string `gorm:"column:attempt_student_number;type:varchar(40)"         json:"attempt_student_number,omitempty"`

	AttemptScore      int `gorm:"column:attempt_score;not null;default:0"      json:"attempt_score"`
	AttemptMaxScore   int `gorm:"column:attempt_max_score;not null;default:0"  json:"attempt_max_score"`
	AttemptPercentage int `gorm:"column:attempt_percentage;not null;default:0" json:"attempt_percentage"`

	AttemptStartedAt   *time.Time `gorm:"column:attempt_started_at;type:timestamptz"            json:"attempt_started_at,omitempty"`
	AttemptSubmittedAt time.Time  `gorm:"column:attempt_submitted_at;type:timestamptz;not null;default:now()" json:"attempt_submitted_at"`

	AttemptCreatedAt time.Time `gorm:"column:attempt_created_at;not null;autoCreateTime" json:"attempt_created_at"`
}

// TableName overrides the table name used by GORM.
func (AttemptModel) TableName() string {
	return "attempts"
}
