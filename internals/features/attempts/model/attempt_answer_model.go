// file: internals/features/attempts/model/attempt_answer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: attempt_answers
   One row per submitted (question, answer) pair. is_correct stays NULL for
   essay answers — they are never auto-graded.
============================================================================= */
type AttemptAnswerModel struct {
	AttemptAnswerID         uuid.UUID `gorm:"column:attempt_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attempt_answer_id"`
	AttemptAnswerAttemptID  uuid.UUID `gorm:"column:attempt_answer_attempt_id;type:uuid;not null;index:idx_attempt_answers_attempt" json:"attempt_answer_attempt_id"`
	AttemptAnswerQuestionID uuid.UUID `gorm:"column:attempt_answer_question_id;type:uuid;not null" json:"attempt_answer_question_id"`

	AttemptAnswerValue         string `gorm:"column:attempt_answer_value;type:text;not null"     json:"attempt_answer_value"`
	AttemptAnswerIsCorrect     *bool  `gorm:"column:attempt_answer_is_correct"                   json:"attempt_answer_is_correct"`
	AttemptAnswerPointsAwarded int    `gorm:"column:attempt_answer_points_awarded;not null;default:0" json:"attempt_answer_points_awarded"`

	AttemptAnswerCreatedAt time.Time `gorm:"column:attempt_answer_created_at;not null;autoCreateTime" json:"attempt_answer_created_at"`
}

// TableName overrides the table name used by GORM.
func (AttemptAnswerModel) TableName() string {
	return "attempt_answers"
}
