// file: internals/features/exams/model/question_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeShortAnswer    QuestionType = "short_answer"
	QuestionTypeEssay          QuestionType = "essay"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeTrueFalse, QuestionTypeShortAnswer, QuestionTypeEssay:
		return true
	default:
		return false
	}
}

// Objective types are eligible for automatic grading.
func (t QuestionType) IsObjective() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeTrueFalse || t == QuestionTypeShortAnswer
}

type QuestionModel struct {
	QuestionID        uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionExamID    uuid.UUID `gorm:"column:question_exam_id;type:uuid;not null;index"                  json:"question_exam_id"`
	QuestionTeacherID uuid.UUID `gorm:"column:question_teacher_id;type:uuid;not null;index"               json:"question_teacher_id"`

	QuestionType   QuestionType   `gorm:"column:question_type;type:varchar(16);not null"   json:"question_type"`
	QuestionPrompt string         `gorm:"column:question_prompt;type:text;not null"        json:"question_prompt"`
	QuestionOptions pq.StringArray `gorm:"column:question_options;type:text[]"             json:"question_options,omitempty"`
	// server-side only; stripped from every public payload
	QuestionCorrectAnswer *string `gorm:"column:question_correct_answer;type:text" json:"question_correct_answer,omitempty"`
	QuestionPoints        int     `gorm:"column:question_points;not null;default:1" json:"question_points"`
	QuestionPosition      int     `gorm:"column:question_position;not null;default:0" json:"question_position"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;not null;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index"                   json:"question_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (QuestionModel) TableName() string {
	return "questions"
}

/* ------------------------
   Helpers
------------------------ */

func (m *QuestionModel) IsEssay() bool { return m.QuestionType == QuestionTypeEssay }

// ValidateShape mirrors the DB CHECK constraints so bad payloads fail in the
// app before the round trip.
func (m *QuestionModel) ValidateShape() error {
	if !m.QuestionType.Valid() {
		return errors.New("invalid question type")
	}
	if strings.TrimSpace(m.QuestionPrompt) == "" {
		return errors.New("prompt is required")
	}
	if m.QuestionPoints < 1 {
		return errors.New("points must be a positive integer")
	}

	switch m.QuestionType {
	case QuestionTypeMultipleChoice:
		if len(m.QuestionOptions) < 2 {
			return errors.New("multiple_choice: at least 2 options required")
		}
		for _, opt := range m.QuestionOptions {
			if strings.TrimSpace(opt) == "" {
				return errors.New("multiple_choice: option text must not be blank")
			}
		}
		if m.QuestionCorrectAnswer == nil || strings.TrimSpace(*m.QuestionCorrectAnswer) == "" {
			return errors.New("multiple_choice: correct answer is required")
		}
		if !containsString(m.QuestionOptions, *m.QuestionCorrectAnswer) {
			return errors.New("multiple_choice: correct answer must be one of the options")
		}

	case QuestionTypeTrueFalse:
		if len(m.QuestionOptions) != 0 {
			return errors.New("true_false: options must be empty")
		}
		if m.QuestionCorrectAnswer == nil {
			return errors.New("true_false: correct answer is required")
		}
		v := strings.ToLower(strings.TrimSpace(*m.QuestionCorrectAnswer))
		if v != "true" && v != "false" {
			return errors.New("true_false: correct answer must be 'true' or 'false'")
		}

	case QuestionTypeShortAnswer:
		if len(m.QuestionOptions) != 0 {
			return errors.New("short_answer: options must be empty")
		}
		if m.QuestionCorrectAnswer == nil || strings.TrimSpace(*m.QuestionCorrectAnswer) == "" {
			return errors.New("short_answer: correct answer is required")
		}

	case QuestionTypeEssay:
		if len(m.QuestionOptions) != 0 {
			return errors.New("essay: options must be empty")
		}
		if m.QuestionCorrectAnswer != nil && strings.TrimSpace(*m.QuestionCorrectAnswer) != "" {
			return errors.New("essay: correct answer must be empty")
		}
	}
	return nil
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
