// file: internals/features/exams/dto/question_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "quizforge_backend/internals/features/exams/model"
	helper "quizforge_backend/internals/helpers"
)

/* ==============================
   CREATE (POST /questions)
============================== */

type CreateQuestionRequest struct {
	QuestionExamID uuid.UUID `json:"question_exam_id" validate:"required"`

	QuestionType    string   `json:"question_type" validate:"required,oneof=multiple_choice true_false short_answer essay"`
	QuestionPrompt  string   `json:"question_prompt" validate:"required"`
	QuestionOptions []string `json:"question_options" validate:"omitempty,dive,max=500"`
	QuestionCorrectAnswer *string `json:"question_correct_answer" validate:"omitempty"`
	QuestionPoints  *int     `json:"question_points" validate:"omitempty,gte=1"`
	QuestionPosition *int    `json:"question_position" validate:"omitempty,gte=0"`
}

// ToModel: builds the model; ValidateShape is still run by the controller
// so type-specific rules live in one place.
func (r *CreateQuestionRequest) ToModel(teacherID uuid.UUID) *model.QuestionModel {
	points := 1
	if r.QuestionPoints != nil {
		points = *r.QuestionPoints
	}
	position := 0
	if r.QuestionPosition != nil {
		position = *r.QuestionPosition
	}

	var options pq.StringArray
	for _, o := range r.QuestionOptions {
		options = append(options, strings.TrimSpace(o))
	}

	return &model.QuestionModel{
		QuestionExamID:        r.QuestionExamID,
		QuestionTeacherID:     teacherID,
		QuestionType:          model.QuestionType(r.QuestionType),
		QuestionPrompt:        strings.TrimSpace(r.QuestionPrompt),
		QuestionOptions:       options,
		QuestionCorrectAnswer: trimPtr(r.QuestionCorrectAnswer),
		QuestionPoints:        points,
		QuestionPosition:      position,
	}
}

/* ==============================
   PATCH (PATCH /questions/:id)
============================== */

type PatchQuestionRequest struct {
	QuestionPrompt        helper.UpdateField[string]   `json:"question_prompt"`
	QuestionOptions       helper.UpdateField[[]string] `json:"question_options"`
	QuestionCorrectAnswer helper.UpdateField[string]   `json:"question_correct_answer"`
	QuestionPoints        helper.UpdateField[int]      `json:"question_points"`
	QuestionPosition      helper.UpdateField[int]      `json:"question_position"`
}

// ApplyTo mutates the loaded model in place; the controller re-runs
// ValidateShape afterwards so a PATCH cannot break the type's shape.
func (r *PatchQuestionRequest) ApplyTo(m *model.QuestionModel) {
	if r.QuestionPrompt.ShouldUpdate() && !r.QuestionPrompt.IsNull() {
		if v := strings.TrimSpace(r.QuestionPrompt.Val()); v != "" {
			m.QuestionPrompt = v
		}
	}
	if r.QuestionOptions.ShouldUpdate() {
		if r.QuestionOptions.IsNull() {
			m.QuestionOptions = nil
		} else {
			var options pq.StringArray
			for _, o := range r.QuestionOptions.Val() {
				options = append(options, strings.TrimSpace(o))
			}
			m.QuestionOptions = options
		}
	}
	if r.QuestionCorrectAnswer.ShouldUpdate() {
		if r.QuestionCorrectAnswer.IsNull() {
			m.QuestionCorrectAnswer = nil
		} else {
			v := strings.TrimSpace(r.QuestionCorrectAnswer.Val())
			m.QuestionCorrectAnswer = &v
		}
	}
	if r.QuestionPoints.ShouldUpdate() && !r.QuestionPoints.IsNull() {
		m.QuestionPoints = r.QuestionPoints.Val()
	}
	if r.QuestionPosition.ShouldUpdate() && !r.QuestionPosition.IsNull() {
		m.QuestionPosition = r.QuestionPosition.Val()
	}
}

/* ==============================
   RESPONSE (teacher view, includes the correct answer)
============================== */

type QuestionResponse struct {
	QuestionID     uuid.UUID `json:"question_id"`
	QuestionExamID uuid.UUID `json:"question_exam_id"`

	QuestionType          model.QuestionType `json:"question_type"`
	QuestionPrompt        string             `json:"question_prompt"`
	QuestionOptions       []string           `json:"question_options,omitempty"`
	QuestionCorrectAnswer *string            `json:"question_correct_answer,omitempty"`
	QuestionPoints        int                `json:"question_points"`
	QuestionPosition      int                `json:"question_position"`

	QuestionCreatedAt time.Time `json:"question_created_at"`
	QuestionUpdatedAt time.Time `json:"question_updated_at"`
}

func FromQuestionModel(m *model.QuestionModel) QuestionResponse {
	return QuestionResponse{
		QuestionID:            m.QuestionID,
		QuestionExamID:        m.QuestionExamID,
		QuestionType:          m.QuestionType,
		QuestionPrompt:        m.QuestionPrompt,
		QuestionOptions:       m.QuestionOptions,
		QuestionCorrectAnswer: m.QuestionCorrectAnswer,
		QuestionPoints:        m.QuestionPoints,
		QuestionPosition:      m.QuestionPosition,
		QuestionCreatedAt:     m.QuestionCreatedAt,
		QuestionUpdatedAt:     m.QuestionUpdatedAt,
	}
}

func FromQuestionModels(ms []model.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromQuestionModel(&ms[i]))
	}
	return out
}
