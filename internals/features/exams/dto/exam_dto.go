// file: internals/features/exams/dto/exam_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "quizforge_backend/internals/features/exams/model"
	helper "quizforge_backend/internals/helpers"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ==============================
   CREATE (POST /exams)
============================== */

type CreateExamRequest struct {
	ExamClassID     uuid.UUID `json:"exam_class_id" validate:"required"`
	ExamTitle       string    `json:"exam_title" validate:"required,max=180"`
	ExamDescription *string   `json:"exam_description" validate:"omitempty"`

	ExamTimeLimitSec     *int  `json:"exam_time_limit_sec" validate:"omitempty,gte=0"`
	ExamStrictTiming     *bool `json:"exam_strict_timing" validate:"omitempty"`
	ExamShuffleQuestions *bool `json:"exam_shuffle_questions" validate:"omitempty"`
	ExamShuffleOptions   *bool `json:"exam_shuffle_options" validate:"omitempty"`
}

// ToModel: model builder from the Create payload (timestamps by GORM).
// New exams always start in draft; publish is its own endpoint.
func (r *CreateExamRequest) ToModel(teacherID uuid.UUID) *model.ExamModel {
	m := &model.ExamModel{
		ExamTeacherID:   teacherID,
		ExamClassID:     r.ExamClassID,
		ExamTitle:       strings.TrimSpace(r.ExamTitle),
		ExamDescription: trimPtr(r.ExamDescription),
		ExamStatus:      model.ExamStatusDraft,
		ExamTimeLimitSec: r.ExamTimeLimitSec,
	}
	if r.ExamStrictTiming != nil {
		m.ExamStrictTiming = *r.ExamStrictTiming
	}
	if r.ExamShuffleQuestions != nil {
		m.ExamShuffleQuestions = *r.ExamShuffleQuestions
	}
	if r.ExamShuffleOptions != nil {
		m.ExamShuffleOptions = *r.ExamShuffleOptions
	}
	return m
}

/* ==============================
   PATCH (PATCH /exams/:id)
============================== */

type PatchExamRequest struct {
	ExamTitle       helper.UpdateField[string] `json:"exam_title"`
	ExamDescription helper.UpdateField[string] `json:"exam_description"`

	ExamTimeLimitSec     helper.UpdateField[int]  `json:"exam_time_limit_sec"`
	ExamStrictTiming     helper.UpdateField[bool] `json:"exam_strict_timing"`
	ExamShuffleQuestions helper.UpdateField[bool] `json:"exam_shuffle_questions"`
	ExamShuffleOptions   helper.UpdateField[bool] `json:"exam_shuffle_options"`
}

func (r *PatchExamRequest) ToUpdates() map[string]any {
	updates := map[string]any{}

	if r.ExamTitle.ShouldUpdate() && !r.ExamTitle.IsNull() {
		if v := strings.TrimSpace(r.ExamTitle.Val()); v != "" {
			updates["exam_title"] = v
		}
	}
	if r.ExamDescription.ShouldUpdate() {
		if r.ExamDescription.IsNull() {
			updates["exam_description"] = nil
		} else {
			updates["exam_description"] = strings.TrimSpace(r.ExamDescription.Val())
		}
	}
	if r.ExamTimeLimitSec.ShouldUpdate() {
		if r.ExamTimeLimitSec.IsNull() {
			updates["exam_time_limit_sec"] = nil
		} else if v := r.ExamTimeLimitSec.Val(); v >= 0 {
			updates["exam_time_limit_sec"] = v
		}
	}
	if r.ExamStrictTiming.ShouldUpdate() && !r.ExamStrictTiming.IsNull() {
		updates["exam_strict_timing"] = r.ExamStrictTiming.Val()
	}
	if r.ExamShuffleQuestions.ShouldUpdate() && !r.ExamShuffleQuestions.IsNull() {
		updates["exam_shuffle_questions"] = r.ExamShuffleQuestions.Val()
	}
	if r.ExamShuffleOptions.ShouldUpdate() && !r.ExamShuffleOptions.IsNull() {
		updates["exam_shuffle_options"] = r.ExamShuffleOptions.Val()
	}
	return updates
}

/* ==============================
   RESPONSE
============================== */

type ExamResponse struct {
	ExamID        uuid.UUID `json:"exam_id"`
	ExamTeacherID uuid.UUID `json:"exam_teacher_id"`
	ExamClassID   uuid.UUID `json:"exam_class_id"`

	ExamTitle       string  `json:"exam_title"`
	ExamDescription *string `json:"exam_description,omitempty"`

	ExamStatus      model.ExamStatus `json:"exam_status"`
	ExamAccessCode  *string          `json:"exam_access_code,omitempty"`
	ExamPublishedAt *time.Time       `json:"exam_published_at,omitempty"`

	ExamTimeLimitSec     *int `json:"exam_time_limit_sec,omitempty"`
	ExamStrictTiming     bool `json:"exam_strict_timing"`
	ExamShuffleQuestions bool `json:"exam_shuffle_questions"`
	ExamShuffleOptions   bool `json:"exam_shuffle_options"`

	ExamCreatedAt time.Time `json:"exam_created_at"`
	ExamUpdatedAt time.Time `json:"exam_updated_at"`
}

func FromExamModel(m *model.ExamModel) ExamResponse {
	return ExamResponse{
		ExamID:               m.ExamID,
		ExamTeacherID:        m.ExamTeacherID,
		ExamClassID:          m.ExamClassID,
		ExamTitle:            m.ExamTitle,
		ExamDescription:      m.ExamDescription,
		ExamStatus:           m.ExamStatus,
		ExamAccessCode:       m.ExamAccessCode,
		ExamPublishedAt:      m.ExamPublishedAt,
		ExamTimeLimitSec:     m.ExamTimeLimitSec,
		ExamStrictTiming:     m.ExamStrictTiming,
		ExamShuffleQuestions: m.ExamShuffleQuestions,
		ExamShuffleOptions:   m.ExamShuffleOptions,
		ExamCreatedAt:        m.ExamCreatedAt,
		ExamUpdatedAt:        m.ExamUpdatedAt,
	}
}

func FromExamModels(ms []model.ExamModel) []ExamResponse {
	out := make([]ExamResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromExamModel(&ms[i]))
	}
	return out
}

/* ==============================
   PUBLISH (POST /exams/:id/publish)
============================== */

type PublishExamResponse struct {
	Exam         ExamResponse `json:"exam"`
	AccessCode   string       `json:"access_code"`
	ShareableURL string       `json:"shareable_url"`
}
