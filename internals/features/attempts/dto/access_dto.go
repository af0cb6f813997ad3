// file: internals/features/attempts/dto/access_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	examModel "quizforge_backend/internals/features/exams/model"
)

/* ==============================
   ACCESS GATE (GET /exams/:id/access)
   Sanitized shapes: the student payload has no correct-answer field at
   all, not a masked one.
============================== */

type PublicExamResponse struct {
	ExamID          uuid.UUID `json:"exam_id"`
	ExamTitle       string    `json:"exam_title"`
	ExamDescription *string   `json:"exam_description,omitempty"`

	ExamTimeLimitSec *int `json:"exam_time_limit_sec,omitempty"`
	ExamStrictTiming bool `json:"exam_strict_timing"`
}

type PublicQuestionResponse struct {
	QuestionID      uuid.UUID              `json:"question_id"`
	QuestionType    examModel.QuestionType `json:"question_type"`
	QuestionPrompt  string                 `json:"question_prompt"`
	QuestionOptions []string               `json:"question_options,omitempty"`
	QuestionPoints  int                    `json:"question_points"`
}

type AccessExamResponse struct {
	Exam      PublicExamResponse       `json:"exam"`
	Questions []PublicQuestionResponse `json:"questions"`
}

func FromExamModelPublic(m *examModel.ExamModel) PublicExamResponse {
	return PublicExamResponse{
		ExamID:           m.ExamID,
		ExamTitle:        m.ExamTitle,
		ExamDescription:  m.ExamDescription,
		ExamTimeLimitSec: m.ExamTimeLimitSec,
		ExamStrictTiming: m.ExamStrictTiming,
	}
}

func FromQuestionModelPublic(m *examModel.QuestionModel) PublicQuestionResponse {
	return PublicQuestionResponse{
		QuestionID:      m.QuestionID,
		QuestionType:    m.QuestionType,
		QuestionPrompt:  m.QuestionPrompt,
		QuestionOptions: m.QuestionOptions,
		QuestionPoints:  m.QuestionPoints,
	}
}

/* ==============================
   SUBMIT (POST /exams/:id/submit)
============================== */

type SubmitAnswer struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Answer     string    `json:"answer"`
}

type SubmitExamRequest struct {
	Code          string         `json:"code" validate:"required,len=8"`
	StudentName   string         `json:"student_name" validate:"required,max=120"`
	StudentNumber *string        `json:"student_number" validate:"omitempty,max=40"`
	StartedAt     *time.Time     `json:"started_at" validate:"omitempty"`
	// empty is allowed: a timed-out student still gets an attempt row
	Answers []SubmitAnswer `json:"answers" validate:"omitempty,dive"`
}

type SubmitAnswerResult struct {
	QuestionID    uuid.UUID `json:"question_id"`
	IsCorrect     *bool     `json:"is_correct"`
	PointsAwarded int       `json:"points_awarded"`
}

type SubmitExamResponse struct {
	AttemptID  uuid.UUID            `json:"attempt_id"`
	Score      int                  `json:"score"`
	MaxScore   int                  `json:"max_score"`
	Percentage int                  `json:"percentage"`
	Answers    []SubmitAnswerResult `json:"answers"`
}
