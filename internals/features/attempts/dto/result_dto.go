// file: internals/features/attempts/dto/result_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	attemptModel "quizforge_backend/internals/features/attempts/model"
)

/* ==============================
   TEACHER RESULTS
============================== */

type AttemptResponse struct {
	AttemptID            uuid.UUID  `json:"attempt_id"`
	AttemptExamID        uuid.UUID  `json:"attempt_exam_id"`
	AttemptStudentName   string     `json:"attempt_student_name"`
	AttemptStudentNumber *string    `json:"attempt_student_number,omitempty"`
	AttemptScore         int        `json:"attempt_score"`
	AttemptMaxScore      int        `json:"attempt_max_score"`
	AttemptPercentage    int        `json:"attempt_percentage"`
	AttemptStartedAt     *time.Time `json:"attempt_started_at,omitempty"`
	AttemptSubmittedAt   time.Time  `json:"attempt_submitted_at"`
}

type AttemptAnswerResponse struct {
	AttemptAnswerID            uuid.UUID `json:"attempt_answer_id"`
	AttemptAnswerQuestionID    uuid.UUID `json:"attempt_answer_question_id"`
	AttemptAnswerValue         string    `json:"attempt_answer_value"`
	AttemptAnswerIsCorrect     *bool     `json:"attempt_answer_is_correct"`
	AttemptAnswerPointsAwarded int       `json:"attempt_answer_points_awarded"`
}

type AttemptDetailResponse struct {
	Attempt AttemptResponse         `json:"attempt"`
	Answers []AttemptAnswerResponse `json:"answers"`
}

func FromAttemptModel(m *attemptModel.AttemptModel) AttemptResponse {
	return AttemptResponse{
		AttemptID:            m.AttemptID,
		AttemptExamID:        m.AttemptExamID,
		AttemptStudentName:   m.AttemptStudentName,
		AttemptStudentNumber: m.AttemptStudentNumber,
		AttemptScore:         m.AttemptScore,
		AttemptMaxScore:      m.AttemptMaxScore,
		AttemptPercentage:    m.AttemptPercentage,
		AttemptStartedAt:     m.AttemptStartedAt,
		AttemptSubmittedAt:   m.AttemptSubmittedAt,
	}
}

func FromAttemptModels(rows []attemptModel.AttemptModel) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromAttemptModel(&rows[i]))
	}
	return out
}

func FromAttemptAnswerModel(m *attemptModel.AttemptAnswerModel) AttemptAnswerResponse {
	return AttemptAnswerResponse{
		AttemptAnswerID:            m.AttemptAnswerID,
		AttemptAnswerQuestionID:    m.AttemptAnswerQuestionID,
		AttemptAnswerValue:         m.AttemptAnswerValue,
		AttemptAnswerIsCorrect:     m.AttemptAnswerIsCorrect,
		AttemptAnswerPointsAwarded: m.AttemptAnswerPointsAwarded,
	}
}
