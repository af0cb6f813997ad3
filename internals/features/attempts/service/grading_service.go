// file: internals/features/attempts/service/grading_service.go
package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptDTO "quizforge_backend/internals/features/attempts/dto"
	attemptModel "quizforge_backend/internals/features/attempts/model"
	examModel "quizforge_backend/internals/features/exams/model"
)

/* =========================================================
   PURE GRADING CORE
   No DB access here — grading is a function of the question
   bank and the answer map, so it is testable in isolation.
========================================================= */

type GradedAnswer struct {
	QuestionID    uuid.UUID
	Value         string
	IsCorrect     *bool // nil for essay
	PointsAwarded int
}

type GradeResult struct {
	Score      int
	MaxScore   int
	Percentage int
	Answers    []GradedAnswer
}

// GradeSubmission scores one submission against the full question bank.
// Rules:
//   - MaxScore sums points over ALL questions, answered or not.
//   - multiple_choice / true_false: exact string equality.
//   - short_answer: case-insensitive, surrounding whitespace ignored.
//   - essay: never auto-graded; IsCorrect stays nil, 0 points awarded,
//     but the question still counts toward MaxScore.
//   - answers whose question id is not in the bank are dropped.
func GradeSubmission(
	questions []examModel.QuestionModel,
	answers map[uuid.UUID]string,
) GradeResult {
	res := GradeResult{Answers: make([]GradedAnswer, 0, len(answers))}

	for i := range questions {
		q := &questions[i]
		res.MaxScore += q.QuestionPoints

		value, answered := answers[q.QuestionID]
		if !answered {
			continue
		}

		ga := GradedAnswer{QuestionID: q.QuestionID, Value: value}
		if q.QuestionType.IsObjective() && q.QuestionCorrectAnswer != nil {
			correct := gradeObjective(q.QuestionType, *q.QuestionCorrectAnswer, value)
			ga.IsCorrect = &correct
			if correct {
				ga.PointsAwarded = q.QuestionPoints
				res.Score += q.QuestionPoints
			}
		}
		res.Answers = append(res.Answers, ga)
	}

	if res.MaxScore > 0 {
		// round half up, integers only
		res.Percentage = (res.Score*100 + res.MaxScore/2) / res.MaxScore
	}
	return res
}

// Only short_answer is normalized; multiple_choice and true_false compare
// the submitted string to the stored correct answer exactly.
func gradeObjective(t examModel.QuestionType, correct, given string) bool {
	if t == examModel.QuestionTypeShortAnswer {
		return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(correct))
	}
	return given == correct
}

/* =========================================================
   SERVICE: submit
========================================================= */

type SubmitService struct {
	DB     *gorm.DB
	Access *AccessService
}

func NewSubmitService(db *gorm.DB) *SubmitService {
	return &SubmitService{DB: db, Access: NewAccessService(db)}
}

// SubmitExam gates, grades, and persists one attempt. The attempt row and
// all of its answer rows land in a single transaction, so a failed insert
// never leaves a headless attempt behind.
func (s *SubmitService) SubmitExam(
	ctx context.Context,
	examID uuid.UUID,
	req *attemptDTO.SubmitExamRequest,
) (*attemptDTO.SubmitExamResponse, error) {
	exam, err := s.Access.GateExam(ctx, examID, req.Code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if exam.ExamStrictTiming && exam.ExamTimeLimitSec != nil && req.StartedAt != nil {
		deadline := req.StartedAt.Add(time.Duration(*exam.ExamTimeLimitSec) * time.Second)
		if now.After(deadline) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Time limit exceeded")
		}
	}

	var questions []examModel.QuestionModel
	if err := s.DB.WithContext(ctx).
		Where("question_exam_id = ?", exam.ExamID).
		Find(&questions).Error; err != nil {
		return nil, err
	}

	// last answer wins when a question id repeats in the payload
	answerMap := make(map[uuid.UUID]string, len(req.Answers))
	for _, a := range req.Answers {
		answerMap[a.QuestionID] = a.Answer
	}

	graded := GradeSubmission(questions, answerMap)

	attempt := attemptModel.AttemptModel{
		AttemptExamID:        exam.ExamID,
		AttemptStudentName:   strings.TrimSpace(req.StudentName),
		AttemptStudentNumber: req.StudentNumber,
		AttemptScore:         graded.Score,
		AttemptMaxScore:      graded.MaxScore,
		AttemptPercentage:    graded.Percentage,
		AttemptStartedAt:     req.StartedAt,
		AttemptSubmittedAt:   now,
	}

	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		if len(graded.Answers) == 0 {
			return nil
		}
		rows := make([]attemptModel.AttemptAnswerModel, 0, len(graded.Answers))
		for _, ga := range graded.Answers {
			rows = append(rows, attemptModel.AttemptAnswerModel{
				AttemptAnswerAttemptID:     attempt.AttemptID,
				AttemptAnswerQuestionID:    ga.QuestionID,
				AttemptAnswerValue:         ga.Value,
				AttemptAnswerIsCorrect:     ga.IsCorrect,
				AttemptAnswerPointsAwarded: ga.PointsAwarded,
			})
		}
		return tx.Create(&rows).Error
	}); err != nil {
		log.Printf("[SubmitExam] persist failed exam=%s: %v", exam.ExamID, err)
		return nil, err
	}

	resp := &attemptDTO.SubmitExamResponse{
		AttemptID:  attempt.AttemptID,
		Score:      graded.Score,
		MaxScore:   graded.MaxScore,
		Percentage: graded.Percentage,
		Answers:    make([]attemptDTO.SubmitAnswerResult, 0, len(graded.Answers)),
	}
	for _, ga := range graded.Answers {
		resp.Answers = append(resp.Answers, attemptDTO.SubmitAnswerResult{
			QuestionID:    ga.QuestionID,
			IsCorrect:     ga.IsCorrect,
			PointsAwarded: ga.PointsAwarded,
		})
	}
	return resp, nil
}
