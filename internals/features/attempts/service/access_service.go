// file: internals/features/attempts/service/access_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptDTO "quizforge_backend/internals/features/attempts/dto"
	examModel "quizforge_backend/internals/features/exams/model"
	helper "quizforge_backend/internals/helpers"
)

// ErrExamGate is the single message for every gate failure (unknown exam,
// draft exam, wrong code). Collapsing them keeps the endpoint from leaking
// which exams exist or whether a guessed code was close.
const ErrExamGate = "Exam not found or invalid access code"

/* =========================================================
   SERVICE
========================================================= */

type AccessService struct {
	DB *gorm.DB
}

func NewAccessService(db *gorm.DB) *AccessService {
	return &AccessService{DB: db}
}

// GateExam resolves a published exam by id + access code. Any failure mode
// returns the same 404.
func (s *AccessService) GateExam(
	ctx context.Context,
	examID uuid.UUID,
	code string,
) (*examModel.ExamModel, error) {
	code = strings.TrimSpace(code)
	if len(code) != helper.AccessCodeLength {
		return nil, fiber.NewError(fiber.StatusNotFound, ErrExamGate)
	}

	var exam examModel.ExamModel
	if err := s.DB.WithContext(ctx).
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, ErrExamGate)
		}
		return nil, err
	}
	if !exam.IsPublished() || exam.ExamAccessCode == nil || *exam.ExamAccessCode != code {
		return nil, fiber.NewError(fiber.StatusNotFound, ErrExamGate)
	}
	return &exam, nil
}

// AccessExam is the student-facing view: gate + sanitized question list.
// student_key feeds the shuffle seed so one student sees a stable order
// across refreshes while two students see different orders.
func (s *AccessService) AccessExam(
	ctx context.Context,
	examID uuid.UUID,
	code, studentKey string,
) (*attemptDTO.AccessExamResponse, error) {
	exam, err := s.GateExam(ctx, examID, code)
	if err != nil {
		return nil, err
	}

	var questions []examModel.QuestionModel
	if err := s.DB.WithContext(ctx).
		Where("question_exam_id = ?", exam.ExamID).
		Order("question_position ASC, question_created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	if exam.ExamShuffleQuestions {
		perm := helper.SeededPerm(len(questions), exam.ExamID.String(), studentKey)
		shuffled := make([]examModel.QuestionModel, len(questions))
		for i, j := range perm {
			shuffled[i] = questions[j]
		}
		questions = shuffled
	}

	out := &attemptDTO.AccessExamResponse{
		Exam:      attemptDTO.FromExamModelPublic(exam),
		Questions: make([]attemptDTO.PublicQuestionResponse, 0, len(questions)),
	}
	for i := range questions {
		q := attemptDTO.FromQuestionModelPublic(&questions[i])
		if questions[i].QuestionType == examModel.QuestionTypeMultipleChoice && exam.ExamShuffleOptions {
			perm := helper.SeededPerm(len(q.QuestionOptions),
				exam.ExamID.String(), questions[i].QuestionID.String(), studentKey)
			opts := make([]string, len(q.QuestionOptions))
			for a, b := range perm {
				opts[a] = q.QuestionOptions[b]
			}
			q.QuestionOptions = opts
		}
		out.Questions = append(out.Questions, q)
	}
	return out, nil
}
