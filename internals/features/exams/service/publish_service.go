// file: internals/features/exams/service/publish_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "quizforge_backend/internals/features/exams/model"
	helper "quizforge_backend/internals/helpers"
)

/* =========================================================
   SERVICE
========================================================= */

type PublishService struct {
	DB *gorm.DB
}

func NewPublishService(db *gorm.DB) *PublishService {
	return &PublishService{DB: db}
}

/* =========================================================
   PUBLIC API: PublishExam
========================================================= */

// PublishExam moves an owned draft exam to published:
// - exam must exist and belong to the teacher
// - exam must have at least one question
// - access code is minted and stamped in one guarded UPDATE, so two
//   concurrent publish calls cannot each mint their own code; the loser
//   of the race reads back the winner's code.
func (s *PublishService) PublishExam(
	ctx context.Context,
	examID, teacherID uuid.UUID,
) (*model.ExamModel, error) {
	var exam model.ExamModel
	if err := s.DB.WithContext(ctx).
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return nil, err
	}
	if exam.ExamTeacherID != teacherID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this exam")
	}

	var questionCount int64
	if err := s.DB.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("question_exam_id = ?", examID).
		Count(&questionCount).Error; err != nil {
		return nil, err
	}
	if questionCount == 0 {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Exam has no questions to publish")
	}

	code, err := helper.GenerateAccessCode()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	// one-way transition; the status guard makes the publish atomic
	res := s.DB.WithContext(ctx).
		Model(&model.ExamModel{}).
		Where("exam_id = ? AND exam_status = ?", examID, model.ExamStatusDraft).
		Updates(map[string]any{
			"exam_status":       model.ExamStatusPublished,
			"exam_access_code":  code,
			"exam_published_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// already published (possibly by a concurrent call); return as-is
		log.Printf("[INFO] publish no-op, exam already published. exam_id=%s", examID)
	}

	if err := s.DB.WithContext(ctx).
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

// ShareableURL builds the public link handed to students.
func ShareableURL(origin string, examID uuid.UUID, accessCode string) string {
	return fmt.Sprintf("%s/exam/%s?code=%s", origin, examID, accessCode)
}
