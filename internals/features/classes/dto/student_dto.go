// file: internals/features/classes/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "quizforge_backend/internals/features/classes/model"
	helper "quizforge_backend/internals/helpers"
)

/* ==============================
   CREATE (POST /students)
============================== */

type CreateStudentRequest struct {
	StudentClassID uuid.UUID `json:"student_class_id" validate:"required"`
	StudentName    string    `json:"student_name" validate:"required,max=120"`
	StudentNumber  *string   `json:"student_number" validate:"omitempty,max=40"`
}

func (r *CreateStudentRequest) ToModel(teacherID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentClassID:   r.StudentClassID,
		StudentTeacherID: teacherID,
		StudentName:      strings.TrimSpace(r.StudentName),
		StudentNumber:    trimPtr(r.StudentNumber),
	}
}

/* ==============================
   PATCH (PATCH /students/:id)
============================== */

type PatchStudentRequest struct {
	StudentName   helper.UpdateField[string] `json:"student_name"`
	StudentNumber helper.UpdateField[string] `json:"student_number"`
}

func (r *PatchStudentRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.StudentName.ShouldUpdate() && !r.StudentName.IsNull() {
		if v := strings.TrimSpace(r.StudentName.Val()); v != "" {
			updates["student_name"] = v
		}
	}
	applyNullable(updates, "student_number", r.StudentNumber)
	return updates
}

/* ==============================
   RESPONSE
============================== */

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentClassID   uuid.UUID `json:"student_class_id"`
	StudentTeacherID uuid.UUID `json:"student_teacher_id"`
	StudentName      string    `json:"student_name"`
	StudentNumber    *string   `json:"student_number,omitempty"`
	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func FromStudentModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentClassID:   m.StudentClassID,
		StudentTeacherID: m.StudentTeacherID,
		StudentName:      m.StudentName,
		StudentNumber:    m.StudentNumber,
		StudentCreatedAt: m.StudentCreatedAt,
		StudentUpdatedAt: m.StudentUpdatedAt,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromStudentModel(&ms[i]))
	}
	return out
}
