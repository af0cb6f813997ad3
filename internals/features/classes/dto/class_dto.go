// file: internals/features/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "quizforge_backend/internals/features/classes/model"
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
   CREATE (POST /classes)
============================== */

type CreateClassRequest struct {
	ClassName        string  `json:"class_name" validate:"required,max=120"`
	ClassSubject     *string `json:"class_subject" validate:"omitempty,max=120"`
	ClassDescription *string `json:"class_description" validate:"omitempty"`
}

func (r *CreateClassRequest) ToModel(teacherID uuid.UUID) *model.ClassModel {
	return &model.ClassModel{
		ClassTeacherID:   teacherID,
		ClassName:        strings.TrimSpace(r.ClassName),
		ClassSubject:     trimPtr(r.ClassSubject),
		ClassDescription: trimPtr(r.ClassDescription),
	}
}

/* ==============================
   PATCH (PATCH /classes/:id)
============================== */

type PatchClassRequest struct {
	ClassName        helper.UpdateField[string] `json:"class_name"`
	ClassSubject     helper.UpdateField[string] `json:"class_subject"`
	ClassDescription helper.UpdateField[string] `json:"class_description"`
}

func (r *PatchClassRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.ClassName.ShouldUpdate() && !r.ClassName.IsNull() {
		if v := strings.TrimSpace(r.ClassName.Val()); v != "" {
			updates["class_name"] = v
		}
	}
	applyNullable(updates, "class_subject", r.ClassSubject)
	applyNullable(updates, "class_description", r.ClassDescription)
	return updates
}

func applyNullable(updates map[string]any, col string, f helper.UpdateField[string]) {
	if !f.ShouldUpdate() {
		return
	}
	if f.IsNull() {
		updates[col] = nil
		return
	}
	updates[col] = strings.TrimSpace(f.Val())
}

/* ==============================
   RESPONSE
============================== */

type ClassResponse struct {
	ClassID          uuid.UUID `json:"class_id"`
	ClassTeacherID   uuid.UUID `json:"class_teacher_id"`
	ClassName        string    `json:"class_name"`
	ClassSubject     *string   `json:"class_subject,omitempty"`
	ClassDescription *string   `json:"class_description,omitempty"`
	ClassCreatedAt   time.Time `json:"class_created_at"`
	ClassUpdatedAt   time.Time `json:"class_updated_at"`
}

func FromClassModel(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:          m.ClassID,
		ClassTeacherID:   m.ClassTeacherID,
		ClassName:        m.ClassName,
		ClassSubject:     m.ClassSubject,
		ClassDescription: m.ClassDescription,
		ClassCreatedAt:   m.ClassCreatedAt,
		ClassUpdatedAt:   m.ClassUpdatedAt,
	}
}

func FromClassModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromClassModel(&ms[i]))
	}
	return out
}
