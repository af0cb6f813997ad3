// file: internals/features/teachers/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "quizforge_backend/internals/features/teachers/model"
)

/* ==============================
   REGISTER (POST /auth/register)
============================== */

type RegisterRequest struct {
	TeacherName     string `json:"teacher_name" validate:"required,max=120"`
	TeacherEmail    string `json:"teacher_email" validate:"required,email,max=160"`
	TeacherPassword string `json:"teacher_password" validate:"required,min=8,max=72"`
}

/* ==============================
   LOGIN (POST /auth/login)
============================== */

type LoginRequest struct {
	TeacherEmail    string `json:"teacher_email" validate:"required,email"`
	TeacherPassword string `json:"teacher_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Teacher     TeacherResponse `json:"teacher"`
}

/* ==============================
   RESPONSE
============================== */

type TeacherResponse struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherName      string    `json:"teacher_name"`
	TeacherEmail     string    `json:"teacher_email"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
}

func FromTeacherModel(m *model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:        m.TeacherID,
		TeacherName:      m.TeacherName,
		TeacherEmail:     m.TeacherEmail,
		TeacherCreatedAt: m.TeacherCreatedAt,
	}
}
