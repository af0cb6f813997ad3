// file: internals/features/teachers/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizforge_backend/internals/configs"
	dto "quizforge_backend/internals/features/teachers/dto"
	model "quizforge_backend/internals/features/teachers/model"
	helper "quizforge_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Handlers
======================= */

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.TeacherEmail))

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.TeacherModel{}).
		Where("LOWER(teacher_email) = ?", email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.TeacherPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := model.TeacherModel{
		TeacherName:     strings.TrimSpace(body.TeacherName),
		TeacherEmail:    email,
		TeacherPassword: string(hash),
		TeacherIsActive: true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Account created", dto.FromTeacherModel(&m))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.TeacherEmail))

	var teacher model.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "LOWER(teacher_email) = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same message for unknown email and wrong password
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.TeacherPassword), []byte(body.TeacherPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !teacher.TeacherIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account has been deactivated")
	}

	token, expiresAt, err := issueAccessToken(teacher.TeacherID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Teacher:     dto.FromTeacherModel(&teacher),
	})
}

// GET /api/a/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	teacherID, _ := c.Locals("teacher_id").(string)

	var teacher model.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromTeacherModel(&teacher))
}

func issueAccessToken(teacherID string) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errors.New("JWT secret is not configured")
	}
	now := time.Now().UTC()
	expiresAt := now.Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"sub": teacherID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
