// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizforge_backend/internals/configs"
	teacherModel "quizforge_backend/internals/features/teachers/model"
)

// AuthMiddleware guards the teacher-side API. On success it stores
// "teacher_id" into Locals for ownership checks downstream.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Take Authorization (or cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Parse & verify JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 3) Validate exp (with small leeway)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 4) Take teacher id & make sure the account is still active
		teacherID, err := extractTeacherID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing teacher ID")
		}

		if err := ensureTeacherActive(db, teacherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Teacher not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Account has been deactivated")
		}

		c.Locals("teacher_id", teacherID.String())
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):]), nil
	}
	return "", errors.New("Unauthorized - Missing bearer token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractTeacherID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		// older tokens used "teacher_id"
		sub, _ = claims["teacher_id"].(string)
	}
	return uuid.Parse(sub)
}

func ensureTeacherActive(db *gorm.DB, id uuid.UUID) error {
	var t teacherModel.TeacherModel
	if err := db.Select("teacher_id", "teacher_is_active").
		First(&t, "teacher_id = ?", id).Error; err != nil {
		return err
	}
	if !t.TeacherIsActive {
		return errors.New("teacher inactive")
	}
	return nil
}

// GetTeacherID reads the teacher id stored by AuthMiddleware.
func GetTeacherID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("teacher_id").(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing teacher context")
	}
	return id, nil
}
