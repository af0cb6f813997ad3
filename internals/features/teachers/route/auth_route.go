package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "quizforge_backend/internals/features/teachers/controller"
	"quizforge_backend/internals/middlewares"
)

// AuthRoutes registers the public auth endpoints on the given group
// (parent carries the /api/auth prefix).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewAuthController(db)

	r.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register) // POST /api/auth/register
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)       // POST /api/auth/login
}

// MeRoutes mounts the authenticated profile endpoint (parent group carries auth).
func MeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewAuthController(db)
	r.Get("/me", ctrl.Me) // GET /api/a/me
}
