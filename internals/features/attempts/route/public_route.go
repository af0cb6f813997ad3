// file: internals/features/attempts/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "quizforge_backend/internals/features/attempts/controller"
	"quizforge_backend/internals/middlewares"
)

/*
Note:
- Parent router `r` is unauthenticated (prefix: /api/public).
- Resulting paths:
  - GET  /api/public/exams/:id/access
  - POST /api/public/exams/:id/submit (rate limited per IP)
*/

func AttemptsPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attemptController.NewPublicExamController(db)

	exams := r.Group("/exams")
	exams.Get("/:id/access", ctrl.Access)
	exams.Post("/:id/submit", middlewares.SubmitRateLimiter(), ctrl.Submit)
}
