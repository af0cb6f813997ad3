// file: internals/features/attempts/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "quizforge_backend/internals/features/attempts/controller"
)

/*
Note:
- Parent router `r` already carries AuthMiddleware (prefix: /api/a).
- Resulting paths:
  - GET /api/a/exams/:id/attempts
  - GET /api/a/attempts/:id
*/

func AttemptsTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attemptController.NewResultController(db)

	r.Get("/exams/:id/attempts", ctrl.ListByExam)
	r.Get("/attempts/:id", ctrl.Detail)
}
