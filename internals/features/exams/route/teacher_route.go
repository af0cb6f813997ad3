package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "quizforge_backend/internals/features/exams/controller"
)

/*
Note:
- Parent router `r` already carries AuthMiddleware (prefix: /api/a).
- Resulting paths:
  - /api/a/exams/...
  - /api/a/questions/...
*/

func ExamsTeacherRoutes(r fiber.Router, db *gorm.DB) {
	// ============================
	// EXAMS (master) -> /api/a/exams
	// ============================
	examCtrl := examController.NewExamController(db)
	exams := r.Group("/exams")

	exams.Get("/", examCtrl.List)              // GET    /api/a/exams?class_id=&status=&q=&sort=
	exams.Post("/", examCtrl.Create)           // POST   /api/a/exams
	exams.Get("/:id", examCtrl.GetByID)        // GET    /api/a/exams/:id
	exams.Patch("/:id", examCtrl.Patch)        // PATCH  /api/a/exams/:id
	exams.Delete("/:id", examCtrl.Delete)      // DELETE /api/a/exams/:id
	exams.Post("/:id/publish", examCtrl.Publish) // POST /api/a/exams/:id/publish

	// ============================
	// QUESTIONS (question bank) -> /api/a/questions
	// ============================
	qCtrl := examController.NewQuestionController(db)
	questions := r.Group("/questions")

	questions.Get("/", qCtrl.List)          // GET    /api/a/questions?exam_id=
	questions.Post("/", qCtrl.Create)       // POST   /api/a/questions
	questions.Patch("/:id", qCtrl.Patch)    // PATCH  /api/a/questions/:id
	questions.Delete("/:id", qCtrl.Delete)  // DELETE /api/a/questions/:id
}
