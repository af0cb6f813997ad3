package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "quizforge_backend/internals/features/classes/controller"
	ossHelper "quizforge_backend/internals/helpers/oss"
)

/*
Note:
- Parent router `r` already carries AuthMiddleware (prefix: /api/a).
- Resulting paths:
  - /api/a/classes/...
  - /api/a/students/...
  - /api/a/materials/...
*/

func ClassesTeacherRoutes(r fiber.Router, db *gorm.DB, ossClient *ossHelper.Client) {
	// ============================
	// CLASSES -> /api/a/classes
	// ============================
	clsCtrl := classController.NewClassController(db)
	classes := r.Group("/classes")

	classes.Get("/", clsCtrl.List)        // GET    /api/a/classes?q=&page=&per_page=
	classes.Post("/", clsCtrl.Create)     // POST   /api/a/classes
	classes.Get("/:id", clsCtrl.GetByID)  // GET    /api/a/classes/:id
	classes.Patch("/:id", clsCtrl.Patch)  // PATCH  /api/a/classes/:id
	classes.Delete("/:id", clsCtrl.Delete) // DELETE /api/a/classes/:id

	// ============================
	// STUDENTS -> /api/a/students
	// ============================
	stuCtrl := classController.NewStudentController(db)
	students := r.Group("/students")

	students.Get("/", stuCtrl.List)         // GET    /api/a/students?class_id=&q=
	students.Post("/", stuCtrl.Create)      // POST   /api/a/students
	students.Patch("/:id", stuCtrl.Patch)   // PATCH  /api/a/students/:id
	students.Delete("/:id", stuCtrl.Delete) // DELETE /api/a/students/:id

	// ============================
	// MATERIALS (OSS uploads) -> /api/a/materials
	// ============================
	matCtrl := classController.NewMaterialController(db, ossClient)
	materials := r.Group("/materials")

	materials.Get("/", matCtrl.List)         // GET    /api/a/materials?class_id=
	materials.Post("/", matCtrl.Create)      // POST   /api/a/materials (multipart)
	materials.Delete("/:id", matCtrl.Delete) // DELETE /api/a/materials/:id
}
