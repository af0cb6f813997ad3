// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptRoute "quizforge_backend/internals/features/attempts/route"
	classRoute "quizforge_backend/internals/features/classes/route"
	dashboardRoute "quizforge_backend/internals/features/dashboard/route"
	examRoute "quizforge_backend/internals/features/exams/route"
	teacherRoute "quizforge_backend/internals/features/teachers/route"
	ossHelper "quizforge_backend/internals/helpers/oss"
	authmw "quizforge_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three API surfaces:
//   - /api/auth    : register/login (no token)
//   - /api/public  : student access gate + submit (no token)
//   - /api/a       : everything teacher-facing (JWT)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// --- AUTH (public) ---
	teacherRoute.AuthRoutes(api.Group("/auth"), db)

	// --- PUBLIC (students, no account) ---
	public := api.Group("/public")
	attemptRoute.AttemptsPublicRoutes(public, db)

	// --- TEACHER (JWT) ---
	protected := api.Group("/a", authmw.AuthMiddleware(db))
	teacherRoute.MeRoutes(protected, db)

	ossClient, err := ossHelper.NewClientFromEnv()
	if err != nil {
		// uploads are optional in local dev; material create will 503
		log.Printf("[ROUTES] OSS client unavailable: %v", err)
		ossClient = nil
	}
	classRoute.ClassesTeacherRoutes(protected, db, ossClient)
	examRoute.ExamsTeacherRoutes(protected, db)
	attemptRoute.AttemptsTeacherRoutes(protected, db)
	dashboardRoute.DashboardTeacherRoutes(protected, db)
}
