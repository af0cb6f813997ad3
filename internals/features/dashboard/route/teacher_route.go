// file: internals/features/dashboard/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "quizforge_backend/internals/features/dashboard/controller"
)

// DashboardTeacherRoutes mounts GET /api/a/dashboard.
func DashboardTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)
	r.Get("/dashboard", ctrl.Summary)
}
