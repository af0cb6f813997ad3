// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"quizforge_backend/internals/configs"
)

// CorsMiddleware builds the CORS middleware. PUBLIC_ORIGIN is the frontend
// that renders shareable exam links, so it is always allowed.
func CorsMiddleware() fiber.Handler {
	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if o := strings.TrimSpace(configs.GetEnv("PUBLIC_ORIGIN")); o != "" {
		origins = append(origins, o)
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
