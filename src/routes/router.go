package routes

import (
	"Backend-StudentHub/src/controllers"
	"Backend-StudentHub/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Tokens *utils.TokenManager
	Auth   *controllers.AuthController
	Users  *controllers.UserController
	Admin  *controllers.AdminController
}

// InitRoutes mounts the API under /api.
func InitRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	authRoutes(api, deps.Auth)
	userRoutes(api, deps.Tokens, deps.Users)
	adminRoutes(api, deps.Tokens, deps.Admin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
