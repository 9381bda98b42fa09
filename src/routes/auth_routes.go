package routes

import (
	"Backend-StudentHub/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// authRoutes - register/login/logout, no auth gate.
func authRoutes(router fiber.Router, ac *controllers.AuthController) {
	auth := router.Group("/auth")

	auth.Post("/register", ac.Register)
	auth.Post("/login", ac.Login)
	auth.Post("/logout", ac.Logout)
}
