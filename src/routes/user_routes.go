package routes

import (
	"Backend-StudentHub/src/controllers"
	"Backend-StudentHub/src/middleware"
	"Backend-StudentHub/src/utils"

	"github.com/gofiber/fiber/v2"
)

// userRoutes - self-service profile endpoints, any authenticated role.
func userRoutes(router fiber.Router, tm *utils.TokenManager, uc *controllers.UserController) {
	users := router.Group("/users")
	users.Use(middleware.AuthJWT(tm))

	users.Get("/me", uc.GetMe)
	users.Put("/me", uc.UpdateMe)
	users.Post("/me/profile-picture", uc.UploadMyPicture)
}
