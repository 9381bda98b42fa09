package routes

import (
	"Backend-StudentHub/src/controllers"
	"Backend-StudentHub/src/middleware"
	"Backend-StudentHub/src/models"
	"Backend-StudentHub/src/utils"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes - student management, admin allow-list on the whole group.
func adminRoutes(router fiber.Router, tm *utils.TokenManager, adc *controllers.AdminController) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthJWT(tm, models.RoleAdmin))

	admin.Get("/students/stats", adc.GetStudentStats)
	admin.Get("/students", adc.ListStudents)
	admin.Post("/students", adc.CreateStudent)
	admin.Put("/students/:id", adc.UpdateStudent)
	admin.Delete("/students/:id", adc.DeleteStudent)
	admin.Patch("/users/:id/role", adc.ChangeRole)
	admin.Post("/users/:id/profile-picture", adc.UploadUserPicture)
}
