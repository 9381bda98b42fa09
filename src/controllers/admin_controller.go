package controllers

import (
	"context"
	"errors"
	"log"

	"Backend-StudentHub/src/middleware"
	"Backend-StudentHub/src/models"
	"Backend-StudentHub/src/services/apperrors"
	"Backend-StudentHub/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StudentService is the slice of the students service the admin controller
// needs.
type StudentService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req models.CreateStudentRequest) (*models.User, error)
	Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id string) error
	ChangeRole(ctx context.Context, callerID, id string, role models.Role) (*models.User, error)
	Stats(ctx context.Context) (*models.StudentStats, error)
}

type AdminController struct {
	students StudentService
	profiles ProfileService
	store    UploadStore
	validate *validator.Validate
}

func NewAdminController(students StudentService, profiles ProfileService, store UploadStore, validate *validator.Validate) *AdminController {
	return &AdminController{students: students, profiles: profiles, store: store, validate: validate}
}

// ListStudents godoc
// @Summary List all students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/students [get]
func (adc *AdminController) ListStudents(c *fiber.Ctx) error {
	students, err := adc.students.List(c.Context())
	if err != nil {
		log.Println("❌ Fetching students failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching students")
	}

	return c.JSON(students)
}

// CreateStudent godoc
// @Summary Create a student with the default password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateStudentRequest true "Student profile"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/students [post]
func (adc *AdminController) CreateStudent(c *fiber.Ctx) error {
	var req models.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := adc.validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	student, err := adc.students.Create(c.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return utils.HandleError(c, fiber.StatusBadRequest, "Email already exists")
		}
		log.Println("❌ Creating student failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

// UpdateStudent godoc
// @Summary Update a student's profile
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param body body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/students/{id} [put]
func (adc *AdminController) UpdateStudent(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := adc.validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	student, err := adc.students.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidID):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
		case errors.Is(err, apperrors.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		case errors.Is(err, apperrors.ErrEmailTaken):
			return utils.HandleError(c, fiber.StatusBadRequest, "Email already exists")
		}
		log.Println("❌ Updating student failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(student)
}

// DeleteStudent godoc
// @Summary Delete a student permanently
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/students/{id} [delete]
func (adc *AdminController) DeleteStudent(c *fiber.Ctx) error {
	err := adc.students.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidID):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
		case errors.Is(err, apperrors.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("❌ Deleting student failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Student deleted",
	})
}

// ChangeRole godoc
// @Summary Change a user's role between admin and student
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body models.ChangeRoleRequest true "New role"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id}/role [patch]
func (adc *AdminController) ChangeRole(c *fiber.Ctx) error {
	var req models.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if !req.Role.IsValid() {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid role value")
	}

	user, err := adc.students.ChangeRole(c.Context(), middleware.CallerID(c), c.Params("id"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidID):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid user id")
		case errors.Is(err, apperrors.ErrInvalidRole):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid role value")
		case errors.Is(err, apperrors.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, apperrors.ErrSelfDemotion):
			return utils.HandleError(c, fiber.StatusBadRequest, "You cannot remove your own admin role.")
		case errors.Is(err, apperrors.ErrLastAdmin):
			return utils.HandleError(c, fiber.StatusBadRequest, "Cannot demote the last remaining admin.")
		}
		log.Println("❌ Changing role failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Role updated",
		"user":    user,
	})
}

// UploadUserPicture godoc
// @Summary Upload a profile picture for any user
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param file formData file true "Image file (any field name)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id}/profile-picture [post]
func (adc *AdminController) UploadUserPicture(c *fiber.Ctx) error {
	publicPath, err := adc.store.Save(c)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoFile) {
			return utils.HandleError(c, fiber.StatusBadRequest, "No file uploaded")
		}
		log.Println("❌ Saving upload failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	user, oldPath, err := adc.profiles.SetProfileImage(c.Context(), c.Params("id"), publicPath)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidID):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid user id")
		case errors.Is(err, apperrors.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("❌ Updating profile picture failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	adc.store.ScheduleCleanup(oldPath)

	return c.JSON(fiber.Map{
		"message": "Profile picture updated",
		"user":    user,
	})
}

// GetStudentStats godoc
// @Summary Aggregate student statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StudentStats
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/students/stats [get]
func (adc *AdminController) GetStudentStats(c *fiber.Ctx) error {
	stats, err := adc.students.Stats(c.Context())
	if err != nil {
		log.Println("❌ Fetching student stats failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}

	return c.JSON(stats)
}
