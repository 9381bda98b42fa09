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

// ProfileService is the slice of the users service the controllers need.
type ProfileService interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, req *models.UpdateUserRequest) error
	SetProfileImage(ctx context.Context, id, publicPath string) (*models.User, string, error)
}

// UploadStore persists multipart files and hands out their public paths.
type UploadStore interface {
	Save(c *fiber.Ctx) (string, error)
	ScheduleCleanup(publicPath string)
}

type UserController struct {
	profiles ProfileService
	store    UploadStore
	validate *validator.Validate
}

func NewUserController(profiles ProfileService, store UploadStore, validate *validator.Validate) *UserController {
	return &UserController{profiles: profiles, store: store, validate: validate}
}

// GetMe godoc
// @Summary Get the caller's own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me [get]
func (uc *UserController) GetMe(c *fiber.Ctx) error {
	userID := middleware.CallerID(c)

	user, err := uc.profiles.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("❌ Fetching profile failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(user)
}

// UpdateMe godoc
// @Summary Update the caller's own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /users/me [put]
func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := uc.validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	err := uc.profiles.Update(c.Context(), middleware.CallerID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmailTaken):
			return utils.HandleError(c, fiber.StatusBadRequest, "Email already used")
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrInvalidID):
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("❌ Profile update failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated",
	})
}

// UploadMyPicture godoc
// @Summary Upload the caller's profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (any field name)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /users/me/profile-picture [post]
func (uc *UserController) UploadMyPicture(c *fiber.Ctx) error {
	publicPath, err := uc.store.Save(c)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoFile) {
			return utils.HandleError(c, fiber.StatusBadRequest, "No file uploaded")
		}
		log.Println("❌ Saving upload failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	user, oldPath, err := uc.profiles.SetProfileImage(c.Context(), middleware.CallerID(c), publicPath)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("❌ Updating profile picture failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	uc.store.ScheduleCleanup(oldPath)

	return c.JSON(fiber.Map{
		"message": "Profile picture updated",
		"user":    user,
	})
}
