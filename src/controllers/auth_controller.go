package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"Backend-StudentHub/src/models"
	"Backend-StudentHub/src/services/apperrors"
	"Backend-StudentHub/src/services/auth"
	"Backend-StudentHub/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthService is the slice of the auth service the controller needs.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type AuthController struct {
	svc      AuthService
	tokens   *utils.TokenManager
	limiter  *auth.RateLimiter
	validate *validator.Validate
}

func NewAuthController(svc AuthService, tokens *utils.TokenManager, limiter *auth.RateLimiter, validate *validator.Validate) *AuthController {
	return &AuthController{svc: svc, tokens: tokens, limiter: limiter, validate: validate}
}

// Register godoc
// @Summary Register a new student account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "Registration payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ac.validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	user, err := ac.svc.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return utils.HandleError(c, fiber.StatusBadRequest, "Email already used")
		}
		log.Println("❌ Register failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered",
		"user":    user,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	if ac.limiter.IsLimited(c.Context(), req.Email) {
		remaining := ac.limiter.RemainingCooldown(c.Context(), req.Email)
		return utils.HandleError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remaining.Minutes()), int(remaining.Seconds())%60))
	}

	user, err := ac.svc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		ac.limiter.RegisterFailure(c.Context(), req.Email)
		// unknown email and wrong password answer identically
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	token, err := ac.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		log.Println("❌ Token generation failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server error")
	}

	ac.limiter.Reset(c.Context(), req.Email)

	return c.JSON(fiber.Map{
		"message": "Login success",
		"user":    user,
		"token":   token,
	})
}

// Logout godoc
// @Summary Logout and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	// tokens stay valid until natural expiry; logout only drops the cookie
	c.ClearCookie("token")
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}
