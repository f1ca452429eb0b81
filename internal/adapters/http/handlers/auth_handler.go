package handlers

import (
	"errors"

	"hoteldesk/internal/adapters/http/middleware"
	"hoteldesk/internal/core/domain"
	"hoteldesk/internal/core/services"
	"hoteldesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents registration request body.
// Email or phone (or both) plus a password.
type RegisterRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest represents login request body. Identifier is an email
// address or phone number.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Register handles user registration
// @Summary Register new user
// @Description Register a front-desk user by email or phone
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.RegisterInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}

	if _, err := h.authService.Register(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, domain.ErrIdentifierRequired):
			return response.BadRequest(c, "Email or phone number is required.")
		case errors.Is(err, domain.ErrPasswordRequired):
			return response.BadRequest(c, "Password is required.")
		case errors.Is(err, domain.ErrPasswordTooShort):
			return response.BadRequest(c, "Password must be at least 6 characters long.")
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, "Email is already registered.")
		case errors.Is(err, domain.ErrPhoneTaken):
			return response.Conflict(c, "Phone number is already registered.")
		default:
			return response.InternalServerError(c, "Server error during registration")
		}
	}

	return response.CreatedMessage(c, "User registered successfully. Please log in.")
}

// Login handles user login
// @Summary Login user
// @Description Authenticate by email or phone and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} services.AuthResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Email/Phone and password are required")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid credentials")
		default:
			return response.InternalServerError(c, "Server error during login")
		}
	}

	return c.JSON(result)
}

// Me returns the caller's session claims
// @Summary Current session
// @Description Returns the identity claims of the presented token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} jwt.Claims
// @Failure 401 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "Authentication token required")
	}

	return c.JSON(fiber.Map{
		"id":    claims.UserID,
		"email": claims.Email,
		"phone": claims.Phone,
		"role":  claims.Role,
	})
}
