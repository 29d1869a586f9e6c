package handlers

import (
	"net/http"

	"biodata-api/internal/api/middleware"
	"biodata-api/internal/services"
	"biodata-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler serves account registration and token endpoints.
type AuthHandler struct {
	svc       services.AuthService
	validator *validator.Validate
}

func NewAuthHandler(svc services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{svc: svc, validator: validate}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account with the user role and returns a token for it.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body      dto.RegisterRequest true "Credentials"
// @Success      201  {object}  dto.AuthResponse "User created successfully"
// @Failure      400  {object}  dto.ErrorResponse "Invalid input or user already exists"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Error creating user")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    dto.NewUserResponse(user),
	})
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email and password for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body      dto.LoginRequest true "Credentials"
// @Success      200  {object}  dto.AuthResponse "Login successful"
// @Failure      400  {object}  dto.ErrorResponse "Invalid credentials"
// @Failure      500  {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, err)
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Server error")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.NewUserResponse(user),
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the presented token until it expires.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, err := middleware.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
		return
	}
	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err, "Error logging out")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// Me godoc
// @Summary      Current user
// @Description  Returns the identity carried by the presented token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, err := middleware.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
		return
	}
	resp := dto.MeResponse{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, resp)
}
