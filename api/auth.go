package api

import (
	"log"
	"strings"

	"cashtrack/config"
	"cashtrack/database"
	"cashtrack/middleware"
	"cashtrack/models"
	"cashtrack/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	BusinessName string `json:"businessName" binding:"required,max=100" example:"Mama Nkechi Stores"`
	BusinessType string `json:"businessType" binding:"required,max=50" example:"retail"`
	Email        string `json:"email" binding:"required,email" example:"owner@example.com"`
	Password     string `json:"password" binding:"required,min=6,max=72" example:"secret123"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse carries a token and the authenticated user.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates a business account
// @Summary Register a new business account
// @Description Creates a user and returns a JWT so the client is logged in immediately.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} Response{data=AuthResponse} "User registered successfully"
// @Failure 400 {object} Response "Missing fields or email already taken"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Please provide all required fields")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		BadRequest(c, "User with this email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Failed to hash password")
		return
	}

	user := models.User{
		BusinessName: strings.TrimSpace(req.BusinessName),
		BusinessType: strings.TrimSpace(req.BusinessType),
		Email:        email,
		Password:     string(hashed),
		IsActive:     true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// The unique index catches races the pre-check missed.
		BadRequest(c, SafeErrorMessage(err, "User with this email already exists"))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "Failed to generate token")
		return
	}

	if h.cfg.Email.Enabled {
		if err := h.emailService.SendWelcomeEmail(user.Email, user.BusinessName); err != nil {
			log.Printf("welcome email to %s failed: %v", user.Email, err)
		}
	}

	Created(c, "User registered successfully", AuthResponse{Token: token, User: user})
}

// Login authenticates a business account
// @Summary Log in
// @Description Verifies credentials and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login details"
// @Success 200 {object} Response{data=AuthResponse} "Login successful"
// @Failure 400 {object} Response "Missing email or password"
// @Failure 401 {object} Response "Invalid credentials or inactive account"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Please provide email and password")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Unauthorized(c, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Invalid credentials")
		return
	}

	if !user.IsActive {
		Unauthorized(c, "Account is inactive")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "Failed to generate token")
		return
	}

	Success(c, "Login successful", AuthResponse{Token: token, User: user})
}

// Me returns the current account
// @Summary Get the logged-in user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "User retrieved successfully"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, "User no longer exists")
		return
	}
	Success(c, "User retrieved successfully", user)
}
