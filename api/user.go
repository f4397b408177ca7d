package api

import (
	"strings"

	"cashtrack/database"
	"cashtrack/middleware"
	"cashtrack/models"

	"github.com/gin-gonic/gin"
)

// UserHandler serves profile reads and updates.
type UserHandler struct{}

// NewUserHandler creates a UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// UpdateProfileRequest is the partial profile update payload.
type UpdateProfileRequest struct {
	BusinessName string `json:"businessName" binding:"omitempty,max=100"`
	BusinessType string `json:"businessType" binding:"omitempty,max=50"`
}

// GetProfile returns the caller's profile
// @Summary Get profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "Profile retrieved successfully"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, "User no longer exists")
		return
	}
	Success(c, "Profile retrieved successfully", user)
}

// UpdateProfile updates business name and type
// @Summary Update profile
// @Description Updates businessName and/or businessType; blank fields are left unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} Response{data=models.User} "Profile updated successfully"
// @Failure 400 {object} Response "Invalid payload"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid payload")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "User not found")
		return
	}

	updates := make(map[string]interface{})
	if name := strings.TrimSpace(req.BusinessName); name != "" {
		updates["business_name"] = name
		user.BusinessName = name
	}
	if typ := strings.TrimSpace(req.BusinessType); typ != "" {
		updates["business_type"] = typ
		user.BusinessType = typ
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Failed to update profile"))
			return
		}
	}

	Success(c, "Profile updated successfully", user)
}
