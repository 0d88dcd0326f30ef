package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"astroguru-backend-go/internal/core"
	"astroguru-backend-go/internal/middleware"
)

// UserHandler handles user-profile related API endpoints.
type UserHandler struct {
	userService core.UserService
	adminPolicy *core.AdminPolicy
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService, policy *core.AdminPolicy) *UserHandler {
	return &UserHandler{userService: us, adminPolicy: policy}
}

// GetCurrentUserProfile handles GET /api/v1/users/me. It returns the
// profile of the authenticated user together with the derived admin flag.
func (h *UserHandler) GetCurrentUserProfile(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)
	if uid == "" {
		log.Println("GetCurrentUserProfile Error: userID not found in context. Auth middleware might not have run or failed.")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User profile not found"})
			return
		}
		log.Printf("GetCurrentUserProfile Error: userService.GetByID failed for userID %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve user profile", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UserProfile: user,
		IsAdmin:     h.adminPolicy.IsAdmin(c.GetString(middleware.ContextUserEmail)),
	})
}
