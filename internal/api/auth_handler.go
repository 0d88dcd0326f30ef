package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"astroguru-backend-go/internal/core"
	"astroguru-backend-go/internal/middleware"
	"astroguru-backend-go/internal/models"
)

// AuthHandler handles account-lifecycle API endpoints.
type AuthHandler struct {
	userService core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService) *AuthHandler {
	return &AuthHandler{userService: us}
}

// Signup handles the public POST /api/v1/auth/signup endpoint. It creates
// the Firebase account and then the profile document. A profile-write
// failure after account creation propagates to the caller; the account is
// left standing.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid signup request", Details: err.Error()})
		return
	}

	profile, err := h.userService.Signup(c.Request.Context(), req)
	if err != nil {
		log.Printf("Signup Error: userService.Signup failed for email %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign up", Details: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// InitializeUserProfile handles POST /api/v1/users/initialize. A client
// that authenticated through the Firebase client SDK calls this after
// login/signup to ensure a profile document exists. Relies on the auth
// middleware for identity.
func (h *AuthHandler) InitializeUserProfile(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)
	if uid == "" {
		log.Println("InitializeUserProfile Error: userID not found in context. Auth middleware might not have run or failed.")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
		return
	}
	email := c.GetString(middleware.ContextUserEmail)
	displayName := c.GetString(middleware.ContextDisplayName)

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), uid, email, displayName)
	if err != nil {
		log.Printf("InitializeUserProfile Error: userService.GetOrCreate failed for userID %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize user profile", Details: err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, user)
	} else {
		c.JSON(http.StatusOK, user)
	}
}
