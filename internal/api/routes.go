package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"astroguru-backend-go/internal/config"
	"astroguru-backend-go/internal/core"
	"astroguru-backend-go/internal/db"
	"astroguru-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers
// and middleware. Global middleware (logging, recovery, CORS) is applied
// to the router before this function is called, in main.go.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	userService core.UserService,
	readingService core.ReadingService,
	settingsService core.SettingsService,
	notificationService core.NotificationService,
) {
	// The Firebase Auth client must be available after db.InitFirestore().
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized. Routes will not be set up.")
		panic("Firebase Auth client is nil during route setup. Ensure db.InitFirestore() was called and succeeded.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)
	adminPolicy := core.NewAdminPolicy(appConfig.AdminEmailList())
	if len(appConfig.AdminEmailList()) == 0 {
		logger.Warn("ADMIN_EMAILS is empty: no account will pass the admin gate.")
	}

	// --- Initialize Handlers ---
	authHandler := NewAuthHandler(userService)
	userHandler := NewUserHandler(userService, adminPolicy)
	readingHandler := NewReadingHandler(readingService)
	adminHandler := NewAdminHandler(settingsService, userService, notificationService)

	apiV1 := router.Group("/api/v1")
	{
		// --- Account lifecycle ---
		apiV1.POST("/auth/signup", authHandler.Signup)

		userGroup := apiV1.Group("/users")
		{
			// Called after client-side Firebase login/signup to ensure a
			// backend profile exists.
			userGroup.POST("/initialize", authMW.VerifyToken(), authHandler.InitializeUserProfile)
			userGroup.GET("/me", authMW.VerifyToken(), userHandler.GetCurrentUserProfile)
		}

		// --- Readings (all require authentication) ---
		readingsGroup := apiV1.Group("/readings", authMW.VerifyToken())
		{
			readingsGroup.POST("/chat", readingHandler.Chat)
			readingsGroup.POST("/horoscope", readingHandler.Horoscope)
			readingsGroup.POST("/porondam", readingHandler.Porondam)
			readingsGroup.POST("/manuscript", readingHandler.Manuscript)
		}

		// --- Broadcasts visible to any authenticated user ---
		apiV1.GET("/notifications", authMW.VerifyToken(), adminHandler.ListNotifications)

		// --- Administration (token + configured admin policy) ---
		adminGroup := apiV1.Group("/admin", authMW.VerifyToken(), middleware.RequireAdmin(adminPolicy))
		{
			adminGroup.GET("/config/gemini-key", adminHandler.GetGeminiKeyStatus)
			adminGroup.PUT("/config/gemini-key", adminHandler.SetGeminiKey)
			adminGroup.DELETE("/config/gemini-key", adminHandler.DeleteGeminiKey)

			adminGroup.GET("/users", adminHandler.ListUsers)

			adminGroup.POST("/notifications", adminHandler.CreateNotification)
			adminGroup.GET("/notifications", adminHandler.ListNotifications)
			adminGroup.DELETE("/notifications/:id", adminHandler.DeleteNotification)
		}
	}

	// --- General Health Check Endpoint ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Astroguru backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
