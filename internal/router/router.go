package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	"github.com/nogueira-gui/conecta-apiserver/internal/handler"
	"github.com/nogueira-gui/conecta-apiserver/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	userHandler *handler.UserHandler,
	chatHandler *handler.ChatHandler,
	reminderHandler *handler.ReminderHandler,
	contactHandler *handler.ContactHandler,
	supportHandler *handler.SupportHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Swagger API documentation (accessible in development environment)
	// Access at: http://localhost:8080/swagger/index.html
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	// Health check routes (no authentication required)
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes
	apiV1 := h.Group("/api/v1")
	{
		// ============ Public routes (no authentication required) ============
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.RefreshToken)
		}

		// ============ Protected routes (JWT authentication required) ============
		authorized := apiV1.Group("")
		authorized.Use(userHandler.AuthMiddleware())
		{
			// User management
			users := authorized.Group("/users")
			{
				users.GET("/me", userHandler.GetCurrentUser) // Get current user info
				users.GET("", userHandler.ListUsers)         // List users
				users.GET("/:id", userHandler.GetUser)       // Get user info
				users.DELETE("/:id", userHandler.DeleteUser) // Delete user
			}

			// Health reminders
			reminders := authorized.Group("/reminders")
			{
				reminders.POST("", reminderHandler.CreateReminder)
				reminders.GET("", reminderHandler.ListReminders)
				reminders.GET("/:id", reminderHandler.GetReminder)
				reminders.PUT("/:id", reminderHandler.UpdateReminder)
				reminders.DELETE("/:id", reminderHandler.DeleteReminder)
			}

			// Contact directory
			contacts := authorized.Group("/contacts")
			{
				contacts.POST("", contactHandler.CreateContact)
				contacts.GET("", contactHandler.ListContacts)
				contacts.GET("/emergency", contactHandler.ListEmergencyContacts)
				contacts.GET("/:id", contactHandler.GetContact)
				contacts.PUT("/:id", contactHandler.UpdateContact)
				contacts.POST("/:id/favorite", contactHandler.ToggleFavorite)
				contacts.DELETE("/:id", contactHandler.DeleteContact)
			}

			// Help center
			support := authorized.Group("/support")
			{
				support.GET("/faq", supportHandler.ListFAQ)
				support.GET("/tutorials", supportHandler.ListTutorials)
				support.POST("/tickets", supportHandler.CreateTicket)
				support.GET("/tickets", supportHandler.ListTickets)
				support.GET("/tickets/:id", supportHandler.GetTicket)
			}

			// Chat sessions
			sessions := authorized.Group("/chat/sessions")
			{
				sessions.POST("", chatHandler.CreateSession)
				sessions.GET("/:id", chatHandler.GetSession)
				sessions.DELETE("/:id", chatHandler.DeleteSession)
				sessions.POST("/:id/clear", chatHandler.ClearSession)
				sessions.POST("/:id/voice", chatHandler.SendVoiceMessage)
				sessions.POST("/:id/family", chatHandler.StartFamilySimulation)
			}
		}
	}

	// OpenAI-compatible API (protected)
	v1 := h.Group("/v1")
	v1.Use(userHandler.AuthMiddleware())
	{
		// Chat completions (OpenAI format)
		// POST /v1/chat/completions
		v1.POST("/chat/completions", chatHandler.CreateChatCompletion)
	}
}
