package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/translationdesk/platform-go/handlers"
	"github.com/translationdesk/platform-go/middleware"
	"github.com/translationdesk/platform-go/models"
)

func NewRouter(h *handlers.Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.POST("/login", h.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws", h.WS.Subscribe)

		users := auth.Group("/users")
		{
			users.POST("", middleware.AuthorizeAdmin(), h.User.Register)
			users.GET("/preferences", h.User.ListPreferences)
			users.GET("/preferences/:key", h.User.GetPreference)
			users.PUT("/preferences", h.User.SetPreference)
		}

		tickets := auth.Group("/tickets")
		{
			tickets.POST("", middleware.RequireRole(models.RoleAgent, models.RoleAdmin), h.Ticket.CreateTicket)
			tickets.GET("", h.Ticket.ListTickets)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.PUT("/:id", h.Ticket.SaveTicket)
			tickets.POST("/:id/close", h.Ticket.CloseTicket)
			tickets.POST("/:id/reopen", h.Ticket.ReopenTicket)
			tickets.POST("/:id/translations", middleware.RequireRole(models.RoleAgent, models.RoleAdmin), h.Translation.SubmitReply)
			tickets.POST("/:id/translations/:translationId/resend", middleware.RequireRole(models.RoleAgent, models.RoleAdmin), h.Translation.ResendRejected)
			tickets.POST("/:id/translations/:translationId/copied", h.Ticket.MarkCopied)
			tickets.DELETE("/:id/translations/:translationId", h.Ticket.DeleteTranslation)
		}

		auth.GET("/clients", h.Project.ListClients)
		auth.GET("/projects", h.Project.ListProjects)
		auth.GET("/projects/:id", h.Project.GetProject)

		verification := auth.Group("/verification")
		verification.Use(middleware.RequireRole(models.RoleLanguageExpert, models.RoleAdmin))
		{
			verification.POST("/:id/start", h.Verification.StartVerification)
			verification.POST("/:id/translations/:translationId/verify", h.Verification.Verify)
			verification.POST("/:id/translations/:translationId/reject", h.Verification.Reject)
			verification.GET("/verified", h.Verification.ListVerified)
		}
		auth.GET("/rejection-categories", h.Verification.RejectionCategories)

		pending := auth.Group("/pending")
		{
			pending.GET("", h.Pending.List)
			pending.POST("/reassign", h.Pending.Reassign)
			pending.POST("/abandon", h.Pending.Abandon)
			pending.GET("/handlers", h.Pending.Handlers)
		}

		replies := auth.Group("/standard-replies")
		{
			replies.GET("/project/:projectId", h.StandardReply.ListByProject)
			replies.POST("", middleware.AuthorizeAdmin(), h.StandardReply.Create)
			replies.PUT("/:id", middleware.AuthorizeAdmin(), h.StandardReply.Update)
			replies.DELETE("/:id", middleware.AuthorizeAdmin(), h.StandardReply.Delete)
		}
	}

	return r
}
