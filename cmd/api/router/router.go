package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summary-share/cmd/api/auth"
	"summary-share/cmd/api/handlers"
	"summary-share/cmd/api/middleware"
	"summary-share/cmd/api/services"
	"summary-share/repositories"
)

// Deps carries the wired services the router needs.
type Deps struct {
	Summaries      *services.SummaryService
	Auth           *services.AuthService
	JWT            *auth.JWTManager
	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handlers.RegisterHandler(deps.Auth))
			authGroup.POST("/login", handlers.LoginHandler(deps.Auth))
			authGroup.POST("/refresh", handlers.RefreshHandler(deps.Auth))
		}

		users := api.Group("/users", middleware.RequireAuth(deps.JWT))
		{
			users.GET("/me", handlers.MeHandler(deps.Auth))
			users.DELETE("/me", handlers.DeleteMeHandler(deps.Auth))
		}

		summary := api.Group("/summary")
		{
			// Public reads resolve the viewer when a token is present.
			summary.GET("", middleware.OptionalAuth(deps.JWT), handlers.ListSummariesHandler(deps.Summaries))
			summary.GET("/search", middleware.OptionalAuth(deps.JWT), handlers.SearchSummariesHandler(deps.Summaries))
			summary.GET("/id/:id", middleware.OptionalAuth(deps.JWT), handlers.GetSummaryHandler(deps.Summaries))

			authed := summary.Group("", middleware.RequireAuth(deps.JWT))
			{
				authed.POST("/website", handlers.CreateWebsiteSummaryHandler(deps.Summaries))
				authed.POST("/text", handlers.CreateTextSummaryHandler(deps.Summaries))
				authed.POST("/file", handlers.CreateFileSummaryHandler(deps.Summaries))
				authed.DELETE("/id/:id", handlers.DeleteSummaryHandler(deps.Summaries))
				authed.POST("/id/:id/like", handlers.ReactionHandler(deps.Summaries, repositories.ReactionLike))
				authed.POST("/id/:id/dislike", handlers.ReactionHandler(deps.Summaries, repositories.ReactionDislike))
				authed.POST("/id/:id/favorite", handlers.ReactionHandler(deps.Summaries, repositories.ReactionFavorite))
			}
		}
	}

	return r
}
