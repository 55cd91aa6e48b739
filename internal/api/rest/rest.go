package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/cedrichille/monopoly-companion-app/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Reference data (public read access)
		v1.GET("/game-versions", handler.ListGameVersions)
		v1.GET("/properties", handler.ListProperties)

		// Session lifecycle
		v1.POST("/game", handler.SetupGame)
		v1.POST("/game/players", handler.RegisterPlayers)
		v1.GET("/game", handler.GetGame)
		v1.DELETE("/game", middleware.Auth(auth), handler.ResetGame)

		// Derived views
		v1.GET("/game/ownership", handler.GetOwnership)
		v1.GET("/game/net-worth", handler.GetNetWorths)
		v1.GET("/game/net-worth/log", handler.GetNetWorthLog)
		v1.GET("/game/transactions", handler.ListTransactions)
		v1.GET("/game/audit", handler.Audit)

		actions := v1.Group("/game/actions")
		{
			actions.POST("/purchase", handler.Purchase)
			actions.POST("/rent", handler.Rent)
			actions.POST("/go", handler.PassGo)
			actions.POST("/build", handler.Build)
			actions.POST("/mortgage", handler.Mortgage)
			actions.POST("/unmortgage", handler.Unmortgage)
			actions.POST("/tax", handler.Tax)
			actions.POST("/special-field", handler.SpecialField)
			actions.POST("/jail", handler.Jail)
			actions.POST("/trade", handler.Trade)
		}

		v1.POST("/game/turns/next", handler.NextTurn)
		v1.POST("/game/turns/previous", handler.PreviousTurn)

		// Admin (requires authentication)
		v1.POST("/admin/reference-data/reload", middleware.Auth(auth), handler.ReloadReferenceData)
	}
}
