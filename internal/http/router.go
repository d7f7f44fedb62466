// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamneilroberts/roadtrip-buddy/internal/debug"
	"github.com/iamneilroberts/roadtrip-buddy/internal/http/handlers"
	"github.com/iamneilroberts/roadtrip-buddy/internal/http/middleware"
	"github.com/iamneilroberts/roadtrip-buddy/internal/maps"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/conversation"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
	"github.com/iamneilroberts/roadtrip-buddy/internal/prompt"
)

type RouterDeps struct {
	Recommender  handlers.RecommendService
	Conversation *conversation.Service
	Location     *location.Service
	Feed         *location.DeviceFeed
	Routes       *maps.RouteService
	Prompts      *prompt.Store
	Hub          *debug.Hub
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	chatHandler := handlers.NewChatHandler(deps.Recommender, deps.Conversation)
	r.POST("/api/chat", chatHandler.Chat)
	r.GET("/api/chat/:id/messages", chatHandler.Messages)
	r.DELETE("/api/chat/:id", chatHandler.Clear)
	r.GET("/api/conversations", chatHandler.Conversations)

	locationHandler := handlers.NewLocationHandler(deps.Location, deps.Feed)
	r.POST("/api/location/fix", locationHandler.Fix)
	r.GET("/api/location", locationHandler.Get)
	r.POST("/api/location/watch/start", locationHandler.StartWatch)
	r.POST("/api/location/watch/stop", locationHandler.StopWatch)
	r.DELETE("/api/location/history", locationHandler.ClearHistory)

	simulationHandler := handlers.NewSimulationHandler(deps.Location, deps.Routes)
	r.POST("/api/simulation/start", simulationHandler.Start)
	r.POST("/api/simulation/stop", simulationHandler.Stop)
	r.GET("/api/simulation", simulationHandler.Status)
	r.POST("/api/routes", simulationHandler.GenerateRoute)

	promptHandler := handlers.NewPromptHandler(deps.Prompts)
	r.GET("/api/prompts", promptHandler.List)
	r.GET("/api/prompts/selected", promptHandler.Selected)
	r.PUT("/api/prompts/selected", promptHandler.Select)

	debugHandler := handlers.NewDebugHandler(deps.Hub)
	r.GET("/api/debug/logs", debugHandler.Logs)
	r.DELETE("/api/debug/logs", debugHandler.Clear)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
