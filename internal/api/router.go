// Package api wires the HTTP surface of the round simulator.
package api

import (
	"net/http"

	"capsim-round/internal/api/handlers"
	"capsim-round/internal/api/middleware"
	"capsim-round/internal/simulation"
	"capsim-round/internal/store"

	"github.com/gin-gonic/gin"
)

type Options struct {
	CORSOrigins []string
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(engine *simulation.Engine, cache *store.RoundCache, opts Options) *gin.Engine {
	if engine == nil {
		engine = simulation.New(nil)
	}
	router := gin.New()

	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	roundHandler := handlers.NewRoundHandler(engine, cache)
	segmentHandler := handlers.NewSegmentHandler(engine.Catalog())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/segments", segmentHandler.ListSegments)
		api.GET("/segments/:name", segmentHandler.GetSegment)

		api.POST("/rounds", roundHandler.SimulateRound)
		api.POST("/rounds/compare", roundHandler.CompareProducts)
		api.GET("/rounds/:id", roundHandler.GetRound)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
