package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jairomatosve/voyagedesigner/internal/auth"
)

func SetupRouter(provider auth.Provider) *gin.Engine {
	r := gin.New()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	AuthRoutes(r, provider)
	TripRoutes(r, provider)
	ActivityRoutes(r, provider)

	return r
}
