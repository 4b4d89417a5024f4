package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jairomatosve/voyagedesigner/internal/auth"
	"github.com/jairomatosve/voyagedesigner/internal/controllers"
	"github.com/jairomatosve/voyagedesigner/internal/middleware"
)

func ActivityRoutes(r *gin.Engine, provider auth.Provider) {
	activities := r.Group("/api/activities")
	activities.Use(middleware.RequireAuth(provider))
	{
		activities.PUT("/:id/status", controllers.UpdateActivityStatus)
	}
}
