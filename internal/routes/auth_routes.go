package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jairomatosve/voyagedesigner/internal/auth"
	"github.com/jairomatosve/voyagedesigner/internal/controllers"
	"github.com/jairomatosve/voyagedesigner/internal/middleware"
)

func AuthRoutes(r *gin.Engine, provider auth.Provider) {
	group := r.Group("/api/auth")
	{
		group.POST("/register", controllers.RegisterUser)
		group.POST("/login", controllers.LoginUser)
	}

	protected := r.Group("/api/auth")
	protected.Use(middleware.RequireAuth(provider))
	{
		protected.POST("/logout", controllers.LogoutUser)
		protected.GET("/me", controllers.Me)
	}
}
