package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jairomatosve/voyagedesigner/internal/auth"
	"github.com/jairomatosve/voyagedesigner/internal/controllers"
	"github.com/jairomatosve/voyagedesigner/internal/middleware"
)

func TripRoutes(r *gin.Engine, provider auth.Provider) {
	trips := r.Group("/api/trips")
	trips.Use(middleware.RequireAuth(provider))
	{
		trips.GET("", controllers.ListTrips)
		trips.POST("", controllers.CreateTrip)
		trips.GET("/:id", controllers.GetTrip)

		trips.POST("/:id/generate", controllers.GenerateItinerary)
		trips.GET("/:id/itinerary", controllers.GetItinerary)
		trips.POST("/:id/reoptimize", controllers.Reoptimize)
		trips.POST("/:id/suggestions/:sid/decline", controllers.DeclineSuggestion)
		trips.POST("/:id/suggestions/:sid/accept", controllers.AcceptSuggestion)

		trips.GET("/:id/expenses", controllers.ListExpenses)
		trips.POST("/:id/expenses", controllers.CreateExpense)
	}
}
