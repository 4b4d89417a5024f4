package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	ginlog "github.com/gin-contrib/logger"

	"github.com/jairomatosve/voyagedesigner/internal/ai"
	"github.com/jairomatosve/voyagedesigner/internal/auth"
	"github.com/jairomatosve/voyagedesigner/internal/cache"
	"github.com/jairomatosve/voyagedesigner/internal/config"
	"github.com/jairomatosve/voyagedesigner/internal/controllers"
	"github.com/jairomatosve/voyagedesigner/internal/logger"
	"github.com/jairomatosve/voyagedesigner/internal/middleware"
	"github.com/jairomatosve/voyagedesigner/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and the suggestion cache
	config.InitDB()
	config.InitRedis()

	provider := auth.FromEnv(config.DB)

	var generator ai.Generator = ai.MockGenerator{}
	generatorName := "mock"
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		generator = ai.NewGeminiGenerator(key, os.Getenv("GEMINI_MODEL"))
		generatorName = "gemini"
	}

	controllers.Setup(provider, generator, generatorName, cache.NewSuggestionStore(config.Redis))

	// Setup Gin router
	r := routes.SetupRouter(provider)

	// Recovery and request logging middleware
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at :" + port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
