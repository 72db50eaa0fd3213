package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"surfquest/server/internal/api"
	"surfquest/server/internal/config"
	"surfquest/server/internal/database"
	"surfquest/server/internal/models"
	"surfquest/server/internal/services"
	"surfquest/server/internal/utils"
)

func main() {
	// Load environment variables from a .env file when present; production
	// environments set them directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("ℹ️ no .env file found, using system environment")
	} else {
		log.Printf("✅ environment loaded from .env file")
	}

	cfg := config.Load()

	// Log the database target with the password masked.
	safeURL := cfg.DatabaseURL
	if idx := strings.Index(safeURL, "@"); idx > 0 {
		if schemeIdx := strings.Index(safeURL, "://"); schemeIdx > 0 {
			safeURL = safeURL[:schemeIdx+3] + "***@" + safeURL[idx+1:]
		}
	}
	log.Printf("📋 DATABASE_URL: %s", safeURL)

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ PostgreSQL connection failed: %v", err)
	}
	defer database.ClosePostgres(db)

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ database migrations completed")

	// Redis backs the refresh-token store. Without it the server still runs,
	// but refresh tokens can no longer be revoked.
	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️ Redis connection failed: %v (refresh tokens will not be revocable)", err)
		redisClient = nil
	}
	defer database.CloseRedis(redisClient)

	tokens := utils.NewTokenManager(cfg.JWTSecret, redisClient, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	userService := services.NewUserService(db)
	geoService := services.NewGeoService(db)
	zoneService := services.NewSurfZoneService(db)
	spotService := services.NewSurfSpotService(db)
	conditionService := services.NewConditionService(db)
	reviewService := services.NewReviewService(db)

	authController := api.NewAuthController(userService, tokens)
	userController := api.NewUserController(userService)
	geoController := api.NewGeoController(geoService)
	zoneController := api.NewSurfZoneController(zoneService)
	spotController := api.NewSurfSpotController(spotService)
	conditionController := api.NewConditionController(conditionService)
	reviewController := api.NewReviewController(reviewService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Middleware goes in before any route: gin fixes each route's handler
	// chain at registration time.
	r.Use(api.RequestLogger())
	r.Use(api.CORS())

	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "SurfQuest API",
			"version": "1.0.0",
		})
	})

	authRequired := api.RequireAuth(tokens)

	// JWT issuance and refresh
	loginGroup := r.Group("/api/login")
	{
		loginGroup.POST("/", authController.Login)
		loginGroup.POST("/refresh/", authController.Refresh)
	}

	apiGroup := r.Group("/api/v1")

	// Users: public registration and listing, self-only detail routes
	userGroup := apiGroup.Group("/users")
	{
		userGroup.GET("", userController.GetUsers)
		userGroup.POST("", userController.Register)
		userGroup.GET("/by-slug/:slug", userController.GetUserBySlug)
		userGroup.GET("/:id", authRequired, userController.GetUser)
		userGroup.PUT("/:id", authRequired, userController.UpdateUser)
		userGroup.DELETE("/:id", authRequired, userController.DeleteUser)
	}
	apiGroup.GET("/protected-endpoint", authRequired, userController.Protected)

	// Geography: public reads, authenticated seeding
	apiGroup.GET("/continents", geoController.GetContinents)
	apiGroup.GET("/continents/:id", geoController.GetContinent)
	apiGroup.POST("/continents", authRequired, geoController.CreateContinent)
	apiGroup.GET("/countries", geoController.GetCountries)
	apiGroup.GET("/countries/:id", geoController.GetCountry)
	apiGroup.POST("/countries", authRequired, geoController.CreateCountry)

	// Surf zones
	zoneGroup := apiGroup.Group("/surfzones")
	{
		zoneGroup.GET("", zoneController.GetZones)
		zoneGroup.GET("/:id", zoneController.GetZone)
		zoneGroup.POST("", authRequired, zoneController.CreateZone)
		zoneGroup.GET("/:id/images", zoneController.GetZoneImages)
		zoneGroup.POST("/:id/images", authRequired, zoneController.AddZoneImage)
	}
	apiGroup.GET("/surfzones-lite", zoneController.GetZonesLite)
	apiGroup.GET("/surfzones-detail/:id", zoneController.GetZoneDetail)

	// Surf spots
	spotGroup := apiGroup.Group("/surfspots")
	{
		spotGroup.GET("", spotController.GetSpots)
		spotGroup.GET("/:id", spotController.GetSpot)
		spotGroup.POST("", authRequired, spotController.CreateSpot)
		spotGroup.GET("/:id/images", spotController.GetSpotImages)
		spotGroup.POST("/:id/images", authRequired, spotController.AddSpotImage)
	}
	apiGroup.GET("/surfspots-lite", spotController.GetSpotsLite)
	apiGroup.GET("/surfspots-detail/:id", spotController.GetSpotDetail)

	// Conditions
	apiGroup.GET("/conditions", conditionController.GetConditions)
	apiGroup.GET("/conditions/:id", conditionController.GetCondition)
	apiGroup.POST("/conditions", authRequired, conditionController.CreateCondition)

	// Reviews: public feed, authenticated create, owner-scoped /user-reviews
	apiGroup.GET("/reviews", reviewController.GetReviews)
	apiGroup.POST("/reviews", authRequired, reviewController.CreateReview)
	reviewGroup := apiGroup.Group("/user-reviews", authRequired)
	{
		reviewGroup.GET("", reviewController.GetUserReviews)
		reviewGroup.GET("/:id", reviewController.GetUserReview)
		reviewGroup.PUT("/:id", reviewController.UpdateUserReview)
		reviewGroup.DELETE("/:id", reviewController.DeleteUserReview)
	}

	// Uploaded media and static assets
	r.Static(cfg.MediaURL, cfg.MediaRoot)
	r.Static(cfg.StaticURL, cfg.StaticRoot)

	log.Printf("🚀 SurfQuest API listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}
