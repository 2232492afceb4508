// @title Petrocino Store API
// @version 1.0
// @description Storefront and CMS API for the Petrocino sports and automotive shops
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/product_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/middleware"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/routes/cms_routes"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/routes/store_routes"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection (rate limiter)
	config.ConnectRedis()

	// Initialize Cloudinary service for media uploads
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := product_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// ✅ Initialize Google OAuth for customer login
	config.InitGoogleOAuth()

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// ✅ Setup Admin Routes (at /api/v1/admin prefix)
	cms_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Register CMS routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupCategoryRoutes(adminGroup)
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupBrandRoutes(adminGroup)
	cms_routes.SetupModelRoutes(adminGroup)
	cms_routes.SetupLeagueRoutes(adminGroup)
	cms_routes.SetupSectionRoutes(adminGroup)
	cms_routes.SetupSettingsRoutes(adminGroup)
	cms_routes.SetupQuestionRoutes(adminGroup)

	// Public storefront (no rate limiter)
	store_routes.SetupStoreAuthRoutes(api)
	store_routes.SetupStorefrontRoutes(api)

	// Swagger docs. `docs/` is generated output and not checked in: run
	// `swag init`, then add the blank import
	// _ "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/docs"
	// above so the generated doc.json is registered with the handler.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
