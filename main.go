// @title Lumen CMS API
// @version 1.0
// @description Lumen CMS Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/config"
	_ "github.com/Lumen-Ecommerce/lumen-cms-backend/docs"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/middleware"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/routes/cms_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection (rate limiter)
	config.ConnectRedis()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // for the PDF download
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, gin.H{"status": "ok"}))
	})

	// Register API routes
	api := router.Group("/api/v1")

	// Admin dashboard (admin auth sits in front of this service)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupDashboardRoutes(adminGroup)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	defer config.CloseDB()
	defer config.CloseRedis()

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
