package router

import (
	"time"

	"cashtrack/api"
	"cashtrack/config"
	_ "cashtrack/docs"
	"cashtrack/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires every route.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		authHandler := api.NewAuthHandler(cfg)

		loginLimit := middleware.LoginRateLimit(
			cfg.RateLimit.MaxAttempts,
			time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
		)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", loginLimit, authHandler.Register)
			auth.POST("/login", loginLimit, authHandler.Login)
		}

		// Everything below requires a valid token for an active account.
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(), middleware.RequireActiveUser())
		{
			authorized.GET("/auth/me", authHandler.Me)

			userHandler := api.NewUserHandler()
			users := authorized.Group("/users")
			{
				users.GET("/profile", userHandler.GetProfile)
				users.PUT("/profile", userHandler.UpdateProfile)
			}

			inflowHandler := api.NewInflowHandler()
			inflows := authorized.Group("/inflows")
			{
				inflows.POST("", inflowHandler.Create)
				inflows.GET("", inflowHandler.List)
				inflows.GET("/:id", inflowHandler.Get)
				inflows.PUT("/:id", inflowHandler.Update)
				inflows.DELETE("/:id", inflowHandler.Delete)
			}

			outflowHandler := api.NewOutflowHandler()
			outflows := authorized.Group("/outflows")
			{
				outflows.POST("", outflowHandler.Create)
				outflows.GET("", outflowHandler.List)
				outflows.GET("/:id", outflowHandler.Get)
				outflows.PUT("/:id", outflowHandler.Update)
				outflows.DELETE("/:id", outflowHandler.Delete)
			}

			summaryHandler := api.NewSummaryHandler()
			summary := authorized.Group("/summary")
			{
				summary.GET("/daily", summaryHandler.Daily)
				summary.GET("/range", summaryHandler.Range)
				summary.GET("/history", summaryHandler.History)
			}

			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.CSV)
				export.GET("/excel", exportHandler.Excel)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware allows cross-origin API access.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
