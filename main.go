package main

import (
	"log"
	"time"

	"todoly-be/internal/cache"
	"todoly-be/internal/config"
	"todoly-be/internal/controllers"
	"todoly-be/internal/database"
	"todoly-be/internal/jwt"
	"todoly-be/internal/middleware"
	"todoly-be/internal/repository"
	"todoly-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Initialize JWT service
	tokenTTL := time.Duration(cfg.JWTTTLMinutes) * time.Minute
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, tokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	todoService := service.NewTodoService(todoRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, tokenTTL)
	todoController := controllers.NewTodoController(todoService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Public auth routes with stricter rate limiting
		authPublic := api.Group("/auth/public")
		authPublic.Use(authRateLimiter.LimitMiddleware())
		{
			authPublic.GET("/search", authController.CheckEmail)
			authPublic.POST("/sign-up", authController.SignUp)
			authPublic.POST("/login", authController.Login)
		}

		// Account routes - require a verified bearer token
		authPrivate := api.Group("/auth/private")
		authPrivate.Use(middleware.AuthMiddleware(jwtService))
		{
			authPrivate.DELETE("/delete-account", authController.DeleteAccount)
		}

		// Todo routes - every operation is scoped to the verified caller
		todos := api.Group("/todos/private")
		todos.Use(middleware.AuthMiddleware(jwtService))
		{
			todos.GET("", todoController.ListTodos)
			todos.POST("", todoController.CreateTodo)

			// The :id routes pass through the fetch-by-id gate first
			byID := todos.Group("/todos")
			byID.Use(middleware.TodoLoader(todoService))
			{
				byID.PATCH("/:id", todoController.UpdateTodo)
				byID.DELETE("/:id", todoController.DeleteTodo)
			}
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
