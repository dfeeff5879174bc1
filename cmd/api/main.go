package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tasktracker/internal/config"
	"tasktracker/internal/database"
	"tasktracker/internal/middleware"
	"tasktracker/internal/modules/auth"
	"tasktracker/internal/modules/profile"
	"tasktracker/internal/modules/task"
	"tasktracker/internal/pkg/token"
	"tasktracker/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	codec := token.NewCodec(cfg.AccessSecret, cfg.AccessTTL, cfg.RefreshSecret, cfg.RefreshTTL)

	authService := auth.NewService(userRepo, refreshTokenRepo, codec, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService)

	taskService := task.NewService(taskRepo)
	taskHandler := task.NewHandler(taskService)

	profileService := profile.NewService(userRepo)
	profileHandler := profile.NewHandler(profileService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(codec))
		{
			taskHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
