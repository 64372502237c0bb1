package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"berita-api/config"
	"berita-api/handlers"
	"berita-api/helper"
	"berita-api/repositories"
	"berita-api/routes"
	"berita-api/services"
	"berita-api/storage"
	"berita-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.LoadJWT()

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if os.Getenv("APP_ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := config.InitDB()
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}

	disk, err := storage.NewPublicDisk(config.StorageRoot())
	if err != nil {
		logger.Fatal("init storage", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	beritaRepo := repositories.NewBeritaRepository(db)
	komentarRepo := repositories.NewKomentarRepository(db)

	validator, err := validation.New(beritaRepo, userRepo)
	if err != nil {
		logger.Fatal("init validator", zap.Error(err))
	}
	httpHelper := helper.NewHTTPHelper(validator, logger)

	// Initialize services
	policy := services.OwnerPolicy{}
	authService := services.NewAuthService(userRepo, tokenRepo, validator)
	beritaService := services.NewBeritaService(beritaRepo, disk, validator, policy, logger)
	komentarService := services.NewKomentarService(komentarRepo, validator, policy)

	router := routes.Setup(routes.Dependencies{
		Logger:          logger,
		Helper:          httpHelper,
		TokenRepo:       tokenRepo,
		AuthHandler:     handlers.NewAuthHandler(authService, httpHelper),
		BeritaHandler:   handlers.NewBeritaHandler(beritaService, httpHelper),
		KomentarHandler: handlers.NewKomentarHandler(komentarService, httpHelper),
		StorageRoot:     disk.Root(),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
