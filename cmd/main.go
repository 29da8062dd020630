package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/innofund/innofund-server/internal/config"
	"github.com/innofund/innofund-server/internal/db"
	"github.com/innofund/innofund-server/internal/handlers"
	"github.com/innofund/innofund-server/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up MinIO before Mongo so a bad image config exits with nothing to close
	images, err := openImageStore(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	client, err := db.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer db.Disconnect(client)

	h := handlers.New(client.Database(cfg.DBName), images, cfg.RequestTimeout)

	// Initialize Fiber
	app := fiber.New(handlers.Config())
	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	h.Register(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown failed: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

// openImageStore returns nil when no MinIO endpoint is configured, which
// leaves image uploads disabled.
func openImageStore(cfg config.Config) (handlers.ImageStore, error) {
	if !cfg.ImagesEnabled() {
		return nil, nil
	}

	store, err := storage.NewImageStore(storage.MinioOptions{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}
