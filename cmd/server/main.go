package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"fileshelf/internal/config"
	"fileshelf/internal/handler"
	"fileshelf/internal/middleware"
	"fileshelf/internal/mimetypes"
	"fileshelf/internal/service"
	"fileshelf/internal/store/blob"
	"fileshelf/internal/store/metadata"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"metadata_backend", cfg.MetadataBackend,
		"blob_backend", cfg.BlobBackend,
	)

	ctx := context.Background()

	// Metadata store
	var metaStore metadata.Store
	switch cfg.MetadataBackend {
	case "postgres":
		store, err := metadata.NewPostgresStore(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			log.Fatalf("Failed to open postgres metadata store: %v", err)
		}
		metaStore = store
	case "file":
		store, err := metadata.NewFileStore(cfg.DataDir, logger)
		if err != nil {
			log.Fatalf("Failed to open file metadata store: %v", err)
		}
		metaStore = store
	default:
		log.Fatalf("Unknown metadata backend %q", cfg.MetadataBackend)
	}
	defer metaStore.Close()

	// Blob store
	var blobStore blob.Store
	switch cfg.BlobBackend {
	case "minio":
		store, err := blob.NewMinioStore(ctx, blob.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			log.Fatalf("Failed to open minio blob store: %v", err)
		}
		blobStore = store
	case "local":
		store, err := blob.NewLocalStore(filepath.Join(cfg.DataDir, "blobs"))
		if err != nil {
			log.Fatalf("Failed to open local blob store: %v", err)
		}
		blobStore = store
	default:
		log.Fatalf("Unknown blob backend %q", cfg.BlobBackend)
	}

	logger.Info("stores opened")

	// Content type registry for downloads
	mimeRegistry, err := mimetypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load content type registry: %v", err)
	}

	// Services share one mutex so every document rewrite is serialized
	var treeMu sync.Mutex
	folderService := service.NewFolderService(metaStore, blobStore, &treeMu, logger)
	fileService := service.NewFileService(metaStore, blobStore, &treeMu, logger)
	structureService := service.NewStructureService(metaStore, logger)

	// Handlers
	folderHandler := handler.NewFolderHandler(folderService, logger)
	fileHandler := handler.NewFileHandler(fileService, mimeRegistry, cfg.MaxUploadBytes, logger)
	structureHandler := handler.NewStructureHandler(structureService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", structureHandler.HealthCheck)

	// Structure route
	mux.HandleFunc("GET /api/structure", structureHandler.GetStructure)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)

	// File routes
	mux.HandleFunc("POST /api/files", fileHandler.UploadFiles)
	mux.HandleFunc("GET /api/files/{id}/content", fileHandler.GetContent)
	mux.HandleFunc("PATCH /api/files/{id}", fileHandler.UpdateFile)
	mux.HandleFunc("DELETE /api/files/{id}", fileHandler.DeleteFile)

	// Build middleware chain (applied in reverse order, CORS outermost)
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
