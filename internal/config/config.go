package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string

	// Metadata store
	MetadataBackend string // "file" or "postgres"
	DataDir         string // holds metadata.json and the blobs directory
	DatabaseURL     string // required when MetadataBackend is "postgres"

	// Blob store
	BlobBackend    string // "local" or "minio"
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// Upload limits
	MaxUploadBytes int64

	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		MetadataBackend: getEnv("METADATA_BACKEND", "file"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),

		BlobBackend:    getEnv("BLOB_BACKEND", "local"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "fileshelf"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",

		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),

		// Debug defaults to true outside prod
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
