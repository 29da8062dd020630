package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort    = "5000"
	defaultDBHost  = "cluster0.fh7he.mongodb.net"
	defaultDBName  = "campaignDB"
	defaultMongo   = "mongodb://localhost:27017"
	defaultBucket  = "campaign-images"
	defaultTimeout = 10 * time.Second
)

// Config holds everything the server reads from the environment at startup.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	RequestTimeout time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// Load reads the configuration from environment variables, falling back to
// defaults for anything unset.
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", defaultPort),
		MongoURI:       mongoURI(),
		DBName:         getenv("DB_NAME", defaultDBName),
		RequestTimeout: defaultTimeout,
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getenv("MINIO_BUCKET", defaultBucket),
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}

	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		useSSL, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MINIO_USE_SSL %q: %w", v, err)
		}
		cfg.MinioUseSSL = useSSL
	}

	return cfg, nil
}

// ImagesEnabled reports whether an object store was configured for campaign images.
func (c Config) ImagesEnabled() bool {
	return c.MinioEndpoint != ""
}

// mongoURI prefers MONGO_URI, then an Atlas SRV string built from DB_USER and
// DB_PASS, then a local server.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		return defaultMongo
	}

	creds := url.UserPassword(user, os.Getenv("DB_PASS"))
	host := getenv("DB_HOST", defaultDBHost)
	return fmt.Sprintf("mongodb+srv://%s@%s/?retryWrites=true&w=majority&appName=Cluster0", creds.String(), host)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
