package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultMongoTimeout applies when MONGODB_TIMEOUT is unset or not positive.
const DefaultMongoTimeout = 10 * time.Second

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Ollama    OllamaConfig
	Artifacts ArtifactsConfig
	MinIO     MinIOConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// PublicURL is the externally visible base used to build download links.
	PublicURL string
}

type MongoDBConfig struct {
	URI                string
	Database           string
	Timeout            time.Duration
	NotesCollection    string
	StudentsCollection string
	TestPlanCollection string
	// Backend selects the store implementation: "mongo" or "memory".
	Backend string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

type OllamaConfig struct {
	URL   string
	Model string
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
}

type ArtifactsConfig struct {
	Dir         string
	UniqueNames bool
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", 30)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", 0)
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "studydesk")
	viper.SetDefault("MONGODB_TIMEOUT", int(DefaultMongoTimeout/time.Second))
	viper.SetDefault("MONGODB_NOTES_COLLECTION", "notes")
	viper.SetDefault("MONGODB_STUDENTS_COLLECTION", "students")
	viper.SetDefault("MONGODB_TESTPLAN_COLLECTION", "test_plans")
	viper.SetDefault("STORE_BACKEND", "mongo")
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_USE_REDIS", false)
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("OLLAMA_URL", "http://localhost:11434")
	viper.SetDefault("OLLAMA_MODEL", "llama3:8b")
	viper.SetDefault("OLLAMA_TIMEOUT", 0)
	viper.SetDefault("ARTIFACT_DIR", "./tmp")
	viper.SetDefault("ARTIFACT_UNIQUE_NAMES", false)
	viper.SetDefault("MINIO_BUCKET", "studydesk")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  time.Duration(viper.GetInt("SERVER_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(viper.GetInt("SERVER_WRITE_TIMEOUT")) * time.Second,
			PublicURL:    viper.GetString("PUBLIC_URL"),
		},
		MongoDB: MongoDBConfig{
			URI:                viper.GetString("MONGODB_URI"),
			Database:           viper.GetString("MONGODB_DATABASE"),
			Timeout:            time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
			NotesCollection:    viper.GetString("MONGODB_NOTES_COLLECTION"),
			StudentsCollection: viper.GetString("MONGODB_STUDENTS_COLLECTION"),
			TestPlanCollection: viper.GetString("MONGODB_TESTPLAN_COLLECTION"),
			Backend:            strings.ToLower(viper.GetString("STORE_BACKEND")),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Ollama: OllamaConfig{
			URL:     strings.TrimRight(viper.GetString("OLLAMA_URL"), "/"),
			Model:   viper.GetString("OLLAMA_MODEL"),
			Timeout: time.Duration(viper.GetInt("OLLAMA_TIMEOUT")) * time.Second,
		},
		Artifacts: ArtifactsConfig{
			Dir:         viper.GetString("ARTIFACT_DIR"),
			UniqueNames: viper.GetBool("ARTIFACT_UNIQUE_NAMES"),
		},
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
		},
	}

	if cfg.Server.PublicURL == "" {
		host := cfg.Server.Host
		if host == "0.0.0.0" || host == "" {
			host = "localhost"
		}
		cfg.Server.PublicURL = "http://" + host + ":" + cfg.Server.Port
	}
	cfg.Server.PublicURL = strings.TrimRight(cfg.Server.PublicURL, "/")

	// Basic validation
	if cfg.MongoDB.Timeout <= 0 {
		cfg.MongoDB.Timeout = DefaultMongoTimeout
	}
	if cfg.MongoDB.Backend != "mongo" && cfg.MongoDB.Backend != "memory" {
		log.Printf("WARNING: unknown STORE_BACKEND %q; falling back to mongo", cfg.MongoDB.Backend)
		cfg.MongoDB.Backend = "mongo"
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
