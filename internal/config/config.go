package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port string

	// Admin credentials. PasswordHash is a bcrypt hash; generate one with cmd/hashpw.
	AdminUsername     string
	AdminPasswordHash string

	// Session storage: "memory" (default) or "redis".
	SessionBackend string
	RedisAddr      string
	RedisPassword  string

	// Project persistence: "file" (default) or "postgres".
	ProjectsBackend string
	ProjectsFile    string
	PostgresDSN     string

	// Image uploads: "local" (default) or "minio".
	UploadsBackend string
	UploadsDir     string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// Chat: "keyword" (default) or "llm".
	ChatProvider  string
	LLMBaseURL    string
	LLMAPIKey     string
	LLMModel      string
	KnowledgeFile string

	GitHubUsername string
	GitHubToken    string
}

// Load reads configuration from the environment. A .env file is honored when
// present so local development does not need exported variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port: getenv("PORT", "8080"),

		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),

		SessionBackend: getenv("SESSION_BACKEND", "memory"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),

		ProjectsBackend: getenv("PROJECTS_BACKEND", "file"),
		ProjectsFile:    getenv("PROJECTS_FILE", "data/admin-projects.json"),
		PostgresDSN:     getenv("POSTGRES_DSN", ""),

		UploadsBackend: getenv("UPLOADS_BACKEND", "local"),
		UploadsDir:     getenv("UPLOADS_DIR", "public/uploads/projects"),
		MinioEndpoint:  getenv("MINIO_ENDPOINT", "minio:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "project-images"),
		MinioUseSSL:    getenv("MINIO_USE_SSL", "false") == "true",

		ChatProvider:  getenv("CHAT_PROVIDER", "keyword"),
		LLMBaseURL:    getenv("LLM_BASE_URL", ""),
		LLMAPIKey:     getenv("LLM_API_KEY", ""),
		LLMModel:      getenv("LLM_MODEL", "llama-3.1-8b-instant"),
		KnowledgeFile: getenv("KNOWLEDGE_FILE", ""),

		GitHubUsername: getenv("GITHUB_USERNAME", "Rahul4112002"),
		GitHubToken:    getenv("GITHUB_TOKEN", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot possibly serve requests.
func (c *Config) Validate() error {
	if c.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.ProjectsBackend == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("POSTGRES_DSN is required when PROJECTS_BACKEND=postgres")
	}
	if c.ChatProvider == "llm" && c.LLMBaseURL == "" {
		return fmt.Errorf("LLM_BASE_URL is required when CHAT_PROVIDER=llm")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
