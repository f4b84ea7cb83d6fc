// Package config loads process configuration from the environment. Each
// section is read once and cached; main loads .env via godotenv before the
// first access.
package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type AppConfig struct {
	Port string
	// Directory resume PDFs are read from and exports are written to.
	// Download paths are resolved strictly inside it.
	BaseResumeDir string
	ArtifactsDir  string
	CORSOrigins   string
}

type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type LLMConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	RetryCount int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type RendererConfig struct {
	ChromePath string
	Timeout    time.Duration
}

var (
	appOnce sync.Once
	appCfg  AppConfig

	mongoOnce sync.Once
	mongoCfg  MongoConfig

	llmOnce sync.Once
	llmCfg  LLMConfig

	authOnce sync.Once
	authCfg  AuthConfig

	rendererOnce sync.Once
	rendererCfg  RendererConfig
)

func App() AppConfig {
	appOnce.Do(func() {
		appCfg = AppConfig{
			Port:          getEnv("PORT", "8000"),
			BaseResumeDir: getEnv("BASE_RESUME_DIR", "./data/resumes"),
			ArtifactsDir:  getEnv("ARTIFACTS_DIR", "./data/artifacts"),
			CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		}
	})
	return appCfg
}

func Mongo() MongoConfig {
	mongoOnce.Do(func() {
		mongoCfg = MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "resume_tailor"),
			Timeout:  getDuration("MONGO_TIMEOUT_SECONDS", 10*time.Second),
		}
	})
	return mongoCfg
}

func LLM() LLMConfig {
	llmOnce.Do(func() {
		llmCfg = LLMConfig{
			BaseURL:    getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			APIKey:     os.Getenv("LLM_API_KEY"),
			Model:      getEnv("LLM_MODEL", "gpt-4o-mini"),
			Timeout:    getDuration("LLM_TIMEOUT_SECONDS", 120*time.Second),
			RetryCount: getInt("LLM_RETRY_COUNT", 2),
		}
	})
	return llmCfg
}

func Auth() AuthConfig {
	authOnce.Do(func() {
		authCfg = AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "change-me"),
			TokenTTL:  getDuration("JWT_TTL_SECONDS", 7*24*time.Hour),
		}
	})
	return authCfg
}

func Renderer() RendererConfig {
	rendererOnce.Do(func() {
		rendererCfg = RendererConfig{
			ChromePath: os.Getenv("CHROME_PATH"),
			Timeout:    getDuration("RENDER_TIMEOUT_SECONDS", 60*time.Second),
		}
	})
	return rendererCfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}
