package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Nlp      NlpConfig
	Advisor  AdvisorConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	ContextStore       string // "memory" or "redis"
	TurnTopic          string
}

type DatabaseConfig struct {
	Connection string
}

type NlpConfig struct {
	ClassifierBaseURL   string
	ConfidenceThreshold float64
	SessionTimeoutSecs  int
}

type AdvisorConfig struct {
	MaxSemesterCredits   int
	SeniorHoursThreshold int
	GraduationHours      int
	LowCreditWarning     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			ContextStore:       getEnv("CONTEXT_STORE", "memory"),
			TurnTopic:          getEnv("CHAT_TURN_TOPIC_NAME", "CHAT_TURN_COMPLETED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Nlp: NlpConfig{
			ClassifierBaseURL:   getEnv("CLASSIFIER_BASE_URL", "http://localhost:8000"),
			ConfidenceThreshold: getEnvAsFloat("INTENT_CONFIDENCE_THRESHOLD", 0.45),
			SessionTimeoutSecs:  getEnvAsInt("SESSION_TIMEOUT_SECONDS", 120),
		},
		Advisor: AdvisorConfig{
			MaxSemesterCredits:   getEnvAsInt("MAX_SEMESTER_CREDITS", 18),
			SeniorHoursThreshold: getEnvAsInt("SENIOR_HOURS_THRESHOLD", 90),
			GraduationHours:      getEnvAsInt("GRADUATION_HOURS", 145),
			LowCreditWarning:     getEnvAsInt("LOW_CREDIT_WARNING", 12),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
