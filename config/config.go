package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	ProjectName string
	Version     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// ✅ Redis Config (conversation memory)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Gemini / agent config
	GeminiAPIKey      string
	CaritasModel      string
	CaritasTemp       float32
	SessionTTLMinutes int
	MaxToolCalls      int

	// ✅ SMTP Config
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// ✅ Kafka Config (async confirmation delivery)
	KafkaBrokers           []string
	KafkaRegistrationTopic string

	// ✅ CORS allow-list
	CORSOrigins []string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	temp := float32(0.7)
	if v := os.Getenv("CARITAS_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			temp = float32(f)
		}
	}

	sessionTTL := 30
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			sessionTTL = n
		}
	}

	maxToolCalls := 5
	if v := os.Getenv("MAX_TOOL_CALLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxToolCalls = n
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		ProjectName: "CaritasAI API",
		Version:     "1.0.0",

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		CaritasModel:      getEnv("CARITAS_MODEL", "gemini-2.0-flash"),
		CaritasTemp:       temp,
		SessionTTLMinutes: sessionTTL,
		MaxToolCalls:      maxToolCalls,

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "CaritasAI"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		KafkaBrokers:           splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaRegistrationTopic: getEnv("KAFKA_REGISTRATION_TOPIC", "registration-confirmations"),

		CORSOrigins: splitAndTrim(getEnv("CORS_ORIGINS",
			"http://localhost:3000,http://localhost:5173,http://localhost:8000")),
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set. Chat agent will be disabled!")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
