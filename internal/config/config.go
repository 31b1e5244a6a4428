package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SMTP struct {
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	Recipient string
}

type Config struct {
	ServerPort      int
	DB              DB
	SMTP            SMTP
	SessionSecret   string
	SessionDuration time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "password"),
		Name:     getEnv("DB_NAME", "goblog"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadSMTP() SMTP {
	return SMTP{
		Host:      getEnv("SMTP_HOST", "localhost"),
		Port:      getEnvAsInt("SMTP_PORT", 587),
		User:      getEnv("SMTP_USER", ""),
		Password:  getEnv("SMTP_PASSWORD", ""),
		From:      getEnv("EMAIL_ADDRESS", ""),
		Recipient: getEnv("RECIPIENT_EMAIL", ""),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		DB:              LoadDB(),
		SMTP:            LoadSMTP(),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionDuration: parseDuration(getEnv("SESSION_DURATION", "168h"), 168*time.Hour),
	}
}
