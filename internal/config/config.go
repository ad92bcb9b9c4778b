package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	TokenTTL       time.Duration
	ClientURL      string
	SendGridAPIKey string
	MailFrom       string
	CloudinaryURL  string
	Port           string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "gifthampers"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		TokenTTL:       getDurationEnv("TOKEN_TTL_DAYS", 30, 24*time.Hour),
		ClientURL:      getEnvOrDefault("CLIENT_URL", "http://localhost:3000"),
		SendGridAPIKey: getEnvOrDefault("SENDGRID_API_KEY", ""),
		MailFrom:       getEnvOrDefault("MAIL_FROM", ""),
		CloudinaryURL:  getEnvOrDefault("CLOUDINARY_URL", ""),
		Port:           getEnvOrDefault("PORT", "8080"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
