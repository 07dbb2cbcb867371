package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string

	RedisAddr     string
	RedisPassword string

	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string

	// Paystack payment gateway
	PaystackBaseURL   string
	PaystackSecretKey string

	// Cloudinary image hosting
	CloudinaryCloudName string
	CloudinaryPreset    string

	AppBaseURL  string
	FxSourceURL string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		Port:                getenvOrDefault("PORT", "8080"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            os.Getenv("SMTP_PORT"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		RedisAddr:           getenvOrDefault("REDIS_ADDR", os.Getenv("DB_HOST")+":6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		GoogleClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret:        os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirect:      os.Getenv("GOOGLE_REDIRECT_URI"),
		PaystackBaseURL:     getenvOrDefault("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		PaystackSecretKey:   os.Getenv("PAYSTACK_SECRET_KEY"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryPreset:    getenvOrDefault("CLOUDINARY_UPLOAD_PRESET", "driveport_cars"),
		AppBaseURL:          getenvOrDefault("APP_BASE_URL", "http://localhost:8080"),
		FxSourceURL:         os.Getenv("FX_SOURCE_URL"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
