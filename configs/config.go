package configs

import (
	"log"
	"os"
	"time"
)

type Config struct {
	DBSource    string
	Port        string
	FrontendURL string
	JWTSecret   string
	JWTTTL      time.Duration
	AWSRegion   string
	AWSBucket   string
}

func LoadConfig() *Config {
	return &Config{
		DBSource:    getEnv("DB_SOURCE", "menumate.db"),
		Port:        getEnv("PORT", "3000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      time.Duration(24) * time.Hour,
		AWSRegion:   getEnv("AWS_REGION", "ap-south-1"),
		AWSBucket:   os.Getenv("AWS_S3_BUCKET"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// MustGetEnv for values that have no sensible fallback
func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
