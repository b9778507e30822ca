package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource       string
	Port           string
	Env            string
	JWTSecret      string
	JWTTTL         time.Duration
	RedisAddr      string
	RecommenderURL string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "foodhub.db"),
		Port:           getEnv("PORT", "8000"),
		Env:            getEnv("APP_ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         24 * time.Hour,
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RecommenderURL: os.Getenv("RECOMMENDER_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
