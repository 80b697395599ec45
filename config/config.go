package config

import (
	"os"
	"strconv"
)

type Config struct {
	MongoURI  string
	RedisAddr string
	HTTPPort  string
	ScaleMax  int // rating scale maximum, 4 or 5
	LogoPath  string
	GuidePath string
}

func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		ScaleMax:  getEnvInt("SCALE_MAX", 4),
		LogoPath:  getEnv("LOGO_PATH", "assets/All-In-Full-Logo-Black-Colour.png"),
		GuidePath: getEnv("GUIDE_PDF_PATH", "assets/Actionable-Allyship-Self-Assessment.pdf"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
