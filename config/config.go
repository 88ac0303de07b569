package config

import "os"

// Config holds the service's environment-driven settings.
type Config struct {
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	HTTPPort         string
	ScorerURL        string
	OperatorUsername string
	OperatorPassword string
	JWTSecret        string
}

func Load() *Config {
	return &Config{
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "asdscreen"),
		RedisAddr:        getEnv("REDIS_URI", "localhost:6379"),
		HTTPPort:         getEnv("PORT", "8080"),
		ScorerURL:        getEnv("SCORER_URL", ""),
		OperatorUsername: getEnv("OPERATOR_USERNAME", "admin"),
		OperatorPassword: getEnv("OPERATOR_PASSWORD", "password123"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
