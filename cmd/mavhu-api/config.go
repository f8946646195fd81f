package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	ProcessorURI   string
	ProcessorToken string
	JWTSecret      string
	Port           string
}

func mustConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "mavhu"),
		ProcessorURI:   getenv("PROCESSOR_URL", "http://127.0.0.1:8000"),
		ProcessorToken: getenv("PROCESSOR_TOKEN", "change_me_too"),
		JWTSecret:      getenv("JWT_SECRET", "change_me"),
		Port:           getenv("PORT", "8080"),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
