// Package config loads the environment the server runs on. The variables in
// play are DATABASE_URL (postgres DSN), JWT_SECRET (token signing key) and
// PORT; the migration tool additionally reads SOURCE_DATABASE_URL and
// TARGET_DATABASE_URL.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file when one exists
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
