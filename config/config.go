package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// file (default) or postgres
	StorageDriver string
	TrainsFile    string
	BookingsFile  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// empty disables booking event publishing
	RabbitURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment values")
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		TrainsFile:    getEnv("TRAINS_FILE", "trains.json"),
		BookingsFile:  getEnv("BOOKINGS_FILE", "bookings.json"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "reservation_db"),
		RabbitURL:     getEnv("RABBIT_URL", ""),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
