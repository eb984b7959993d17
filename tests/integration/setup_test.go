//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/railconnect/reservation-service/internal/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "reservation_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS passenger_rows")
	testDB.Exec("DROP TABLE IF EXISTS train_rows")

	if err := testDB.AutoMigrate(&store.TrainRow{}, &store.PassengerRow{}); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS passenger_rows")
	testDB.Exec("DROP TABLE IF EXISTS train_rows")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM passenger_rows")
	testDB.Exec("DELETE FROM train_rows")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
